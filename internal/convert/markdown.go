// Package convert implements the bidirectional conversion between the
// note dialect of Markdown and styled documents.
//
// The dialect is deliberately small: headings H1-H3, bold, italic, inline
// code, links, unordered/ordered/checkbox lists, horizontal rules and an
// <u> underline escape. Conversion keeps markup visible in the edited
// text ("markdown as you type"); only list markers and horizontal rules
// are swapped for display glyphs, and serialization swaps them back.
//
// Both directions are total functions: malformed input never errors, it
// degrades to literal text.
package convert

import (
	"regexp"
	"strings"

	"github.com/gerunddev/marknote/internal/document"
)

// headingScale maps a heading level to its font-size multiple of the base
// size. ToMarkdown's inference thresholds sit safely below these ratios,
// so a parsed heading always recovers its level.
var headingScale = map[int]float64{
	1: 2.0,
	2: 1.5,
	3: 1.3,
}

// ToDocument parses markdown into a styled document. The plain-text
// projection of the result keeps every marker visible except list bullets,
// checkboxes and horizontal rules, which become display glyphs.
func ToDocument(markdown string, baseSize float64) document.StyledDocument {
	if baseSize <= 0 {
		baseSize = document.DefaultBaseSize
	}
	doc := document.New(baseSize)
	for i, line := range strings.Split(markdown, "\n") {
		if i > 0 {
			doc = doc.Append("\n", document.RunStyle{})
		}
		doc = appendLine(doc, line, baseSize)
	}
	return doc
}

func appendLine(doc document.StyledDocument, line string, baseSize float64) document.StyledDocument {
	// Headings take absolute precedence: the whole line, markers
	// included, becomes a single run. Inline markers inside a heading
	// stay literal.
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		level := len(m[1])
		return doc.Append(line, document.RunStyle{
			Bold:         true,
			HeadingLevel: level,
			FontSize:     baseSize * headingScale[level],
		})
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "---" || trimmed == "***" {
		return doc.Append(document.RuleGlyph, document.RunStyle{HorizontalRule: true})
	}

	line = substituteListGlyphs(line)
	return appendInline(doc, line)
}

// substituteListGlyphs rewrites a leading list marker to its display
// glyph. Ordered markers ("1. ") are kept literal.
func substituteListGlyphs(line string) string {
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return m[1] + document.BulletGlyph + " " + line[len(m[0]):]
	}
	if m := checkboxPattern.FindStringSubmatch(line); m != nil {
		glyph := document.UncheckedGlyph
		if m[2] != " " {
			glyph = document.CheckedGlyph
		}
		return m[1] + glyph + " " + line[len(m[0]):]
	}
	return line
}

// inlineSpec pairs a pattern with how its match is emitted. Order is the
// precedence order; the earliest match in the line wins, with precedence
// breaking ties at the same offset.
type inlineSpec struct {
	pattern  *regexp.Regexp
	stripped bool // emit only the inner capture, styled
	style    document.RunStyle
}

var inlineSpecs = []inlineSpec{
	{boldPattern, true, document.RunStyle{Bold: true}},
	{italicPattern, true, document.RunStyle{Italic: true}},
	{codePattern, false, document.RunStyle{}},
	{linkPattern, false, document.RunStyle{}},
}

// appendInline scans a line left to right for inline spans. Bold and
// italic delimiters are stripped from the emitted run (serialization
// re-adds them from the style flags); code and link matches stay literal
// so the backticks and brackets remain visible and their interior is
// protected from emphasis scanning. Text that matches nothing is emitted
// as plain literal text.
func appendInline(doc document.StyledDocument, line string) document.StyledDocument {
	rest := line
	for rest != "" {
		bestSpec := -1
		var bestLoc []int
		for i, spec := range inlineSpecs {
			loc := spec.pattern.FindStringSubmatchIndex(rest)
			if loc == nil {
				continue
			}
			if bestLoc == nil || loc[0] < bestLoc[0] {
				bestSpec, bestLoc = i, loc
			}
		}
		if bestLoc == nil {
			return doc.Append(rest, document.RunStyle{})
		}

		if bestLoc[0] > 0 {
			doc = doc.Append(rest[:bestLoc[0]], document.RunStyle{})
		}
		spec := inlineSpecs[bestSpec]
		if spec.stripped {
			doc = doc.Append(rest[bestLoc[2]:bestLoc[3]], spec.style)
		} else {
			doc = doc.Append(rest[bestLoc[0]:bestLoc[1]], spec.style)
		}
		rest = rest[bestLoc[1]:]
	}
	return doc
}
