package convert

import (
	"strings"

	"github.com/gerunddev/marknote/internal/document"
)

// Heading inference thresholds, as ratios of the document base size. A
// run with no explicit heading tag is classified by its font size against
// these bands; the parse-time scales (2.0/1.5/1.3) land inside them, so
// untouched parsed documents recover their original level.
const (
	h1Ratio = 1.71
	h2Ratio = 1.43
	h3Ratio = 1.28
)

// ToMarkdown serializes a styled document to canonical markdown. Styling
// may come from the original parse or from direct formatting commands in
// the editor; both channels are honored: an explicit heading tag wins,
// otherwise heading level is inferred from the run's font size, otherwise
// bold/italic wrappers are regenerated from the style flags.
func ToMarkdown(doc document.StyledDocument) string {
	base := doc.BaseSize
	if base <= 0 {
		base = document.DefaultBaseSize
	}

	var b strings.Builder
	for _, span := range spans(doc) {
		b.WriteString(serializeSpan(span, base))
	}

	// Glyphs back to markers. Later patterns must not re-match earlier
	// replacements; none of these overlap.
	out := b.String()
	out = strings.ReplaceAll(out, document.BulletGlyph+" ", "- ")
	out = strings.ReplaceAll(out, document.UncheckedGlyph+" ", "[ ] ")
	out = strings.ReplaceAll(out, document.CheckedGlyph+" ", "[x] ")
	out = strings.ReplaceAll(out, document.RuleGlyph, "---")
	return out
}

// spans coalesces adjacent runs with equal styles so that one marker pair
// is emitted per logical span, never one per run.
func spans(doc document.StyledDocument) []document.StyledRun {
	var out []document.StyledRun
	for _, run := range doc.Runs {
		if n := len(out); n > 0 && out[n-1].Style == run.Style {
			out[n-1].Text += run.Text
			continue
		}
		out = append(out, run)
	}
	return out
}

func serializeSpan(span document.StyledRun, base float64) string {
	text := span.Text
	style := span.Style

	level := style.HeadingLevel
	if level == 0 {
		level = levelForSize(style.FontSize, base)
	}
	if level > 0 {
		marker := strings.Repeat("#", level) + " "
		// Parsed headings keep their markers in the run text; only
		// prepend for headings applied by a formatting command.
		if !strings.HasPrefix(text, marker) {
			text = marker + text
		}
		return text
	}

	// Italic inside, bold outside: bold italic serializes as ***text***.
	if style.Italic {
		text = "*" + text + "*"
	}
	if style.Bold {
		text = "**" + text + "**"
	}
	if style.Underline {
		text = "<u>" + text + "</u>"
	}
	if style.Link != "" {
		text = "[" + text + "](" + style.Link + ")"
	}
	if strings.Contains(style.FontFamily, "Mono") {
		text = "`" + text + "`"
	}
	return text
}

func levelForSize(size, base float64) int {
	if size <= 0 || base <= 0 {
		return 0
	}
	switch ratio := size / base; {
	case ratio >= h1Ratio:
		return 1
	case ratio >= h2Ratio:
		return 2
	case ratio >= h3Ratio:
		return 3
	default:
		return 0
	}
}
