package document

import (
	"strings"
	"unicode/utf8"
)

// RunStyle describes the formatting of a contiguous span of text.
// Equality is structural: two runs with equal RunStyle values are mergeable.
type RunStyle struct {
	Bold           bool
	Italic         bool
	Underline      bool
	HeadingLevel   int // 0 = not a heading, 1-3 = H1-H3
	HorizontalRule bool
	FontSize       float64 // point size; 0 = base size
	FontFamily     string
	Link           string // target URL when the host attaches one
}

// IsPlain reports whether the style carries no formatting at all.
func (s RunStyle) IsPlain() bool {
	return s == RunStyle{}
}

// StyledRun is a contiguous span of text sharing one style.
// Zero-length runs are invalid and are never emitted.
type StyledRun struct {
	Text  string
	Style RunStyle
}

// StyledDocument is an ordered sequence of styled runs. Concatenating the
// Text of every run in order reproduces the document's plain text exactly:
// the runs partition the text with no gaps and no overlap.
//
// Documents are values; every mutation returns a new document.
type StyledDocument struct {
	Runs     []StyledRun
	BaseSize float64
}

// Range is a cursor or selection in rune offsets into the plain text.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range is a bare cursor with no selection.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// New returns an empty document with the given base font size.
func New(baseSize float64) StyledDocument {
	return StyledDocument{BaseSize: baseSize}
}

// Append returns a copy of the document with text appended in the given
// style. Adjacent runs with equal styles are coalesced; empty text is a
// no-op.
func (d StyledDocument) Append(text string, style RunStyle) StyledDocument {
	if text == "" {
		return d
	}
	runs := make([]StyledRun, len(d.Runs), len(d.Runs)+1)
	copy(runs, d.Runs)
	if n := len(runs); n > 0 && runs[n-1].Style == style {
		runs[n-1].Text += text
	} else {
		runs = append(runs, StyledRun{Text: text, Style: style})
	}
	return StyledDocument{Runs: runs, BaseSize: d.BaseSize}
}

// PlainText returns the plain-text projection of the document.
func (d StyledDocument) PlainText() string {
	var b strings.Builder
	for _, run := range d.Runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

// Len returns the length of the plain text in runes.
func (d StyledDocument) Len() int {
	n := 0
	for _, run := range d.Runs {
		n += utf8.RuneCountInString(run.Text)
	}
	return n
}

// Slice returns the plain text between two rune offsets.
func (d StyledDocument) Slice(start, end int) string {
	runes := []rune(d.PlainText())
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))
	return string(runes[start:end])
}

// LineAt returns the rune-offset bounds of the line containing pos. The
// line is bounded by surrounding newlines (exclusive) or the document
// edges. Lines are derived on every call, never cached.
func (d StyledDocument) LineAt(pos int) (start, end int) {
	runes := []rune(d.PlainText())
	pos = clamp(pos, 0, len(runes))
	start = pos
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	end = pos
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	return start, end
}

// StyleAt returns the style in effect at the given rune offset. Positions
// at or past the end of the document report the last run's style.
func (d StyledDocument) StyleAt(pos int) RunStyle {
	if len(d.Runs) == 0 {
		return RunStyle{}
	}
	off := 0
	for _, run := range d.Runs {
		off += utf8.RuneCountInString(run.Text)
		if pos < off {
			return run.Style
		}
	}
	return d.Runs[len(d.Runs)-1].Style
}

// Replace returns a new document with the range r replaced by text in the
// given style. Runs overlapping the boundaries are split; the partition
// invariant is preserved and no zero-length run is emitted.
func (d StyledDocument) Replace(r Range, text string, style RunStyle) StyledDocument {
	total := d.Len()
	start := clamp(r.Start, 0, total)
	end := clamp(r.End, start, total)

	out := New(d.BaseSize)
	off := 0
	inserted := false
	for _, run := range d.Runs {
		runes := []rune(run.Text)
		runStart, runEnd := off, off+len(runes)
		off = runEnd

		// Part of the run before the replaced range.
		if runStart < start {
			keep := min(start, runEnd) - runStart
			out = out.Append(string(runes[:keep]), run.Style)
		}
		if !inserted && runEnd >= start {
			out = out.Append(text, style)
			inserted = true
		}
		// Part of the run after the replaced range.
		if runEnd > end {
			from := max(end, runStart) - runStart
			out = out.Append(string(runes[from:]), run.Style)
		}
	}
	if !inserted {
		out = out.Append(text, style)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
