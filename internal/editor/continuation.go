// Package editor implements the list-continuation behavior of the note
// editor: Enter inside a list item continues the list, Enter on an empty
// item exits it, and Backspace on a dangling marker removes the marker in
// one keystroke.
//
// The engine holds no state of its own. Each call classifies the line
// under the cursor and either returns a mutated document with a new
// cursor, or signals not-handled so the host applies its default
// behavior. There are no error paths: any document/cursor pair falls
// through to not-handled at worst.
package editor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gerunddev/marknote/internal/document"
)

// Result reports whether a key event was consumed, and the new document
// and cursor when it was. On the not-handled path Doc and Cursor are the
// inputs, untouched.
type Result struct {
	Handled bool
	Doc     document.StyledDocument
	Cursor  document.Range
}

// Line classification patterns, checked in order: unordered, ordered,
// checkbox. Each captures the literal indentation so continuation items
// reproduce it. Glyph forms are included because that is what the live
// document contains after markdown conversion.
var (
	unorderedLinePattern = regexp.MustCompile(`^(\s*)([-*+]|` + document.BulletGlyph + `) `)
	orderedLinePattern   = regexp.MustCompile(`^(\s*)\d+\. `)
	checkboxLinePattern  = regexp.MustCompile(`^(\s*)(\[( |x|X)\]|` + document.UncheckedGlyph + `|` + document.CheckedGlyph + `) `)
)

// lineMarker is a matched list marker at the start of a line.
type lineMarker struct {
	indent string
	width  int    // runes covered by indentation, marker and trailing space
	next   string // canonical prefix for the continuation item
}

// classify matches a line against the three marker kinds. Returns nil
// when the line is not a list item.
func classify(line string) *lineMarker {
	if m := unorderedLinePattern.FindStringSubmatch(line); m != nil {
		next := "- "
		if m[2] == document.BulletGlyph {
			next = document.BulletGlyph + " "
		}
		return &lineMarker{indent: m[1], width: utf8.RuneCountInString(m[0]), next: next}
	}
	if m := orderedLinePattern.FindStringSubmatch(line); m != nil {
		// Always the literal "1. "; numbering is not continued.
		return &lineMarker{indent: m[1], width: utf8.RuneCountInString(m[0]), next: "1. "}
	}
	if m := checkboxLinePattern.FindStringSubmatch(line); m != nil {
		next := "[ ] "
		if m[2] == document.UncheckedGlyph || m[2] == document.CheckedGlyph {
			next = document.UncheckedGlyph + " "
		}
		return &lineMarker{indent: m[1], width: utf8.RuneCountInString(m[0]), next: next}
	}
	return nil
}

// OnEnter handles the Enter key. A non-empty list item continues the
// list with a fresh marker on the next line; an empty item exits the
// list by replacing the dangling marker with a bare newline.
func OnEnter(doc document.StyledDocument, cursor document.Range) Result {
	notHandled := Result{Doc: doc, Cursor: cursor}
	if !cursor.Empty() {
		return notHandled
	}

	start, end := doc.LineAt(cursor.Start)
	line := doc.Slice(start, end)
	marker := classify(line)
	if marker == nil {
		return notHandled
	}

	content := string([]rune(line)[marker.width:])
	if strings.TrimSpace(content) == "" {
		// Empty item: drop the marker, keep the line break.
		newDoc := doc.Replace(document.Range{Start: start, End: end}, "\n", document.RunStyle{})
		pos := start + 1
		return Result{Handled: true, Doc: newDoc, Cursor: document.Range{Start: pos, End: pos}}
	}

	insert := "\n" + marker.indent + marker.next
	newDoc := doc.Replace(cursor, insert, document.RunStyle{})
	pos := cursor.Start + utf8.RuneCountInString(insert)
	return Result{Handled: true, Doc: newDoc, Cursor: document.Range{Start: pos, End: pos}}
}

// OnBackspace handles the Backspace key. When the line holds nothing but
// a list marker and the cursor sits at its end, the whole marker is
// removed in one keystroke. A non-empty selection is never intercepted.
func OnBackspace(doc document.StyledDocument, cursor document.Range) Result {
	notHandled := Result{Doc: doc, Cursor: cursor}
	if !cursor.Empty() {
		return notHandled
	}

	start, end := doc.LineAt(cursor.Start)
	line := doc.Slice(start, end)
	marker := classify(line)
	if marker == nil || marker.width != utf8.RuneCountInString(line) {
		return notHandled
	}
	if cursor.Start != end {
		return notHandled
	}

	newDoc := doc.Replace(document.Range{Start: start, End: end}, "\n", document.RunStyle{})
	return Result{Handled: true, Doc: newDoc, Cursor: document.Range{Start: start, End: start}}
}
