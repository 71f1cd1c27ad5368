package editor

import (
	"testing"

	"github.com/gerunddev/marknote/internal/convert"
	"github.com/gerunddev/marknote/internal/document"
)

func plainDoc(text string) document.StyledDocument {
	return document.New(14).Append(text, document.RunStyle{})
}

func cursorAt(pos int) document.Range {
	return document.Range{Start: pos, End: pos}
}

func TestEnterContinuesNonEmptyItem(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantInsert string
	}{
		{"dash bullet", "- buy milk", "\n- "},
		{"star bullet", "* buy milk", "\n- "},
		{"plus bullet", "+ buy milk", "\n- "},
		{"glyph bullet", "• buy milk", "\n• "},
		{"ordered keeps literal one", "3. buy milk", "\n1. "},
		{"unchecked box", "[ ] buy milk", "\n[ ] "},
		{"checked box continues unchecked", "[x] buy milk", "\n[ ] "},
		{"glyph box", "☑ buy milk", "\n☐ "},
		{"indented bullet keeps indent", "  - buy milk", "\n  - "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := plainDoc(tt.line)
			res := OnEnter(doc, cursorAt(doc.Len()))
			if !res.Handled {
				t.Fatal("OnEnter not handled")
			}
			want := tt.line + tt.wantInsert
			if got := res.Doc.PlainText(); got != want {
				t.Errorf("document = %q, want %q", got, want)
			}
			if res.Cursor.Start != res.Doc.Len() || !res.Cursor.Empty() {
				t.Errorf("cursor = %+v, want empty cursor at end (%d)", res.Cursor, res.Doc.Len())
			}
		})
	}
}

func TestEnterOnEmptyItemExitsList(t *testing.T) {
	for _, line := range []string{"- ", "• ", "1. ", "[ ] ", "☐ "} {
		doc := plainDoc(line)
		res := OnEnter(doc, cursorAt(doc.Len()))
		if !res.Handled {
			t.Fatalf("%q: OnEnter not handled", line)
		}
		if got := res.Doc.PlainText(); got != "\n" {
			t.Errorf("%q: document = %q, want marker replaced by newline", line, got)
		}
		if res.Cursor.Start != 1 {
			t.Errorf("%q: cursor = %d, want 1 (after the newline)", line, res.Cursor.Start)
		}
	}
}

func TestEnterMidDocumentContinuation(t *testing.T) {
	doc := plainDoc("- first\n- second\ntrailing")
	// Cursor at the end of the "- second" line.
	res := OnEnter(doc, cursorAt(16))
	if !res.Handled {
		t.Fatal("OnEnter not handled")
	}
	want := "- first\n- second\n- \ntrailing"
	if got := res.Doc.PlainText(); got != want {
		t.Errorf("document = %q, want %q", got, want)
	}
	if res.Cursor.Start != 19 {
		t.Errorf("cursor = %d, want 19", res.Cursor.Start)
	}
}

func TestBackspaceRemovesDanglingMarker(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"dash marker", "- "},
		{"glyph marker", "• "},
		{"ordered marker", "12. "},
		{"unchecked box", "[ ] "},
		{"checked box", "[x] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := plainDoc(tt.line)
			res := OnBackspace(doc, cursorAt(doc.Len()))
			if !res.Handled {
				t.Fatal("OnBackspace not handled")
			}
			if got := res.Doc.PlainText(); got != "\n" {
				t.Errorf("document = %q, want %q", got, "\n")
			}
			if res.Cursor.Start != 0 || !res.Cursor.Empty() {
				t.Errorf("cursor = %+v, want empty cursor at line start", res.Cursor)
			}
		})
	}
}

func TestBackspaceRequiresCursorAtLineEnd(t *testing.T) {
	doc := plainDoc("[ ] ")
	res := OnBackspace(doc, cursorAt(2))
	if res.Handled {
		t.Error("OnBackspace handled with cursor inside the marker")
	}
}

func TestBackspaceIgnoresLineWithContent(t *testing.T) {
	doc := plainDoc("- item")
	res := OnBackspace(doc, cursorAt(doc.Len()))
	if res.Handled {
		t.Error("OnBackspace handled on a non-empty item")
	}
}

func TestNonListLinePassesThrough(t *testing.T) {
	doc := plainDoc("plain line of text")
	cursor := cursorAt(doc.Len())

	for name, fn := range map[string]func(document.StyledDocument, document.Range) Result{
		"OnEnter":     OnEnter,
		"OnBackspace": OnBackspace,
	} {
		res := fn(doc, cursor)
		if res.Handled {
			t.Errorf("%s handled a non-list line", name)
		}
		if res.Doc.PlainText() != doc.PlainText() {
			t.Errorf("%s mutated the document on the not-handled path", name)
		}
		if res.Cursor != cursor {
			t.Errorf("%s moved the cursor on the not-handled path", name)
		}
	}
}

func TestSelectionIsNeverIntercepted(t *testing.T) {
	doc := plainDoc("- item")
	sel := document.Range{Start: 2, End: 6}

	if res := OnBackspace(doc, sel); res.Handled {
		t.Error("OnBackspace intercepted a non-empty selection")
	}
	if res := OnEnter(doc, sel); res.Handled {
		t.Error("OnEnter intercepted a non-empty selection")
	}
}

// The engine operates on live documents produced by the converter, so the
// glyph forms it matches are exactly what conversion emits.
func TestEnterOnConvertedDocument(t *testing.T) {
	doc := convert.ToDocument("- buy milk", 14)
	res := OnEnter(doc, cursorAt(doc.Len()))
	if !res.Handled {
		t.Fatal("OnEnter not handled on converted bullet line")
	}
	if got := res.Doc.PlainText(); got != "• buy milk\n• " {
		t.Errorf("document = %q, want %q", got, "• buy milk\n• ")
	}
}
