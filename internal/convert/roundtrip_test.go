package convert

import (
	"os"
	"strings"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// TestRoundtripFixture runs the sample note through markdown -> document
// -> markdown and expects the canonical text back unchanged.
func TestRoundtripFixture(t *testing.T) {
	content, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		t.Fatalf("Failed to read markdown fixture: %v", err)
	}

	doc := ToDocument(string(content), 14)
	got := ToMarkdown(doc)

	expected := normalizeWhitespace(string(content))
	actual := normalizeWhitespace(got)

	if actual != expected {
		t.Errorf("Roundtrip md->doc->md failed to preserve content")
		showDiff(t, expected, actual)
	}
}

func TestRoundtripHeadings(t *testing.T) {
	for _, m := range []string{"# A", "## B", "### C"} {
		if got := ToMarkdown(ToDocument(m, 14)); got != m {
			t.Errorf("roundtrip %q = %q", m, got)
		}
	}
}

func TestRoundtripEmphasis(t *testing.T) {
	input := "**bold** and *italic*"
	if got := ToMarkdown(ToDocument(input, 14)); got != input {
		t.Errorf("roundtrip %q = %q", input, got)
	}
}

func TestRoundtripListGlyphs(t *testing.T) {
	doc := ToDocument("- item", 14)
	if got := doc.PlainText(); got != "• item" {
		t.Fatalf("plain text = %q, want %q", got, "• item")
	}
	if got := ToMarkdown(doc); got != "- item" {
		t.Errorf("roundtrip = %q, want %q", got, "- item")
	}
}

func TestRoundtripCheckbox(t *testing.T) {
	doc := ToDocument("[x] done", 14)
	if got := doc.PlainText(); got != "☑ done" {
		t.Fatalf("plain text = %q, want %q", got, "☑ done")
	}
	if got := ToMarkdown(doc); got != "[x] done" {
		t.Errorf("roundtrip = %q, want %q", got, "[x] done")
	}
}

func TestRoundtripNormalizesBulletVariants(t *testing.T) {
	// "*" and "-" bullets both canonicalize to "- "; this direction is
	// deliberately lossy.
	if got := ToMarkdown(ToDocument("* item", 14)); got != "- item" {
		t.Errorf("roundtrip = %q, want %q", got, "- item")
	}
}

// Helper functions

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func showDiff(t *testing.T, expected, actual string) {
	edits := myers.ComputeEdits(span.URIFromPath("expected.md"), expected, actual)
	t.Logf("\n%s", gotextdiff.ToUnified("expected.md", "actual.md", expected, edits))
}
