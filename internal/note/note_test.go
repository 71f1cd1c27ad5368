package note

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTitleOf(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"heading", "# Shopping List\n- milk", "Shopping List"},
		{"plain first line", "just text\nmore", "just text"},
		{"skips blank lines", "\n\n## Later\nbody", "Later"},
		{"bullet line", "- milk", "milk"},
		{"glyph bullet line", "• milk", "milk"},
		{"checkbox line", "[ ] call back", "call back"},
		{"empty note", "", "Untitled"},
		{"whitespace only", "  \n\t\n", "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleOf(tt.markdown); got != tt.want {
				t.Errorf("TitleOf(%q) = %q, want %q", tt.markdown, got, tt.want)
			}
		})
	}
}

func TestStoreSaveAndGet(t *testing.T) {
	store := NewStore(t.TempDir())

	n := New("# Hello\nbody", "work")
	if err := store.Save(n); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Get(n.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Hello" {
		t.Errorf("Title = %q, want %q", got.Title, "Hello")
	}
	if got.Markdown != "# Hello\nbody" {
		t.Errorf("Markdown = %q", got.Markdown)
	}
	if !got.HasTag("Work") {
		t.Error("tag lookup should be case-insensitive")
	}
}

func TestStoreListMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "never-created"))
	notes, err := store.List()
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected empty store, got %d notes", len(notes))
	}
}

func TestStoreListOrdersNewestFirst(t *testing.T) {
	store := NewStore(t.TempDir())

	old := New("old note")
	if err := store.Save(old); err != nil {
		t.Fatal(err)
	}
	// Save adjusts UpdatedAt; backdate the first note directly.
	old.UpdatedAt = time.Now().Add(-time.Hour)
	rewrite(t, store, old)

	fresh := New("fresh note")
	if err := store.Save(fresh); err != nil {
		t.Fatal(err)
	}

	notes, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != fresh.ID {
		t.Error("newest note should come first")
	}
}

func TestTrashRestorePurge(t *testing.T) {
	store := NewStore(t.TempDir())

	n := New("doomed note")
	if err := store.Save(n); err != nil {
		t.Fatal(err)
	}
	if err := store.Trash(n.ID); err != nil {
		t.Fatalf("Trash failed: %v", err)
	}

	active, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 0 {
		t.Error("trashed note still listed as active")
	}

	trashed, err := store.ListTrashed()
	if err != nil {
		t.Fatal(err)
	}
	if len(trashed) != 1 {
		t.Fatalf("expected 1 trashed note, got %d", len(trashed))
	}

	// Inside the retention window nothing is purged.
	removed, err := store.Purge(24 * time.Hour)
	if err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("purged %d notes inside the retention window", removed)
	}

	if err := store.Restore(n.ID); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	restored, err := store.Get(n.ID)
	if err != nil {
		t.Fatal(err)
	}
	if restored.Trashed() {
		t.Error("note still trashed after restore")
	}
}

func TestPurgeRemovesExpiredNotes(t *testing.T) {
	store := NewStore(t.TempDir())

	n := New("expired note")
	if err := store.Save(n); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-48 * time.Hour)
	n.DeletedAt = &past
	rewrite(t, store, n)

	removed, err := store.Purge(24 * time.Hour)
	if err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, err := store.Get(n.ID); !os.IsNotExist(err) {
		t.Errorf("expected note file gone, got err = %v", err)
	}
}

func TestFilterByTag(t *testing.T) {
	notes := []*Note{
		New("a", "work"),
		New("b", "home"),
		New("c", "work", "urgent"),
	}

	work := FilterByTag(notes, "work")
	if len(work) != 2 {
		t.Errorf("work notes = %d, want 2", len(work))
	}
	all := FilterByTag(notes, "")
	if len(all) != 3 {
		t.Errorf("empty tag should return all notes, got %d", len(all))
	}
}

func TestExportWritesFrontMatter(t *testing.T) {
	store := NewStore(t.TempDir())
	n := New("# Export Me\nbody line", "work")
	if err := store.Save(n); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	written, err := store.Export(dir)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if written != 1 {
		t.Fatalf("written = %d, want 1", written)
	}

	data, err := os.ReadFile(filepath.Join(dir, "export-me.md"))
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "---\n") {
		t.Error("exported file missing front-matter header")
	}
	if !strings.Contains(content, "title: Export Me") {
		t.Errorf("front matter missing title:\n%s", content)
	}
	if !strings.Contains(content, "# Export Me\nbody line") {
		t.Error("exported file missing note body")
	}
}

func TestImportDetectsMarkdown(t *testing.T) {
	store := NewStore(t.TempDir())

	path := filepath.Join(t.TempDir(), "in.md")
	if err := os.WriteFile(path, []byte("# Imported\n* item"), 0644); err != nil {
		t.Fatal(err)
	}

	n, isMarkdown, err := store.Import(path, 14)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !isMarkdown {
		t.Error("markdown input not detected")
	}
	// Canonicalization normalizes the "*" bullet to "-".
	if n.Markdown != "# Imported\n- item" {
		t.Errorf("Markdown = %q", n.Markdown)
	}

	plain := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(plain, []byte("nothing fancy here"), 0644); err != nil {
		t.Fatal(err)
	}
	n, isMarkdown, err = store.Import(plain, 14)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if isMarkdown {
		t.Error("plain text misdetected as markdown")
	}
	if n.Markdown != "nothing fancy here" {
		t.Errorf("Markdown = %q", n.Markdown)
	}
}

// rewrite stores a note without refreshing UpdatedAt, for fixtures that
// need explicit timestamps.
func rewrite(t *testing.T, store *Store, n *Note) {
	t.Helper()
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.path(n.ID), data, 0644); err != nil {
		t.Fatal(err)
	}
}
