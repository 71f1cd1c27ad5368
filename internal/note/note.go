// Package note holds the note model and its JSON file store. Each note
// is one JSON document named by its id; the trash is a flag on the note,
// not a separate directory, so restore keeps the id stable.
package note

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note represents a single note
type Note struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Markdown  string     `json:"markdown"`
	Tags      []string   `json:"tags,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// New creates a note with a fresh id and the title derived from the
// first non-empty line of the markdown.
func New(markdown string, tags ...string) *Note {
	now := time.Now()
	return &Note{
		ID:        uuid.NewString(),
		Title:     TitleOf(markdown),
		Markdown:  markdown,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Trashed reports whether the note sits in the trash.
func (n *Note) Trashed() bool {
	return n.DeletedAt != nil
}

// HasTag reports whether the note carries the given tag.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// titlePrefixes are list markers stripped from a title line, raw and
// glyph forms alike.
var titlePrefixes = []string{"- ", "* ", "+ ", "• ", "☐ ", "☑ ", "[ ] ", "[x] ", "[X] "}

// TitleOf derives a display title from the first non-empty line of the
// markdown, with heading and list markers stripped.
func TitleOf(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "#")
		line = strings.TrimSpace(line)
		for _, prefix := range titlePrefixes {
			if rest, ok := strings.CutPrefix(line, prefix); ok {
				line = strings.TrimSpace(rest)
				break
			}
		}
		if line != "" {
			return line
		}
	}
	return "Untitled"
}

// Store persists notes as one JSON file per note under a directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created
// lazily on the first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes a note to the store, refreshing its update time and title.
func (s *Store) Save(n *Note) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}

	n.UpdatedAt = time.Now()
	n.Title = TitleOf(n.Markdown)

	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal note: %w", err)
	}

	if err := os.WriteFile(s.path(n.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write note file: %w", err)
	}

	return nil
}

// Get reads a single note by id.
func (s *Store) Get(id string) (*Note, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, err
	}

	var n Note
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("failed to parse note %s: %w", id, err)
	}
	return &n, nil
}

// List returns all active notes, newest first. A missing notes directory
// is an empty store, not an error.
func (s *Store) List() ([]*Note, error) {
	return s.list(false)
}

// ListTrashed returns all trashed notes, newest first.
func (s *Store) ListTrashed() ([]*Note, error) {
	return s.list(true)
}

func (s *Store) list(trashed bool) ([]*Note, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var notes []*Note
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		n, err := s.Get(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, err
		}
		if n.Trashed() == trashed {
			notes = append(notes, n)
		}
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes, nil
}

// Trash marks a note deleted. Purge removes it for good once the
// retention window passes.
func (s *Store) Trash(id string) error {
	n, err := s.Get(id)
	if err != nil {
		return err
	}
	now := time.Now()
	n.DeletedAt = &now

	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal note: %w", err)
	}
	return os.WriteFile(s.path(id), data, 0644)
}

// Restore clears the deleted flag on a trashed note.
func (s *Store) Restore(id string) error {
	n, err := s.Get(id)
	if err != nil {
		return err
	}
	n.DeletedAt = nil
	return s.Save(n)
}

// Purge permanently deletes trashed notes older than the retention
// window and returns how many were removed.
func (s *Store) Purge(retention time.Duration) (int, error) {
	trashed, err := s.ListTrashed()
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-retention)
	removed := 0
	for _, n := range trashed {
		if n.DeletedAt.After(cutoff) {
			continue
		}
		if err := os.Remove(s.path(n.ID)); err != nil {
			return removed, fmt.Errorf("failed to remove note %s: %w", n.ID, err)
		}
		removed++
	}
	return removed, nil
}

// FilterByTag returns the notes carrying the given tag.
func FilterByTag(notes []*Note, tag string) []*Note {
	if tag == "" {
		return notes
	}
	var out []*Note
	for _, n := range notes {
		if n.HasTag(tag) {
			out = append(out, n)
		}
	}
	return out
}
