package note

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gerunddev/marknote/internal/convert"
)

// frontMatter is the YAML header written on exported notes.
type frontMatter struct {
	Title   string    `yaml:"title"`
	Tags    []string  `yaml:"tags,omitempty"`
	Created time.Time `yaml:"created"`
	Updated time.Time `yaml:"updated"`
}

// Export writes every active note to dir as a markdown file with a YAML
// front-matter header. Returns the number of notes written.
func (s *Store) Export(dir string) (int, error) {
	notes, err := s.List()
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create export directory: %w", err)
	}

	written := 0
	for _, n := range notes {
		header, err := yaml.Marshal(frontMatter{
			Title:   n.Title,
			Tags:    n.Tags,
			Created: n.CreatedAt,
			Updated: n.UpdatedAt,
		})
		if err != nil {
			return written, fmt.Errorf("failed to marshal front matter for %s: %w", n.ID, err)
		}

		var b strings.Builder
		b.WriteString("---\n")
		b.Write(header)
		b.WriteString("---\n\n")
		b.WriteString(n.Markdown)
		if !strings.HasSuffix(n.Markdown, "\n") {
			b.WriteString("\n")
		}

		path := filepath.Join(dir, Slug(n.Title)+".md")
		if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written++
	}
	return written, nil
}

// Import creates a note from a text file. Content that looks like
// markdown is canonicalized through the converter; anything else is kept
// as plain text. Returns the new note and whether markdown was detected.
func (s *Store) Import(path string, baseSize float64) (*Note, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}

	content := string(data)
	isMarkdown := convert.LooksLikeMarkdown(content)
	if isMarkdown {
		content = convert.ToMarkdown(convert.ToDocument(content, baseSize))
	}

	n := New(content)
	if err := s.Save(n); err != nil {
		return nil, isMarkdown, err
	}
	return n, isMarkdown, nil
}

// Slug turns a title into a safe file name.
func Slug(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}
