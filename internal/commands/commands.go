// Package commands implements the CLI verbs. Each handler owns its own
// output; errors bubble up to main for the exit code.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/marknote/internal/config"
	"github.com/gerunddev/marknote/internal/convert"
	"github.com/gerunddev/marknote/internal/logger"
	"github.com/gerunddev/marknote/internal/note"
	"github.com/gerunddev/marknote/internal/tui"
)

// Env bundles what every command needs.
type Env struct {
	Store *note.Store
	Cfg   *config.Config
	Log   *logger.Logger
}

// NewEnv loads the configuration and wires the store and logger.
func NewEnv() (*Env, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, cleanup, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		// A broken log path should not block note taking.
		log = logger.Discard()
		cleanup = func() {}
	}
	log.ConfigLoaded(cfg.NotesDir, cfg.BaseFontSize, cfg.RetentionDays)

	return &Env{
		Store: note.NewStore(cfg.NotesDir),
		Cfg:   cfg,
		Log:   log,
	}, cleanup, nil
}

// Edit opens the TUI: the browser with no arguments, or a single note
// when an id is given.
func (e *Env) Edit(args []string) error {
	if len(args) == 0 {
		return tui.Run(e.Store, e.Cfg, e.Log)
	}

	n, err := e.Store.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to open note %s: %w", args[0], err)
	}
	return tui.RunWithNote(n, e.Store, e.Cfg, e.Log)
}

// New creates an empty note and opens it in the editor.
func (e *Env) New(args []string) error {
	n := note.New("", args...)
	return tui.RunWithNote(n, e.Store, e.Cfg, e.Log)
}

// List prints active notes, optionally filtered by tag.
func (e *Env) List(args []string) error {
	tag := ""
	if len(args) > 0 {
		tag = args[0]
	}

	notes, err := e.Store.List()
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}
	notes = note.FilterByTag(notes, tag)

	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return nil
	}
	for _, n := range notes {
		line := fmt.Sprintf("%s  %s  %s", n.ID, n.UpdatedAt.Format("2006-01-02 15:04"), n.Title)
		if len(n.Tags) > 0 {
			line += "  [" + strings.Join(n.Tags, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}

// Import creates a note from a file, sniffing whether it is markdown.
func (e *Env) Import(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no input file specified")
	}

	n, isMarkdown, err := e.Store.Import(args[0], e.Cfg.BaseFontSize)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", args[0], err)
	}
	e.Log.ImportDetected(args[0], isMarkdown)
	e.Log.NoteSaved(n.ID, n.Title)

	kind := "plain text"
	if isMarkdown {
		kind = "markdown"
	}
	fmt.Printf("Imported %s as %s note %s\n", args[0], kind, n.ID)
	return nil
}

// Export writes all active notes to a directory as markdown files.
func (e *Env) Export(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no output directory specified")
	}

	written, err := e.Store.Export(args[0])
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Exported %d note(s) to %s\n", written, args[0])
	return nil
}

// Convert canonicalizes a markdown file through the converter and
// prints the result.
func (e *Env) Convert(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no input file specified")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	doc := convert.ToDocument(string(data), e.Cfg.BaseFontSize)
	fmt.Print(convert.ToMarkdown(doc))
	return nil
}

// Trash moves a note to the trash.
func (e *Env) Trash(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no note id specified")
	}

	n, err := e.Store.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to load note %s: %w", args[0], err)
	}
	if err := e.Store.Trash(n.ID); err != nil {
		return fmt.Errorf("failed to trash note %s: %w", n.ID, err)
	}
	e.Log.NoteTrashed(n.ID, n.Title)
	fmt.Printf("Trashed %s (%s)\n", n.ID, n.Title)
	return nil
}

// Restore brings a note back from the trash.
func (e *Env) Restore(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no note id specified")
	}

	if err := e.Store.Restore(args[0]); err != nil {
		return fmt.Errorf("failed to restore note %s: %w", args[0], err)
	}
	e.Log.NoteRestored(args[0])
	fmt.Printf("Restored %s\n", args[0])
	return nil
}

// Purge permanently deletes trashed notes past the retention window.
func (e *Env) Purge(args []string) error {
	removed, err := e.Store.Purge(e.Cfg.Retention())
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}
	e.Log.NotesPurged(removed, e.Cfg.Retention())
	fmt.Printf("Purged %d note(s)\n", removed)
	return nil
}
