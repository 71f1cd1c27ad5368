// Package tui is the terminal front end: a note browser and the editor
// that hosts the markdown conversion and list-continuation engines.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/marknote/internal/config"
	"github.com/gerunddev/marknote/internal/logger"
	"github.com/gerunddev/marknote/internal/note"
)

type mode int

const (
	modeBrowse mode = iota
	modeEditor
)

// openNoteMsg switches to the editor with the given note loaded.
type openNoteMsg struct {
	note *note.Note
}

// closeEditorMsg returns to the browser, refreshing the note list.
type closeEditorMsg struct{}

// Model is the root Bubble Tea model, dispatching between the note
// browser and the editor.
type Model struct {
	mode   mode
	browse browseModel
	editor editorModel

	store *note.Store
	cfg   *config.Config
	log   *logger.Logger
}

// NewModel creates the root model in browse mode.
func NewModel(store *note.Store, cfg *config.Config, log *logger.Logger) Model {
	return Model{
		mode:   modeBrowse,
		browse: initBrowseModel(store),
		store:  store,
		cfg:    cfg,
		log:    log,
	}
}

func (m Model) Init() tea.Cmd {
	return m.browse.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openNoteMsg:
		m.mode = modeEditor
		m.editor = initEditorModel(msg.note, m.store, m.cfg, m.log)
		return m, nil

	case closeEditorMsg:
		m.mode = modeBrowse
		return m, m.browse.reload()

	case tea.WindowSizeMsg:
		m.browse = m.browse.resize(msg.Width, msg.Height)
		m.editor = m.editor.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeEditor:
		m.editor, cmd = m.editor.update(msg)
	default:
		m.browse, cmd = m.browse.update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.mode == modeEditor {
		return m.editor.view()
	}
	return m.browse.view()
}

// Run starts the full-screen application in the note browser.
func Run(store *note.Store, cfg *config.Config, log *logger.Logger) error {
	p := tea.NewProgram(NewModel(store, cfg, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunWithNote starts the application directly in the editor.
func RunWithNote(n *note.Note, store *note.Store, cfg *config.Config, log *logger.Logger) error {
	m := NewModel(store, cfg, log)
	m.mode = modeEditor
	m.editor = initEditorModel(n, store, cfg, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
