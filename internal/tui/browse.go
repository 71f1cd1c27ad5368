package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/marknote/internal/note"
)

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
)

// notesLoadedMsg is sent when the note list is ready
type notesLoadedMsg struct {
	notes []*note.Note
	err   error
}

type browseModel struct {
	table     table.Model
	notes     []*note.Note
	err       error
	filtering bool
	tagFilter string
	width     int
	height    int

	store *note.Store
}

// initBrowseModel creates a new note browser model
func initBrowseModel(store *note.Store) browseModel {
	columns := []table.Column{
		{Title: "Title", Width: 40},
		{Title: "Tags", Width: 20},
		{Title: "Updated", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(ts)

	return browseModel{table: t, store: store}
}

func (m browseModel) Init() tea.Cmd {
	return m.reload()
}

// reload fetches the note list off the Update loop
func (m browseModel) reload() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		notes, err := store.List()
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m browseModel) resize(width, height int) browseModel {
	m.width = width
	m.height = height
	if height > 6 {
		m.table.SetHeight(height - 6)
	}
	return m
}

func (m browseModel) update(msg tea.Msg) (browseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.notes = msg.notes
		m.err = msg.err
		m.refreshRows()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "/":
			m.filtering = true
			m.tagFilter = ""
			return m, nil

		case "enter":
			if n := m.selectedNote(); n != nil {
				return m, func() tea.Msg { return openNoteMsg{note: n} }
			}

		case "n":
			fresh := note.New("")
			return m, func() tea.Msg { return openNoteMsg{note: fresh} }

		case "t":
			if n := m.selectedNote(); n != nil {
				store := m.store
				id := n.ID
				return m, func() tea.Msg {
					if err := store.Trash(id); err != nil {
						return notesLoadedMsg{err: err}
					}
					notes, err := store.List()
					return notesLoadedMsg{notes: notes, err: err}
				}
			}

		case "esc":
			if m.tagFilter != "" {
				m.tagFilter = ""
				m.refreshRows()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateFilter handles key input while typing a tag filter
func (m browseModel) updateFilter(msg tea.KeyMsg) (browseModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.refreshRows()
	case tea.KeyEsc:
		m.filtering = false
		m.tagFilter = ""
		m.refreshRows()
	case tea.KeyBackspace:
		if len(m.tagFilter) > 0 {
			runes := []rune(m.tagFilter)
			m.tagFilter = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes:
		m.tagFilter += string(msg.Runes)
	}
	return m, nil
}

func (m *browseModel) refreshRows() {
	visible := note.FilterByTag(m.notes, m.tagFilter)
	rows := make([]table.Row, 0, len(visible))
	for _, n := range visible {
		rows = append(rows, table.Row{
			n.Title,
			strings.Join(n.Tags, ", "),
			n.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	if len(rows) > 0 {
		m.table.SetCursor(0)
	}
}

func (m browseModel) selectedNote() *note.Note {
	visible := note.FilterByTag(m.notes, m.tagFilter)
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(visible) {
		return nil
	}
	return visible[idx]
}

func (m browseModel) view() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render("✗ "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.filtering {
		b.WriteString(filterStyle.Render("tag: "+m.tagFilter+"▌") + "\n")
	} else if m.tagFilter != "" {
		b.WriteString(filterStyle.Render(fmt.Sprintf("filtered by tag %q", m.tagFilter)) + "\n")
	}

	b.WriteString(helpStyle.Render("enter open • n new • t trash • / filter • q quit"))
	return b.String()
}
