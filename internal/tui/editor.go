package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/marknote/internal/config"
	"github.com/gerunddev/marknote/internal/convert"
	"github.com/gerunddev/marknote/internal/document"
	"github.com/gerunddev/marknote/internal/editor"
	"github.com/gerunddev/marknote/internal/logger"
	"github.com/gerunddev/marknote/internal/note"
)

var (
	h1Style     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	h2Style     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))
	h3Style     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	ruleStyle   = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	savedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// editorModel hosts the live styled document. Enter and Backspace are
// offered to the list-continuation engine first; anything it does not
// handle falls back to plain insert/delete.
type editorModel struct {
	doc    document.StyledDocument
	cursor int
	note   *note.Note
	dirty  bool
	status string
	width  int
	height int

	store *note.Store
	cfg   *config.Config
	log   *logger.Logger
}

func initEditorModel(n *note.Note, store *note.Store, cfg *config.Config, log *logger.Logger) editorModel {
	doc := convert.ToDocument(n.Markdown, cfg.BaseFontSize)
	return editorModel{
		doc:    doc,
		cursor: doc.Len(),
		note:   n,
		store:  store,
		cfg:    cfg,
		log:    log,
	}
}

func (m editorModel) resize(width, height int) editorModel {
	m.width = width
	m.height = height
	return m
}

func (m editorModel) update(msg tea.Msg) (editorModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		return m, func() tea.Msg { return closeEditorMsg{} }

	case "ctrl+s":
		return m.save()

	case "enter":
		res := editor.OnEnter(m.doc, m.cursorRange())
		if res.Handled {
			return m.apply(res), nil
		}
		return m.insert("\n"), nil

	case "backspace":
		res := editor.OnBackspace(m.doc, m.cursorRange())
		if res.Handled {
			return m.apply(res), nil
		}
		if m.cursor > 0 {
			m.doc = m.doc.Replace(document.Range{Start: m.cursor - 1, End: m.cursor}, "", document.RunStyle{})
			m.cursor--
			m.dirty = true
		}
		return m, nil

	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "right":
		if m.cursor < m.doc.Len() {
			m.cursor++
		}
		return m, nil

	case "up":
		return m.moveVertical(-1), nil

	case "down":
		return m.moveVertical(1), nil

	case "home":
		start, _ := m.doc.LineAt(m.cursor)
		m.cursor = start
		return m, nil

	case "end":
		_, end := m.doc.LineAt(m.cursor)
		m.cursor = end
		return m, nil

	case "tab":
		return m.insert("\t"), nil
	}

	if key.Type == tea.KeyRunes || key.Type == tea.KeySpace {
		text := string(key.Runes)
		if key.Type == tea.KeySpace {
			text = " "
		}
		return m.insert(text), nil
	}
	return m, nil
}

func (m editorModel) cursorRange() document.Range {
	return document.Range{Start: m.cursor, End: m.cursor}
}

func (m editorModel) apply(res editor.Result) editorModel {
	m.doc = res.Doc
	m.cursor = res.Cursor.Start
	m.dirty = true
	m.status = ""
	return m
}

func (m editorModel) insert(text string) editorModel {
	m.doc = m.doc.Replace(m.cursorRange(), text, document.RunStyle{})
	m.cursor += len([]rune(text))
	m.dirty = true
	m.status = ""
	return m
}

// moveVertical moves the cursor a line up or down, keeping the column
// where the target line allows.
func (m editorModel) moveVertical(delta int) editorModel {
	start, end := m.doc.LineAt(m.cursor)
	col := m.cursor - start

	if delta < 0 {
		if start == 0 {
			return m
		}
		pStart, pEnd := m.doc.LineAt(start - 1)
		m.cursor = min(pStart+col, pEnd)
		return m
	}

	if end >= m.doc.Len() {
		return m
	}
	nStart, nEnd := m.doc.LineAt(end + 1)
	m.cursor = min(nStart+col, nEnd)
	return m
}

func (m editorModel) save() (editorModel, tea.Cmd) {
	m.note.Markdown = convert.ToMarkdown(m.doc)
	if err := m.store.Save(m.note); err != nil {
		m.log.StoreError("save", err)
		m.status = errorStyle.Render("✗ save failed: " + err.Error())
		return m, nil
	}
	m.log.NoteSaved(m.note.ID, m.note.Title)
	m.dirty = false
	m.status = savedStyle.Render("✓ saved")
	return m, nil
}

func (m editorModel) view() string {
	var b strings.Builder

	title := m.note.Title
	if m.dirty {
		title += " •"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(renderDocument(m.doc, m.cursor))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(statusStyle.Render("ctrl+s save • esc back • ctrl+c quit"))
	return b.String()
}

// renderDocument draws each run in its style, splitting the run under
// the cursor so the cursor cell renders reversed.
func renderDocument(doc document.StyledDocument, cursor int) string {
	var b strings.Builder
	off := 0
	for _, run := range doc.Runs {
		runes := []rune(run.Text)
		if cursor >= off && cursor < off+len(runes) {
			at := cursor - off
			b.WriteString(renderRun(string(runes[:at]), run.Style))
			cursorText := string(runes[at])
			if cursorText == "\n" {
				b.WriteString(cursorStyle.Render(" ") + "\n")
			} else {
				b.WriteString(cursorStyle.Render(cursorText))
			}
			b.WriteString(renderRun(string(runes[at+1:]), run.Style))
		} else {
			b.WriteString(renderRun(run.Text, run.Style))
		}
		off += len(runes)
	}
	if cursor >= off {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

func renderRun(text string, style document.RunStyle) string {
	if text == "" {
		return ""
	}
	switch style.HeadingLevel {
	case 1:
		return h1Style.Render(text)
	case 2:
		return h2Style.Render(text)
	case 3:
		return h3Style.Render(text)
	}
	if style.HorizontalRule {
		return ruleStyle.Render(text)
	}

	s := lipgloss.NewStyle()
	if style.Bold {
		s = s.Bold(true)
	}
	if style.Italic {
		s = s.Italic(true)
	}
	if style.Underline || style.Link != "" {
		s = s.Underline(true)
	}
	if strings.Contains(style.FontFamily, "Mono") {
		s = s.Foreground(lipgloss.Color("179"))
	}
	return s.Render(text)
}
