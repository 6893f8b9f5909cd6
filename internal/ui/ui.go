// Package ui is the bubbletea shell around the editor core: an entry list
// screen and the journal screen with the capture box and content pane.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"daylog/internal/config"
	"daylog/internal/editor"
	"daylog/internal/store"
)

type screen string

const (
	screenList    screen = "list"    // choose entry
	screenJournal screen = "journal" // edit the chosen entry
)

type Model struct {
	st       *store.Store
	settings config.Settings
	ed       *editor.Editor

	scr     screen
	entries []store.Entry
	cursor  int

	width  int
	height int

	showHelp bool
	showDiff bool
	status   string

	// stored content snapshot backing the diff overlay
	diffBase string
}

// Run opens the journal UI over the given store.
func Run(st *store.Store, settings config.Settings) error {
	m := newModel(st, settings)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(st *store.Store, settings config.Settings) Model {
	ed := editor.New(st, editor.SystemClipboard(), settings.SyncOSClipboard)
	return Model{
		st:       st,
		settings: settings,
		ed:       ed,
		scr:      screenList,
		entries:  st.Active(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
			// content pane minus borders, entry box and status line
			m.ed.SetPageSize(msg.Height - 8)
		}
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenList {
			return m.updateList(msg)
		}
		return m.updateJournal(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.entries) == 0 {
			return m, nil
		}
		id := m.entries[m.cursor].ID
		m.openEntry(&id)
		return m, nil
	case "n":
		// start an empty journal view with no backing entry
		m.st.SetCurrent(0)
		m.ed.Load(nil)
		m.ed.SetActive(true)
		m.scr = screenJournal
		m.status = "no entry loaded"
		return m, nil
	}
	return m, nil
}

func (m *Model) openEntry(id *int) {
	m.status = ""
	if id != nil {
		m.st.SetCurrent(*id)
	} else {
		m.st.SetCurrent(0)
	}
	if err := m.ed.Load(id); err != nil {
		m.status = err.Error()
	}
	m.ed.SetActive(true)
	// out-of-band mirror of the data file; never awaited
	m.st.Mirror(m.settings.BackupDir, nil)
	m.scr = screenJournal
}

func (m Model) updateJournal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showDiff {
		switch k {
		case "esc", "q", "ctrl+g":
			m.showDiff = false
		}
		return m, nil
	}

	switch k {
	case "ctrl+c":
		return m, tea.Quit
	case "f1":
		m.showHelp = true
		return m, nil
	case "ctrl+g":
		if entry, ok := m.st.Current(); ok {
			m.diffBase = entry.Content
			m.showDiff = true
		} else {
			m.status = "no stored entry to compare against"
		}
		return m, nil
	case "ctrl+s":
		m.save()
		return m, nil
	case "ctrl+o":
		m.ed.SetActive(false)
		m.scr = screenList
		m.entries = m.st.Active()
		return m, nil
	}

	m.status = ""
	res, err := m.ed.HandlePrioritized(msg)
	if res == editor.NotFound {
		_, err = m.ed.Handle(msg)
	}
	if err != nil {
		m.status = err.Error()
	}
	return m, nil
}

func (m *Model) save() {
	entry, ok := m.st.Current()
	if !ok {
		m.status = "nothing to save"
		return
	}
	m.st.SetContent(entry.ID, m.ed.Content())
	if err := m.st.Save(); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.ed.Saved()
	m.status = "saved"
}

/* ---------- views ---------- */

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	selStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)

	paneNormal = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	paneInsert = paneNormal.BorderForeground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	paneVisual = paneNormal.BorderForeground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})
)

func (m Model) View() string {
	if m.scr == screenList {
		return m.viewList()
	}
	return m.viewJournal()
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Journal entries") + "\n")
	if len(m.entries) == 0 {
		b.WriteString("No entries yet.\n")
	}
	for i, e := range m.entries {
		label := fmt.Sprintf("%s  %s", e.Date.Format("2006-01-02"), e.Title)
		line := "  " + label
		if i == m.cursor {
			line = selStyle.Render("> " + label)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nenter: open   n: scratch   q: quit\n")
	if m.status != "" {
		b.WriteString(faintStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m Model) viewJournal() string {
	if m.showHelp {
		return helpView(m.ed.Mode())
	}
	if m.showDiff {
		return renderUnsavedDiff(m.diffBase, m.ed.Content())
	}

	var b strings.Builder

	entryTitle := "Entry"
	entryPane := paneNormal
	if m.ed.EntryBoxActive() {
		entryTitle += " - EDIT"
		entryPane = paneInsert
	}
	b.WriteString(titleStyle.Render(entryTitle) + "\n")
	b.WriteString(entryPane.Render(m.ed.EntryBoxView()) + "\n")

	contentTitle := "Content"
	if !m.ed.EntryBoxActive() {
		contentTitle += " - " + m.ed.Mode().String()
	}
	if m.ed.HasUnsaved() {
		contentTitle += " *"
	}
	pane := paneNormal
	switch m.ed.Mode() {
	case editor.ModeInsert:
		pane = paneInsert
	case editor.ModeVisual:
		pane = paneVisual
	}
	b.WriteString(titleStyle.Render(contentTitle) + "\n")
	b.WriteString(pane.Render(m.contentView()) + "\n")

	b.WriteString(statusLine(m.ed, m.status) + "\n")
	return b.String()
}

// contentView renders a window of buffer lines around the cursor with the
// cursor cell reversed.
func (m Model) contentView() string {
	buf := m.ed.Buffer()
	lines := buf.Lines()
	row, col := buf.Cursor()

	visible := m.height - 8
	if visible < 3 {
		visible = 3
	}
	start := 0
	if row >= visible {
		start = row - visible + 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		line := lines[i]
		if i == row && !m.ed.EntryBoxActive() {
			line = renderCursorLine(line, col)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderCursorLine(line string, col int) string {
	r := []rune(line)
	if col >= len(r) {
		return line + cursorStyle.Render(" ")
	}
	return string(r[:col]) + cursorStyle.Render(string(r[col])) + string(r[col+1:])
}
