package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bullet-frenzy/internal/storage"
)

// Browser layout constants
const (
	maxRecordings = 200 // Max recordings to load
	chromeRows    = 8   // Title, borders and help around the table
)

// RecordingsKeyMap defines the key bindings for the recordings browser.
type RecordingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Watch  key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Watch, k.Delete, k.Quit},
	}
}

// DefaultRecordingsKeyMap returns default key bindings.
func DefaultRecordingsKeyMap() RecordingsKeyMap {
	return RecordingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordingsModel is the Bubble Tea model for browsing stored recordings.
type RecordingsModel struct {
	store    *storage.Store
	recs     []storage.Recording
	table    table.Model
	help     help.Model
	keys     RecordingsKeyMap
	width    int
	height   int
	status   string // Last error or confirmation
	selected string // Full ID chosen for watching
	quitting bool
}

// NewRecordingsModel creates a browser over the store's recordings.
func NewRecordingsModel(store *storage.Store, width, height int) RecordingsModel {
	m := RecordingsModel{
		store:  store,
		keys:   DefaultRecordingsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RecordingsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Game", Width: 12},
		{Title: "Seed", Width: 20},
		{Title: "Ticks", Width: 8},
		{Title: "Score", Width: 6},
		{Title: "Missed", Width: 6},
		{Title: "Life", Width: 4},
		{Title: "Date", Width: 12},
	}

	// Drop the seed column on narrow terminals
	if m.width < 100 {
		columns[2].Width = 0
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-chromeRows, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads recordings from the store into the table.
func (m *RecordingsModel) load() {
	if m.store == nil {
		m.recs = nil
		m.status = "no recordings database"
		m.updateTableRows()
		return
	}

	recs, err := m.store.ListRecordings(maxRecordings)
	if err != nil {
		m.recs = nil
		m.status = err.Error()
	} else {
		m.recs = recs
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current recordings.
func (m *RecordingsModel) updateTableRows() {
	rows := make([]table.Row, len(m.recs))
	for i, r := range m.recs {
		rows[i] = table.Row{
			r.ShortID(),
			r.GameID,
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Missed),
			fmt.Sprintf("%d", r.Life),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// current returns the recording under the cursor.
func (m RecordingsModel) current() (storage.Recording, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.recs) {
		return storage.Recording{}, false
	}
	return m.recs[i], true
}

// Init initializes the browser.
func (m RecordingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m RecordingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Watch):
			if rec, ok := m.current(); ok {
				m.selected = rec.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if rec, ok := m.current(); ok && m.store != nil {
				if err := m.store.DeleteRecording(rec.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = "deleted " + rec.ShortID()
				}
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m RecordingsModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("RECORDINGS (%d)", len(m.recs))), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.recs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(tableStyle.Render(emptyStyle.Render("No recordings yet.\nPlay with --record to save one!")), m.width))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the full ID of the recording chosen for watching.
func (m RecordingsModel) Selected() string {
	return m.selected
}

// Recordings returns the loaded recordings.
func (m RecordingsModel) Recordings() []storage.Recording {
	return m.recs
}

// RunRecordings runs the browser. Returns the ID chosen for watching, or ""
// when the user quit.
func RunRecordings(store *storage.Store, width, height int) (string, error) {
	model := NewRecordingsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(RecordingsModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
