package cmd

import (
	"os"
	"path/filepath"
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/wdavew/surf.el/cmd/conditions"
	"github.com/wdavew/surf.el/cmd/journal"
	"github.com/wdavew/surf.el/cmd/note"
)

type model struct {
	rightView  string // "journal" or "create"
	stations   conditions.Config
	condData   *conditions.Data
	journalSvc journal.Service
	journal    *journal.Journal
	draftNote  *note.Model
	width      int
	height     int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func initialModel() model {
	stations := stationConfig()
	jsvc, err := journal.NewFileService(viper.GetString("journal.dir"))
	var entries []note.Entry
	if err == nil {
		entries, _ = jsvc.List()
	}
	return model{
		rightView:  "journal",
		stations:   stations,
		condData:   nil,
		journalSvc: jsvc,
		journal:    journal.NewJournal(entries),
		keys:       keys,
		help:       bhelp.New(),
	}
}

func (m model) Init() tea.Cmd {
	// Just return `nil`, which means "no I/O right now, please."
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Journal):
			m.rightView = "journal"
		case key.Matches(msg, m.keys.Create):
			m.rightView = "create"
		case key.Matches(msg, m.keys.Refresh):
			return m, conditions.RefreshCmd(m.stations)
		}
	}

	// conditions update (always run; it internally no-ops when not needed)
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.condData, cmd = conditions.HandleUpdate(m.condData, m.stations, msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	// propagate updates to active right pane
	if m.rightView == "journal" && m.journal != nil {
		cmd = m.journal.Update(msg, rightPaneWidth(m.width), m.height)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.rightView == "create" {
		m.draftNote, cmd = note.UpdateModel(m.draftNote, m.stations, msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.draftNote.IsDoneAndUnpersisted() {
			m.persistDraft()
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// persistDraft saves the confirmed entry to the journal and writes the
// rendered note file, then returns to the journal view.
func (m *model) persistDraft() {
	entry := m.draftNote.Entry
	if m.journalSvc != nil {
		if saved, err := m.journalSvc.Create(entry); err == nil {
			entry = saved
		}
	}
	notesDir := viper.GetString("notes.dir")
	if entry.Note != "" && notesDir != "" {
		if err := os.MkdirAll(notesDir, 0o755); err == nil {
			_ = os.WriteFile(filepath.Join(notesDir, note.Filename(entry.SessionAt)), []byte(entry.Note), 0o644)
		}
	}
	if m.journal != nil {
		m.journal.AddEntry(entry)
	}
	m.draftNote.MarkPersisted()
	m.rightView = "journal"
}

func (m model) View() string {
	left := conditions.View(m.condData)
	var right string
	switch m.rightView {
	case "journal":
		if m.journal != nil {
			right = m.journal.View()
		} else {
			right = journal.View(nil)
		}
	case "create":
		right = note.View(m.draftNote)
	default:
		right = "unknown"
	}

	// determine split sizes (30% left min width 24)
	leftW := max(24, int(float64(m.width)*0.3))
	rightW := max(20, m.width-leftW-1)
	leftRendered := lipgloss.NewStyle().Width(leftW).Render(contentStyle.Render(left))
	rightRendered := lipgloss.NewStyle().Width(rightW).Render(contentStyle.Render(right))
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, dividerStyle.Render("│"), rightRendered)

	header := headerStyle.Render(appTitle) + " " + tabs(m.rightView, max(0, m.width-10))
	sep := dividerStyle.Render(lipgloss.NewStyle().Width(m.width).Render(strings.Repeat("─", max(0, m.width))))
	foot := m.help.View(m.keys)
	layout := lipgloss.JoinVertical(lipgloss.Left, header, sep, columns, sep, foot)
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}

// small helper shared across views
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// helper to compute right pane width for updates
func rightPaneWidth(total int) int {
	leftW := max(24, int(float64(total)*0.3))
	return max(20, total-leftW-1)
}
