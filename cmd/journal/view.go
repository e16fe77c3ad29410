package journal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wdavew/surf.el/cmd/note"
)

var journalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
var journalEmptyStyle = lipgloss.NewStyle().Faint(true)
var journalEntrySpot = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
var journalEntryMeta = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

func renderEntry(e note.Entry) string {
	lines := []string{
		journalEntrySpot.Render(e.Spot),
		journalEntryMeta.Render(fmt.Sprintf("Session: %s  Size: %s", e.SessionAt.Format("2006-01-02 15:04"), e.WaveSize)),
	}
	if e.Comments != "" {
		lines = append(lines, e.Comments)
	}
	return strings.Join(lines, "\n")
}

// View renders a static newest-first listing, used when the interactive
// list is unavailable.
func View(journal *Journal) string {
	if journal == nil || len(journal.Entries) == 0 {
		return journalTitleStyle.Render("Journal") + "\n" + journalEmptyStyle.Render("No notes yet. Press 'c' to create one.")
	}
	var rendered []string
	for i := len(journal.Entries) - 1; i >= 0; i-- { // newest first
		rendered = append(rendered, renderEntry(journal.Entries[i]))
	}
	return journalTitleStyle.Render("Journal") + "\n" + strings.Join(rendered, "\n\n")
}
