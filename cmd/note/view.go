package note

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var noteTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))
var faint = lipgloss.NewStyle().Faint(true)
var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
var highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)

// View renders the huh form state and a summary of the fetched conditions.
func View(m *Model) string {
	if m == nil {
		return noteTitleStyle.Render("New Note") + "\n" + faint.Render("(initializing)")
	}
	b := &strings.Builder{}
	fmt.Fprintln(b, noteTitleStyle.Render("New Note"))

	if m.fetchErr != nil {
		fmt.Fprintln(b, errStyle.Render("Conditions fetch error: "+m.fetchErr.Error()))
	}
	if m.fetching {
		fmt.Fprintln(b, faint.Render("Fetching conditions..."))
	}
	if m.fetched {
		total := len(m.tideRec) + len(m.windRec) + len(m.waveRec)
		fmt.Fprintln(b, faint.Render("\nObservations: ")+fmt.Sprintf("%d", total))
	}

	if m.form != nil {
		fmt.Fprintln(b, m.form.View())
	}
	if m.completed && !m.persisted {
		if !m.confirmed {
			fmt.Fprintf(b, "\nReview: %s | %s | %s\n", m.Entry.Spot, m.Entry.SessionAt.Format(time.Kitchen), m.Entry.WaveSize)
			fmt.Fprintln(b, highlight.Render("Press 'y' to confirm save or 'n' to discard & start over."))
		} else {
			fmt.Fprintf(b, "\nConfirmed. Saving note...\n")
		}
	}
	return b.String()
}
