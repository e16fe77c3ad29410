package note

import (
	"strings"
	"time"

	"github.com/wdavew/surf.el/cmd/conditions"
)

// Fixed section prompts written into every note for the surfer to fill in.
const (
	conditionsPrompt = "What did it look like out there?"
	sessionPrompt    = "How did the session go?"
)

// Render assembles the final note text: a headline, a properties drawer of
// the extracted observations keyed by upper-cased label, and the fixed
// fill-in sections. Records are written in tide, wind, wave order; an empty
// record simply contributes no lines.
func Render(sessionAt time.Time, tide, wind, wave conditions.Record) string {
	b := &strings.Builder{}
	b.WriteString("* Surf session ")
	b.WriteString(sessionAt.Format("2006-01-02 Mon"))
	b.WriteString("\n:PROPERTIES:\n")
	b.WriteString(":DATE: " + sessionAt.Format("2006-01-02") + "\n")
	b.WriteString(":TIME: " + sessionAt.Format("15:04") + "\n")
	for _, rec := range []conditions.Record{tide, wind, wave} {
		for _, o := range rec {
			b.WriteString(propertyLine(o))
		}
	}
	b.WriteString(":END:\n")
	b.WriteString("\n** Conditions\n")
	b.WriteString(conditionsPrompt + "\n")
	b.WriteString("\n** Session\n")
	b.WriteString(sessionPrompt + "\n")
	b.WriteString("\n** Summary\n")
	return b.String()
}

func propertyLine(o conditions.Observation) string {
	return ":" + strings.ToUpper(o.Label) + ": " + o.DisplayValue() + "\n"
}

// Filename returns the note file name for a session timestamp.
func Filename(sessionAt time.Time) string {
	return sessionAt.Format("2006-01-02-1504") + "-surf.org"
}
