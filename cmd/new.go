package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wdavew/surf.el/cmd/conditions"
	"github.com/wdavew/surf.el/cmd/journal"
	"github.com/wdavew/surf.el/cmd/note"
)

// newCmd writes a single session note: prompt for the session date/time,
// fetch conditions, render the note, save it, print it.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create one surf session note and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		dateStr := now.Format("2006-01-02")
		timeStr := "07:30"
		spotStr := ""

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Session date").Value(&dateStr),
				huh.NewInput().Title("Session time").Value(&timeStr),
				huh.NewInput().Title("Spot").Value(&spotStr),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		sessionAt := note.ParseSessionTime(dateStr, timeStr)

		cfg := stationConfig()
		svc := conditions.NewService(cfg)
		tideRec := fetchRecord("tide", func() (conditions.Record, error) {
			resp, err := svc.FetchTide()
			if err != nil {
				return nil, err
			}
			return conditions.ExtractTide(resp)
		})
		windRec := fetchRecord("wind", func() (conditions.Record, error) {
			resp, err := svc.FetchWind()
			if err != nil {
				return nil, err
			}
			return conditions.ExtractWind(resp)
		})
		waveRec := fetchRecord("wave", func() (conditions.Record, error) {
			doc, err := svc.FetchWave()
			if err != nil {
				return nil, err
			}
			return conditions.ExtractWave(doc)
		})

		text := note.Render(sessionAt, tideRec, windRec, waveRec)

		notesDir := viper.GetString("notes.dir")
		if err := os.MkdirAll(notesDir, 0o755); err != nil {
			return err
		}
		notePath := filepath.Join(notesDir, note.Filename(sessionAt))
		if err := os.WriteFile(notePath, []byte(text), 0o644); err != nil {
			return err
		}

		if spotStr != "" {
			jsvc, err := journal.NewFileService(viper.GetString("journal.dir"))
			if err != nil {
				return err
			}
			if _, err := jsvc.Create(note.Entry{Spot: spotStr, SessionAt: sessionAt, Note: text}); err != nil {
				return err
			}
		}

		fmt.Fprintln(os.Stderr, "Wrote", notePath)
		fmt.Print(text)
		return nil
	},
}

// fetchRecord runs one fetch+extract step. A failed step is reported and
// contributes an empty record so the note is still written.
func fetchRecord(name string, get func() (conditions.Record, error)) conditions.Record {
	rec, err := get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s data unavailable: %v\n", name, err)
		return nil
	}
	return rec
}

func init() {
	rootCmd.AddCommand(newCmd)
}
