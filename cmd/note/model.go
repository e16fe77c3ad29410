package note

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/wdavew/surf.el/cmd/conditions"
)

// Entry represents a single saved surf note.
// ID is assigned by the journal service when creating a new entry.
type Entry struct {
	ID        string    `json:"id"`
	Spot      string    `json:"spot"`
	WaveSize  string    `json:"wave_size"`
	SessionAt time.Time `json:"session_at"`
	Note      string    `json:"note"`
	Comments  string    `json:"comments"`
	CreatedAt string    `json:"created_at"`
}

// SizeOptions for perceived wave size.
var SizeOptions = []string{"Ankle", "Knee", "Waist", "Chest", "Shoulder", "Head", "Overhead"}

// Model drives the note creation form and gathers the extracted records
// that go into the rendered note.
type Model struct {
	Entry       Entry
	form        *huh.Form
	service     conditions.Service
	tideRec     conditions.Record
	windRec     conditions.Record
	waveRec     conditions.Record
	fetchErr    error
	fetching    bool
	fetched     bool
	dateStr     string
	timeStr     string
	spotStr     string
	sizeStr     string
	commentsStr string
	persisted   bool
	completed   bool // form has been completed
	confirmed   bool // user confirmed save
}

// NewModel creates a form model fetching conditions for the stations in cfg.
func NewModel(cfg conditions.Config) *Model {
	m := &Model{service: conditions.NewService(cfg)}
	now := time.Now()
	m.dateStr = now.Format("2006-01-02")
	m.timeStr = "07:30"
	m.sizeStr = SizeOptions[0]
	m.buildForm()
	return m
}

func (m *Model) buildForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Date").Value(&m.dateStr),
			huh.NewInput().Title("Time").Value(&m.timeStr),
			huh.NewInput().Title("Spot").Value(&m.spotStr),
			huh.NewSelect[string]().Title("Perceived Wave Size").Options(selectOptions(SizeOptions)...).Value(&m.sizeStr),
			huh.NewText().Title("Comments").Value(&m.commentsStr),
		),
	).WithShowHelp(false)
}

func selectOptions(vals []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(vals))
	for _, v := range vals {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m == nil {
		return nil
	}
	if m.form == nil {
		m.buildForm()
	}
	var cmd tea.Cmd
	if updated, ucmd := m.form.Update(msg); ucmd != nil {
		cmd = ucmd
		if f, ok := updated.(*huh.Form); ok {
			m.form = f
		}
	}
	if m.form.State == huh.StateCompleted && !m.completed {
		m.completed = true
		m.Entry.Spot = m.spotStr
		m.Entry.WaveSize = m.sizeStr
		m.Entry.Comments = m.commentsStr
		m.Entry.SessionAt = ParseSessionTime(m.dateStr, m.timeStr)
		m.Entry.Note = Render(m.Entry.SessionAt, m.tideRec, m.windRec, m.waveRec)
		return cmd
	}
	if !m.fetched && !m.fetching {
		m.fetching = true
		return tea.Batch(cmd, m.fetchRecordsCmd())
	}
	return cmd
}

// ParseSessionTime combines the date and time prompt answers, falling back
// to today at 07:30 on malformed input.
func ParseSessionTime(date, clock string) time.Time {
	if t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local); err == nil {
		return t
	}
	if d, err := time.ParseInLocation("2006-01-02", date, time.Local); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(), 7, 30, 0, 0, time.Local)
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 7, 30, 0, 0, now.Location())
}

// fetchRecordsCmd runs the three fetches and extractions off the UI loop.
// A failed extraction leaves that record empty rather than aborting.
func (m *Model) fetchRecordsCmd() tea.Cmd {
	return func() tea.Msg {
		var msg recordsMsg
		if resp, err := m.service.FetchTide(); err != nil {
			msg.Err = err
		} else if rec, err := conditions.ExtractTide(resp); err != nil {
			msg.Err = err
		} else {
			msg.Tide = rec
		}
		if resp, err := m.service.FetchWind(); err != nil {
			msg.Err = err
		} else if rec, err := conditions.ExtractWind(resp); err != nil {
			msg.Err = err
		} else {
			msg.Wind = rec
		}
		if doc, err := m.service.FetchWave(); err != nil {
			msg.Err = err
		} else if rec, err := conditions.ExtractWave(doc); err != nil {
			msg.Err = err
		} else {
			msg.Wave = rec
		}
		return msg
	}
}

// IsDoneAndUnpersisted returns true only after user confirmed save.
func (m *Model) IsDoneAndUnpersisted() bool {
	return m != nil && m.completed && m.confirmed && !m.persisted
}

// MarkPersisted records that the entry has been written out.
func (m *Model) MarkPersisted() {
	if m != nil {
		m.persisted = true
	}
}

type recordsMsg struct {
	Tide conditions.Record
	Wind conditions.Record
	Wave conditions.Record
	Err  error
}
