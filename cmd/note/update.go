package note

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wdavew/surf.el/cmd/conditions"
)

// UpdateModel updates the note form model and returns a potential command.
func UpdateModel(m *Model, cfg conditions.Config, msg tea.Msg) (*Model, tea.Cmd) {
	if m == nil {
		m = NewModel(cfg)
	}
	switch msg := msg.(type) {
	case recordsMsg:
		m.fetching = false
		m.fetched = true
		m.fetchErr = msg.Err
		m.tideRec = msg.Tide
		m.windRec = msg.Wind
		m.waveRec = msg.Wave
		return m, nil
	}

	// If form completed but not confirmed/persisted, watch for confirmation keys.
	if m.completed && !m.confirmed && !m.persisted {
		if km, ok := msg.(tea.KeyMsg); ok {
			s := km.String()
			if s == "y" || s == "enter" { // confirm save
				m.confirmed = true
				return m, nil
			}
			if s == "n" || s == "esc" { // discard and reset
				return NewModel(cfg), nil
			}
		}
	}
	cmd := m.Update(msg)
	return m, cmd
}
