package conditions

import (
	tea "github.com/charmbracelet/bubbletea"
)

// internal message indicating the conditions fetch completed
type fetchedMsg struct {
	data *Data
}

// fetchCmd performs the three blocking fetches sequentially and extracts
// the wind and wave records. The tide series is kept whole for charting.
func fetchCmd(cfg Config) tea.Cmd {
	return func() tea.Msg {
		svc := NewService(cfg)
		data := NewData(cfg)

		data.setTide(svc.FetchTide())

		windResp, err := svc.FetchWind()
		if err == nil {
			data.setWind(ExtractWind(windResp))
		} else {
			data.setWind(nil, err)
		}

		waveDoc, err := svc.FetchWave()
		if err == nil {
			data.setWave(ExtractWave(waveDoc))
		} else {
			data.setWave(nil, err)
		}

		return fetchedMsg{data: data}
	}
}

// RefreshCmd re-fetches conditions on demand.
func RefreshCmd(cfg Config) tea.Cmd {
	return fetchCmd(cfg)
}

// HandleUpdate manages conditions-specific updates. It triggers an initial
// fetch the first time we get a window size (a proxy for program start)
// when no data has been loaded yet, and applies fetched data when received.
func HandleUpdate(data *Data, cfg Config, msg tea.Msg) (*Data, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		if data == nil { // trigger initial load once
			return data, fetchCmd(cfg)
		}
		_ = m // unused otherwise
	case fetchedMsg:
		return m.data, nil
	}
	return data, nil
}
