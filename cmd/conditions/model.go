package conditions

// Data holds one round of fetched conditions for display: the full tide
// prediction series (for charting) plus the extracted wind and wave records.
// Fields are unexported to keep the public surface small until stabilized.
type Data struct {
	stations Config
	tide     *TideResponse
	tideErr  error
	wind     Record
	windErr  error
	wave     Record
	waveErr  error
}

// NewData builds a Data snapshot from the three fetch/extract outcomes.
func NewData(cfg Config) *Data {
	return &Data{stations: cfg}
}

func (d *Data) setTide(resp *TideResponse, err error) {
	d.tideErr = err
	if err == nil {
		d.tide = resp
	}
}

func (d *Data) setWind(rec Record, err error) {
	d.windErr = err
	if err == nil {
		d.wind = rec
	}
}

func (d *Data) setWave(rec Record, err error) {
	d.waveErr = err
	if err == nil {
		d.wave = rec
	}
}
