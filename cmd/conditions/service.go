package conditions

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultCoopsURL = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"
	defaultSosURL   = "https://sdf.ndbc.noaa.gov/sos/server.php"
)

// Config identifies the upstream stations to query. Threaded in explicitly
// so a future profile switch is a config change, not a code change.
type Config struct {
	// TideStation is the CO-OPS station for tide predictions.
	TideStation string
	// MetStation is the CO-OPS station for wind observations.
	MetStation string
	// BuoyStation is the NDBC buoy for wave observations.
	BuoyStation string
}

// Service fetches the three raw observation payloads for today, decoded but
// otherwise untouched. All calls are synchronous.
type Service interface {
	FetchTide() (*TideResponse, error)
	FetchWind() (*WindResponse, error)
	FetchWave() (*WaveNode, error)
}

var _ Service = (*dataService)(nil)

type dataService struct {
	cfg        Config
	coopsURL   string
	sosURL     string
	httpClient *http.Client
}

// NewService creates a Service for the stations in cfg.
func NewService(cfg Config) Service {
	return &dataService{
		cfg:        cfg,
		coopsURL:   defaultCoopsURL,
		sosURL:     defaultSosURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *dataService) get(requestURL string) ([]byte, error) {
	resp, err := s.httpClient.Get(requestURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected status code: " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (s *dataService) coopsQuery(product, station string) string {
	params := url.Values{}
	params.Add("date", "today")
	params.Add("station", station)
	params.Add("product", product)
	params.Add("datum", "MLLW")
	params.Add("time_zone", "lst_ldt")
	params.Add("units", "english")
	params.Add("format", "json")
	return fmt.Sprintf("%s?%s", s.coopsURL, params.Encode())
}

// FetchTide retrieves today's tide predictions for the configured station.
func (s *dataService) FetchTide() (*TideResponse, error) {
	body, err := s.get(s.coopsQuery("predictions", s.cfg.TideStation))
	if err != nil {
		return nil, err
	}
	return DecodeTide(body)
}

// FetchWind retrieves today's wind observations for the configured station.
func (s *dataService) FetchWind() (*WindResponse, error) {
	body, err := s.get(s.coopsQuery("wind", s.cfg.MetStation))
	if err != nil {
		return nil, err
	}
	return DecodeWind(body)
}

// FetchWave retrieves the latest wave observation document for the
// configured buoy from the NDBC SOS endpoint.
func (s *dataService) FetchWave() (*WaveNode, error) {
	params := url.Values{}
	params.Add("request", "GetObservation")
	params.Add("service", "SOS")
	params.Add("version", "1.0.0")
	params.Add("offering", "urn:ioos:station:wmo:"+s.cfg.BuoyStation)
	params.Add("observedproperty", "waves")
	params.Add("responseformat", "text/xml")
	body, err := s.get(fmt.Sprintf("%s?%s", s.sosURL, params.Encode()))
	if err != nil {
		return nil, err
	}
	return DecodeWave(body)
}
