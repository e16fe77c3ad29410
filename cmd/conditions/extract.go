package conditions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error kinds surfaced by the extractors. Wrapped with context at each
// failure site; match with errors.Is.
var (
	// ErrMissingData means a required array or field was empty or absent.
	ErrMissingData = errors.New("missing data")
	// ErrParse means a value was present but not convertible.
	ErrParse = errors.New("parse error")
)

// Observation labels emitted by the extractors.
const (
	LabelTideStart      = "tide-start"
	LabelTideEnd        = "tide-end"
	LabelWindKnotsStart = "wind-knots-start"
	LabelWindDirStart   = "wind-direction-start"
	LabelWindKnotsEnd   = "wind-knots-end"
	LabelWindDirEnd     = "wind-direction-end"
	LabelWaveHeight     = "overall-wave-height"
	LabelWavePeriod     = "overall-wave-period"
	LabelSwellHeight    = "swell-height"
	LabelSwellPeriod    = "swell-period"
	LabelSwellDir       = "swell-direction"
)

// Observation is one labelled reading. Value is either a string or a
// float64 depending on the label.
type Observation struct {
	Label string
	Value any
}

// DisplayValue renders the value for human output. Floats use the shortest
// decimal form that round-trips.
func (o Observation) DisplayValue() string {
	switch v := o.Value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Record is the ordered output of one extractor call. A label appears at
// most once; readings missing from the source are simply absent.
type Record []Observation

// Get returns the value for a label, if present.
func (r Record) Get(label string) (any, bool) {
	for _, o := range r {
		if o.Label == label {
			return o.Value, true
		}
	}
	return nil, false
}

// ExtractTide pulls the first and last predicted water levels out of a
// decoded predictions payload. Values are kept as display strings with a
// foot suffix; the API already reports feet.
func ExtractTide(resp *TideResponse) (Record, error) {
	if resp == nil || len(resp.Predictions) == 0 {
		return nil, fmt.Errorf("%w: no tide predictions", ErrMissingData)
	}
	first := resp.Predictions[0]
	last := resp.Predictions[len(resp.Predictions)-1]
	return Record{
		{LabelTideStart, first.Value + " ft"},
		{LabelTideEnd, last.Value + " ft"},
	}, nil
}

// ExtractWind pulls the first and last wind readings out of a decoded wind
// observation payload. Speeds are parsed to knots; directions are already
// compass points and pass through unchanged.
func ExtractWind(resp *WindResponse) (Record, error) {
	if resp == nil || len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: no wind observations", ErrMissingData)
	}
	first := resp.Data[0]
	last := resp.Data[len(resp.Data)-1]
	firstKnots, err := strconv.ParseFloat(first.Speed, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: wind speed %q is not numeric", ErrParse, first.Speed)
	}
	lastKnots, err := strconv.ParseFloat(last.Speed, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: wind speed %q is not numeric", ErrParse, last.Speed)
	}
	return Record{
		{LabelWindKnotsStart, firstKnots},
		{LabelWindDirStart, first.Direction},
		{LabelWindKnotsEnd, lastKnots},
		{LabelWindDirEnd, last.Direction},
	}, nil
}

// waveMeasure maps a recognized measurement name to its output label and
// value conversion. Adding a measurement is a table change, not new code.
type waveMeasure struct {
	label   string
	convert func(string) (any, error)
}

var waveMeasures = map[string]waveMeasure{
	"SignificantWaveHeight": {LabelWaveHeight, toFeet},
	"DominantWavePeriod":    {LabelWavePeriod, rawValue},
	"SwellHeight":           {LabelSwellHeight, toFeet},
	"SwellPeriod":           {LabelSwellPeriod, rawValue},
	"SwellWaveDirection":    {LabelSwellDir, toCardinal},
}

func toFeet(v string) (any, error)     { return MetersToFeet(v) }
func rawValue(v string) (any, error)   { return v, nil }
func toCardinal(v string) (any, error) { return DegreesToCardinal(v) }

// ExtractWave depth-first-searches a decoded wave document for the
// recognized measurement nodes. A matched node contributes its scalar text
// and is not searched further; order of the record follows document order,
// first match per label. A document with no matches yields an empty record.
func ExtractWave(root *WaveNode) (Record, error) {
	if root == nil {
		return nil, nil
	}
	var rec Record
	seen := make(map[string]bool, len(waveMeasures))
	if err := walkWave(root, seen, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func walkWave(n *WaveNode, seen map[string]bool, rec *Record) error {
	m, ok := waveMeasures[n.Name]
	if !ok {
		for i := range n.Children {
			if err := walkWave(&n.Children[i], seen, rec); err != nil {
				return err
			}
		}
		return nil
	}
	text := strings.TrimSpace(n.Text)
	if text == "" {
		return fmt.Errorf("%w: measurement %s has no value", ErrParse, n.Name)
	}
	v, err := m.convert(text)
	if err != nil {
		return err
	}
	if !seen[m.label] {
		seen[m.label] = true
		*rec = append(*rec, Observation{m.label, v})
	}
	return nil
}
