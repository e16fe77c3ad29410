package conditions

import (
	"encoding/json"
	"encoding/xml"
)

// TideResponse matches the NOAA CO-OPS predictions payload. Heights arrive
// as decimal strings already in feet.
type TideResponse struct {
	Predictions []TidePrediction `json:"predictions"`
}

// TidePrediction is a single modeled water-level reading.
type TidePrediction struct {
	Time  string `json:"t"`
	Value string `json:"v"`
}

// WindResponse matches the NOAA CO-OPS wind observation payload.
type WindResponse struct {
	Metadata struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Lat  string `json:"lat"`
		Lon  string `json:"lon"`
	} `json:"metadata"`
	Data []WindObservation `json:"data"`
}

// WindObservation is a single wind reading. Speed and gust are decimal
// strings in knots; Direction is already a compass point from the API.
type WindObservation struct {
	Time      string `json:"t"`
	Speed     string `json:"s"`
	Degrees   string `json:"d"`
	Direction string `json:"dr"`
	Gust      string `json:"g"`
}

// WaveNode is one element of the NDBC wave observation document: a named
// tree where measurement elements carry a name attribute and a scalar text
// value, and everything else is structure to recurse through.
type WaveNode struct {
	XMLName  xml.Name
	Name     string     `xml:"name,attr"`
	Text     string     `xml:",chardata"`
	Children []WaveNode `xml:",any"`
}

// DecodeTide decodes a raw CO-OPS predictions body.
func DecodeTide(body []byte) (*TideResponse, error) {
	var resp TideResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DecodeWind decodes a raw CO-OPS wind observation body.
func DecodeWind(body []byte) (*WindResponse, error) {
	var resp WindResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DecodeWave decodes a raw wave observation XML body into its root node.
func DecodeWave(body []byte) (*WaveNode, error) {
	var root WaveNode
	if err := xml.Unmarshal(body, &root); err != nil {
		return nil, err
	}
	return &root, nil
}
