package conditions

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestExtractTide(t *testing.T) {
	resp, err := DecodeTide([]byte(`{"predictions":[
		{"t":"2025-07-12 00:00","v":"1.2"},
		{"t":"2025-07-12 00:06","v":"1.4"},
		{"t":"2025-07-12 23:54","v":"0.8"}]}`))
	if err != nil {
		t.Fatalf("DecodeTide error: %v", err)
	}
	rec, err := ExtractTide(resp)
	if err != nil {
		t.Fatalf("ExtractTide error: %v", err)
	}
	want := Record{
		{LabelTideStart, "1.2 ft"},
		{LabelTideEnd, "0.8 ft"},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("ExtractTide mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTide_SingleElement(t *testing.T) {
	rec, err := ExtractTide(&TideResponse{Predictions: []TidePrediction{{Value: "1.2"}}})
	if err != nil {
		t.Fatalf("ExtractTide error: %v", err)
	}
	start, _ := rec.Get(LabelTideStart)
	end, _ := rec.Get(LabelTideEnd)
	if start != "1.2 ft" || end != "1.2 ft" {
		t.Errorf("start = %v, end = %v, want both \"1.2 ft\"", start, end)
	}
}

func TestExtractTide_Empty(t *testing.T) {
	for name, resp := range map[string]*TideResponse{
		"nil response":      nil,
		"empty predictions": {},
	} {
		if _, err := ExtractTide(resp); !errors.Is(err, ErrMissingData) {
			t.Errorf("%s: error = %v, want ErrMissingData", name, err)
		}
	}
}

func TestExtractWind(t *testing.T) {
	resp, err := DecodeWind([]byte(`{
		"metadata":{"id":"9410230","name":"La Jolla"},
		"data":[
			{"t":"2025-07-12 00:00","s":"5","d":"315.0","dr":"NW","g":"7.2"},
			{"t":"2025-07-12 12:00","s":"8.5","d":"270.0","dr":"W","g":"11.0"},
			{"t":"2025-07-12 23:54","s":"10","d":"135.0","dr":"SE","g":"12.3"}]}`))
	if err != nil {
		t.Fatalf("DecodeWind error: %v", err)
	}
	rec, err := ExtractWind(resp)
	if err != nil {
		t.Fatalf("ExtractWind error: %v", err)
	}
	want := Record{
		{LabelWindKnotsStart, 5.0},
		{LabelWindDirStart, "NW"},
		{LabelWindKnotsEnd, 10.0},
		{LabelWindDirEnd, "SE"},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("ExtractWind mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractWind_Empty(t *testing.T) {
	if _, err := ExtractWind(&WindResponse{}); !errors.Is(err, ErrMissingData) {
		t.Errorf("error = %v, want ErrMissingData", err)
	}
}

func TestExtractWind_BadSpeed(t *testing.T) {
	resp := &WindResponse{Data: []WindObservation{{Speed: "calm", Direction: "N"}}}
	if _, err := ExtractWind(resp); !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestExtractWave_AllMeasurements(t *testing.T) {
	// Measurements scattered at different depths; output must follow
	// document order.
	root, err := DecodeWave([]byte(`<observation>
		<station id="46232">
			<field name="SwellHeight">1.5</field>
			<field name="SignificantWaveHeight">2.0</field>
		</station>
		<field name="DominantWavePeriod">14</field>
		<extra>
			<field name="SwellPeriod">12</field>
		</extra>
		<field name="SwellWaveDirection">290</field>
	</observation>`))
	if err != nil {
		t.Fatalf("DecodeWave error: %v", err)
	}
	rec, err := ExtractWave(root)
	if err != nil {
		t.Fatalf("ExtractWave error: %v", err)
	}
	want := Record{
		{LabelSwellHeight, 1.5 * 3.28084},
		{LabelWaveHeight, 2.0 * 3.28084},
		{LabelWavePeriod, "14"},
		{LabelSwellPeriod, "12"},
		{LabelSwellDir, "ESE"}, // 290° shifts to 110
	}
	if diff := cmp.Diff(want, rec, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("ExtractWave mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractWave_NoMatches(t *testing.T) {
	root, err := DecodeWave([]byte(`<observation>
		<station id="46232"><field name="WaterTemperature">18.1</field></station>
	</observation>`))
	if err != nil {
		t.Fatalf("DecodeWave error: %v", err)
	}
	rec, err := ExtractWave(root)
	if err != nil {
		t.Fatalf("ExtractWave error: %v", err)
	}
	if len(rec) != 0 {
		t.Errorf("record = %v, want empty", rec)
	}
}

func TestExtractWave_NilRoot(t *testing.T) {
	rec, err := ExtractWave(nil)
	if err != nil || len(rec) != 0 {
		t.Errorf("ExtractWave(nil) = %v, %v, want empty record and nil error", rec, err)
	}
}

func TestExtractWave_MatchStopsRecursion(t *testing.T) {
	root, err := DecodeWave([]byte(`<observation>
		<field name="SwellHeight">1.5<field name="SwellPeriod">9</field></field>
	</observation>`))
	if err != nil {
		t.Fatalf("DecodeWave error: %v", err)
	}
	rec, err := ExtractWave(root)
	if err != nil {
		t.Fatalf("ExtractWave error: %v", err)
	}
	if _, ok := rec.Get(LabelSwellPeriod); ok {
		t.Error("swell-period extracted from inside a matched node; matched nodes must not be searched")
	}
	if _, ok := rec.Get(LabelSwellHeight); !ok {
		t.Error("swell-height missing")
	}
}

func TestExtractWave_FirstMatchWins(t *testing.T) {
	root, err := DecodeWave([]byte(`<observation>
		<field name="SwellPeriod">12</field>
		<field name="SwellPeriod">99</field>
	</observation>`))
	if err != nil {
		t.Fatalf("DecodeWave error: %v", err)
	}
	rec, err := ExtractWave(root)
	if err != nil {
		t.Fatalf("ExtractWave error: %v", err)
	}
	want := Record{{LabelSwellPeriod, "12"}}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("ExtractWave mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractWave_MissingScalar(t *testing.T) {
	root, err := DecodeWave([]byte(`<observation><field name="SwellHeight"></field></observation>`))
	if err != nil {
		t.Fatalf("DecodeWave error: %v", err)
	}
	if _, err := ExtractWave(root); !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestExtractWave_NonNumericHeight(t *testing.T) {
	root, err := DecodeWave([]byte(`<observation><field name="SignificantWaveHeight">big</field></observation>`))
	if err != nil {
		t.Fatalf("DecodeWave error: %v", err)
	}
	if _, err := ExtractWave(root); !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestObservationDisplayValue(t *testing.T) {
	tests := []struct {
		obs  Observation
		want string
	}{
		{Observation{LabelTideStart, "1.2 ft"}, "1.2 ft"},
		{Observation{LabelWindKnotsStart, 5.0}, "5"},
		{Observation{LabelSwellHeight, 4.92126}, "4.92126"},
	}
	for _, tt := range tests {
		if got := tt.obs.DisplayValue(); got != tt.want {
			t.Errorf("DisplayValue(%v) = %q, want %q", tt.obs.Value, got, tt.want)
		}
	}
}
