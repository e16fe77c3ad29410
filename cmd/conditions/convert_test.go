package conditions

import (
	"errors"
	"math"
	"testing"
)

func TestMetersToFeet(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1", 3.28084},
		{"0", 0},
		{"2.5", 8.2021},
		{"0.61", 2.0013124},
	}
	for _, tt := range tests {
		got, err := MetersToFeet(tt.in)
		if err != nil {
			t.Errorf("MetersToFeet(%q) error: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("MetersToFeet(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMetersToFeet_NotNumeric(t *testing.T) {
	_, err := MetersToFeet("deep")
	if !errors.Is(err, ErrParse) {
		t.Errorf("MetersToFeet(\"deep\") error = %v, want ErrParse", err)
	}
}

func TestDegreesToCardinal_SectorMidpoints(t *testing.T) {
	// Bearing midpoints and the compass point each maps to after the 180°
	// shift (e.g. a reading of 0° lands in the S bucket).
	tests := []struct {
		in   string
		want string
	}{
		{"180", "N"},
		{"202.5", "NNE"},
		{"225", "NE"},
		{"247.5", "ENE"},
		{"270", "E"},
		{"292.5", "ESE"},
		{"315", "SE"},
		{"337.5", "SSE"},
		{"0", "S"},
		{"22.5", "SSW"},
		{"45", "SW"},
		{"67.5", "WSW"},
		{"90", "W"},
		{"112.5", "WNW"},
		{"135", "NW"},
		{"157.5", "NNW"},
	}
	for _, tt := range tests {
		got, err := DegreesToCardinal(tt.in)
		if err != nil {
			t.Errorf("DegreesToCardinal(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DegreesToCardinal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDegreesToCardinal_BucketBoundaries(t *testing.T) {
	// A shifted value sitting exactly on a threshold fails the
	// strictly-greater test and falls through to the next bucket.
	tests := []struct {
		in      string // input bearing
		shifted float64
		want    string
	}{
		{"180", 0, "N"}, // only the terminal default yields N at exactly 0
		{"191", 11, "N"},
		{"213", 33, "NNE"},
		{"236", 56, "NE"},
		{"258", 78, "ENE"},
		{"281", 101, "E"},
		{"303", 123, "ESE"},
		{"326", 146, "SE"},
		{"348", 168, "SSE"},
		{"11", 191, "S"},
		{"33", 213, "SSW"},
		{"56", 236, "SW"},
		{"78", 258, "WSW"},
		{"101", 281, "W"},
		{"123", 303, "WNW"},
		{"146", 326, "NW"},
		{"168", 348, "NNW"},
		{"170", 350, "N"},
	}
	for _, tt := range tests {
		got, err := DegreesToCardinal(tt.in)
		if err != nil {
			t.Errorf("DegreesToCardinal(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DegreesToCardinal(%q) (shifted %v) = %q, want %q", tt.in, tt.shifted, got, tt.want)
		}
	}
}

func TestDegreesToCardinal_NotNumeric(t *testing.T) {
	_, err := DegreesToCardinal("WNW")
	if !errors.Is(err, ErrParse) {
		t.Errorf("DegreesToCardinal(\"WNW\") error = %v, want ErrParse", err)
	}
}
