package conditions

import (
	"fmt"
	"math"
	"strconv"
)

const feetPerMeter = 3.28084

// MetersToFeet converts a metric height reading (decimal string) to feet.
func MetersToFeet(v string) (float64, error) {
	m, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: height %q is not numeric", ErrParse, v)
	}
	return m * feetPerMeter, nil
}

// DegreesToCardinal maps a direction-from bearing in degrees to one of the
// 16 compass points. The bearing is shifted 180° before bucketing, so the
// returned point names the sector the reading opposes (e.g. 0° -> "S").
func DegreesToCardinal(v string) (string, error) {
	deg, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return "", fmt.Errorf("%w: bearing %q is not numeric", ErrParse, v)
	}
	nd := math.Mod(deg+180, 360)
	if nd < 0 {
		nd += 360
	}
	switch {
	case nd > 348:
		return "N", nil
	case nd > 326:
		return "NNW", nil
	case nd > 303:
		return "NW", nil
	case nd > 281:
		return "WNW", nil
	case nd > 258:
		return "W", nil
	case nd > 236:
		return "WSW", nil
	case nd > 213:
		return "SW", nil
	case nd > 191:
		return "SSW", nil
	case nd > 168:
		return "S", nil
	case nd > 146:
		return "SSE", nil
	case nd > 123:
		return "SE", nil
	case nd > 101:
		return "ESE", nil
	case nd > 78:
		return "E", nil
	case nd > 56:
		return "ENE", nil
	case nd > 33:
		return "NE", nil
	case nd > 11:
		return "NNE", nil
	}
	return "N", nil
}
