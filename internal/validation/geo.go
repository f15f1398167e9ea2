package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"

	"github.com/jonathan/harvest-validator/internal/types"
)

// EarthMeanRadiusMeters is the mean Earth radius (IUGG) used for great-circle
// distances.
const EarthMeanRadiusMeters = 6371008.8

var errArity = errors.New("expected exactly two comma-separated coordinates")

// ParseLocation reads a "lat, lon" string or a two-element numeric array into
// a point. Coordinates are not range-checked here.
func ParseLocation(raw any) (s2.LatLng, error) {
	var lat, lon float64

	switch v := raw.(type) {
	case string:
		parts := strings.Split(v, ",")
		if len(parts) != 2 {
			return s2.LatLng{}, errArity
		}
		var err error
		if lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
			return s2.LatLng{}, fmt.Errorf("latitude: %w", err)
		}
		if lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
			return s2.LatLng{}, fmt.Errorf("longitude: %w", err)
		}
	case []any:
		if len(v) != 2 {
			return s2.LatLng{}, errArity
		}
		var ok bool
		if lat, ok = toFloat(v[0]); !ok {
			return s2.LatLng{}, fmt.Errorf("latitude is not a number: %v", v[0])
		}
		if lon, ok = toFloat(v[1]); !ok {
			return s2.LatLng{}, fmt.Errorf("longitude is not a number: %v", v[1])
		}
	default:
		return s2.LatLng{}, fmt.Errorf("unsupported location type %T", raw)
	}

	return s2.LatLngFromDegrees(lat, lon), nil
}

// DistanceMeters returns the haversine great-circle distance between a and b
// on a sphere of Earth's mean radius, truncated to whole meters.
func DistanceMeters(a, b s2.LatLng) int {
	return int(math.Floor(a.Distance(b).Radians() * EarthMeanRadiusMeters))
}

func recordLocation(m *types.Measurement, index int) (s2.LatLng, error) {
	raw, err := requireField(m, index, types.FieldLocation)
	if err != nil {
		return s2.LatLng{}, err
	}

	point, err := ParseLocation(raw)
	if err != nil {
		return s2.LatLng{}, &LocationFormatError{Index: index, Raw: raw, Cause: err}
	}

	lat, lon := point.Lat.Degrees(), point.Lng.Degrees()
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) || !point.IsValid() {
		return s2.LatLng{}, &DistanceError{
			Index:   index,
			Message: fmt.Sprintf("coordinates (%v, %v) out of range", lat, lon),
		}
	}
	return point, nil
}
