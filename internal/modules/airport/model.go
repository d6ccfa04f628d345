// README: Airport records, lookup contracts and record validation.
package airport

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ecofly/internal/modules/flight"
)

var (
	ErrNotFound    = errors.New("airport not found")
	ErrInvalidIATA = errors.New("invalid iata code")
	ErrIncomplete  = errors.New("incomplete airport record")
	ErrNullIsland  = errors.New("coordinates at (0,0)")
)

// Record is one airport as returned by any lookup backend.
type Record struct {
	IATA    string  `json:"iata"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Point returns the airport position for the flight calculator.
func (r Record) Point() flight.GeoPoint {
	return flight.GeoPoint{Lat: r.Lat, Lon: r.Lon}
}

// Label is the display form used once a suggestion is selected, e.g. "Kathmandu (KTM)".
func (r Record) Label() string {
	return fmt.Sprintf("%s (%s)", r.City, r.IATA)
}

// Validate checks the record carries everything the calculator needs.
// Exactly (0,0) is rejected as a bad-geocoding sentinel.
func (r Record) Validate() error {
	if !isIATA(r.IATA) {
		return fmt.Errorf("%w: %q", ErrInvalidIATA, r.IATA)
	}
	if r.Name == "" || r.City == "" || r.Country == "" {
		return fmt.Errorf("%w: %s", ErrIncomplete, r.IATA)
	}
	if err := flight.ValidatePoint(r.Point()); err != nil {
		return err
	}
	if r.Lat == 0 && r.Lon == 0 {
		return fmt.Errorf("%w: %s", ErrNullIsland, r.IATA)
	}
	return nil
}

// Lookup is the pluggable airport search capability. Implementations may be
// backed by a model, a static dataset or a geocoding provider.
type Lookup interface {
	LookupAirports(ctx context.Context, query string) ([]Record, error)
}

// CoordinateResolver back-fills coordinates for records that arrived without them.
type CoordinateResolver interface {
	ResolveCoordinates(ctx context.Context, name, city, country string) (lat, lon float64, err error)
}

func isIATA(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// normalizeIATA upper-cases and trims a user or model supplied code.
func normalizeIATA(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
