package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// GeocodeService resolves airport names to coordinates through the Google Maps Geocoding API.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API Key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// ResolveCoordinates geocodes "<name>, <city>, <country>" and returns the first match.
func (s *GeocodeService) ResolveCoordinates(ctx context.Context, name, city, country string) (float64, float64, error) {
	address := geocodeAddress(name, city, country)
	if address == "" {
		return 0, 0, fmt.Errorf("empty geocode address")
	}

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return 0, 0, fmt.Errorf("maps api error: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocode result for %q", address)
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

func geocodeAddress(name, city, country string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{name, city, country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
