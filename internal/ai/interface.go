package ai

import (
	"context"
)

// AirportProvider defines the contract for generative airport suggestion backends.
// This interface allows swapping Gemini for another model provider.
type AirportProvider interface {
	// SuggestAirports returns at most limit airports matching a free-text query
	// such as a city name or an IATA code.
	SuggestAirports(ctx context.Context, query string, limit int) ([]AirportSuggestion, error)
}
