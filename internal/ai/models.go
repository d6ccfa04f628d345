package ai

// AirportSuggestion captures one structured airport record from the AI model.
// Coordinates are pointers so that records missing them can be told apart
// from airports that really sit on the equator or prime meridian.
type AirportSuggestion struct {
	// IATA is the 3-letter airport code, e.g. "KTM".
	IATA string `json:"iata"`

	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`

	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// HasCoordinates reports whether both lat and lon were present in the response.
func (s AirportSuggestion) HasCoordinates() bool {
	return s.Lat != nil && s.Lon != nil
}
