package airline

import (
	"sort"
	"strings"
)

var airlines = []Airline{
	{ID: "RA", Name: "Nepal Airlines"},
	{ID: "QR", Name: "Qatar Airways"},
	{ID: "EK", Name: "Emirates"},
	{ID: "EY", Name: "Etihad Airways"},
	{ID: "BA", Name: "British Airways"},
	{ID: "VS", Name: "Virgin Atlantic"},
	{ID: "LH", Name: "Lufthansa"},
	{ID: "AF", Name: "Air France"},
	{ID: "KL", Name: "KLM Royal Dutch Airlines"},
	{ID: "TK", Name: "Turkish Airlines"},
	{ID: "FR", Name: "Ryanair"},
	{ID: "U2", Name: "easyJet"},
	{ID: "AI", Name: "Air India"},
	{ID: "6E", Name: "IndiGo"},
	{ID: "SQ", Name: "Singapore Airlines"},
	{ID: "CX", Name: "Cathay Pacific"},
	{ID: "BR", Name: "EVA Air"},
	{ID: "CI", Name: "China Airlines"},
	{ID: "NH", Name: "All Nippon Airways"},
	{ID: "JL", Name: "Japan Airlines"},
	{ID: "QF", Name: "Qantas"},
	{ID: "AA", Name: "American Airlines"},
	{ID: "DL", Name: "Delta Air Lines"},
	{ID: "UA", Name: "United Airlines"},
	{ID: "AC", Name: "Air Canada"},
}

var byID = func() map[string]Airline {
	m := make(map[string]Airline, len(airlines))
	for _, a := range airlines {
		m[a.ID] = a
	}
	return m
}()

// List returns every known airline sorted by display name. The slice is a copy.
func List() []Airline {
	out := make([]Airline, len(airlines))
	copy(out, airlines)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get looks an airline up by its IATA designator, case-insensitively.
func Get(id string) (Airline, error) {
	a, ok := byID[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return Airline{}, ErrNotFound
	}
	return a, nil
}
