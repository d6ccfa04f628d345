package airport

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed airports.json
var catalogJSON []byte

// Catalog is a static in-memory airport dataset. It serves as the offline
// Lookup and as the fallback when the model is unavailable.
type Catalog struct {
	records []Record
	byIATA  map[string]Record
}

// NewCatalog loads the embedded dataset.
func NewCatalog() (*Catalog, error) {
	var records []Record
	if err := json.Unmarshal(catalogJSON, &records); err != nil {
		return nil, fmt.Errorf("parsing airport catalog: %w", err)
	}
	return NewCatalogFromRecords(records)
}

// NewCatalogFromRecords builds a catalog from caller-supplied records; every
// record must pass Validate.
func NewCatalogFromRecords(records []Record) (*Catalog, error) {
	c := &Catalog{
		records: make([]Record, 0, len(records)),
		byIATA:  make(map[string]Record, len(records)),
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("catalog record %q: %w", r.IATA, err)
		}
		if _, dup := c.byIATA[r.IATA]; dup {
			return nil, fmt.Errorf("catalog record %q: duplicate iata", r.IATA)
		}
		c.records = append(c.records, r)
		c.byIATA[r.IATA] = r
	}
	return c, nil
}

// Get returns the airport with the given IATA code.
func (c *Catalog) Get(iata string) (Record, error) {
	r, ok := c.byIATA[normalizeIATA(iata)]
	if !ok {
		return Record{}, ErrNotFound
	}
	return r, nil
}

// Search ranks an exact IATA match first, then prefix matches on city, name
// or country, then substring matches. Dataset order breaks ties.
func (c *Catalog) Search(query string, limit int) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var exact, prefix, contains []Record
	for _, r := range c.records {
		switch {
		case strings.ToLower(r.IATA) == q:
			exact = append(exact, r)
		case hasPrefixAny(q, r.City, r.Name, r.Country):
			prefix = append(prefix, r)
		case containsAny(q, r.City, r.Name, r.Country):
			contains = append(contains, r)
		}
	}

	out := make([]Record, 0, limit)
	for _, group := range [][]Record{exact, prefix, contains} {
		for _, r := range group {
			if len(out) == limit {
				return out
			}
			out = append(out, r)
		}
	}
	return out
}

// LookupAirports implements Lookup over the static dataset.
func (c *Catalog) LookupAirports(_ context.Context, query string) ([]Record, error) {
	return c.Search(query, DefaultMaxResults), nil
}

func hasPrefixAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.HasPrefix(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func containsAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
