// README: Airport service turns free-text queries into validated airport records.
// Provider failures degrade to the static catalog and finally to an empty list.
package airport

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"ecofly/internal/ai"
	"ecofly/internal/config"
)

// DefaultMaxResults matches the number of suggestions the model is asked for.
const DefaultMaxResults = 5

// SuggestionCache is satisfied by *Cache; tests substitute their own.
type SuggestionCache interface {
	Get(ctx context.Context, key string) ([]Record, bool, error)
	Put(ctx context.Context, key string, records []Record) error
}

type ServiceDeps struct {
	Provider ai.AirportProvider // nil: catalog only
	Catalog  *Catalog
	Cache    SuggestionCache    // nil: no caching
	Resolver CoordinateResolver // nil: records without coordinates are dropped
}

type Service struct {
	provider ai.AirportProvider
	catalog  *Catalog
	cache    SuggestionCache
	resolver CoordinateResolver
	limiter  *rate.Limiter
	group    singleflight.Group
	cfg      config.LookupConfig
}

func NewService(deps ServiceDeps, cfg config.LookupConfig) *Service {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.MinQueryLen <= 0 {
		cfg.MinQueryLen = 2
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Service{
		provider: deps.Provider,
		catalog:  deps.Catalog,
		cache:    deps.Cache,
		resolver: deps.Resolver,
		limiter:  rate.NewLimiter(limit, burst),
		cfg:      cfg,
	}
}

// Suggest never fails: on any error it logs and returns an empty list, so
// callers never hand partial data to the calculator.
func (s *Service) Suggest(ctx context.Context, query string) []Record {
	key, ok := s.normalize(query)
	if !ok {
		return []Record{}
	}

	if s.cache != nil {
		records, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Printf("airport suggest: cache get query=%q err=%v", key, err)
		} else if hit {
			return records
		}
	}

	// Concurrent identical queries share one upstream call.
	v, _, _ := s.group.Do(key, func() (any, error) {
		return s.lookup(ctx, key), nil
	})
	records := v.([]Record)

	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// Accepts reports whether query is long enough to reach the provider.
func (s *Service) Accepts(query string) bool {
	_, ok := s.normalize(query)
	return ok
}

// LookupAirports adapts Suggest to the Lookup interface.
func (s *Service) LookupAirports(ctx context.Context, query string) ([]Record, error) {
	return s.Suggest(ctx, query), nil
}

// Resolve returns a catalog airport by IATA code.
func (s *Service) Resolve(_ context.Context, iata string) (Record, error) {
	if s.catalog == nil {
		return Record{}, ErrNotFound
	}
	return s.catalog.Get(iata)
}

func (s *Service) lookup(ctx context.Context, key string) []Record {
	// The shared call must outlive the first caller's cancellation.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Timeout)
	defer cancel()

	var records []Record
	if s.provider != nil {
		suggestions, err := s.fetch(ctx, key)
		if err != nil {
			log.Printf("airport suggest: provider query=%q err=%v", key, err)
		} else {
			records = s.sanitize(ctx, suggestions)
		}
	}

	if len(records) > 0 {
		if s.cache != nil {
			if err := s.cache.Put(ctx, key, records); err != nil {
				log.Printf("airport suggest: cache put query=%q err=%v", key, err)
			}
		}
		return records
	}

	if s.catalog != nil {
		records = s.catalog.Search(key, s.cfg.MaxResults)
	}
	if records == nil {
		records = []Record{}
	}
	return records
}

func (s *Service) fetch(ctx context.Context, query string) ([]ai.AirportSuggestion, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.provider.SuggestAirports(ctx, query, s.cfg.MaxResults)
}

// sanitize drops unusable records, removes duplicate codes and truncates to MaxResults.
func (s *Service) sanitize(ctx context.Context, suggestions []ai.AirportSuggestion) []Record {
	out := make([]Record, 0, len(suggestions))
	seen := make(map[string]struct{}, len(suggestions))
	for _, sug := range suggestions {
		rec, ok := s.toRecord(ctx, sug)
		if !ok {
			continue
		}
		if _, dup := seen[rec.IATA]; dup {
			continue
		}
		seen[rec.IATA] = struct{}{}
		out = append(out, rec)
		if len(out) == s.cfg.MaxResults {
			break
		}
	}
	return out
}

func (s *Service) toRecord(ctx context.Context, sug ai.AirportSuggestion) (Record, bool) {
	rec := Record{
		IATA:    normalizeIATA(sug.IATA),
		Name:    strings.TrimSpace(sug.Name),
		City:    strings.TrimSpace(sug.City),
		Country: strings.TrimSpace(sug.Country),
	}

	if sug.HasCoordinates() {
		rec.Lat, rec.Lon = *sug.Lat, *sug.Lon
	} else {
		if s.resolver == nil || rec.Name == "" {
			return Record{}, false
		}
		lat, lon, err := s.resolver.ResolveCoordinates(ctx, rec.Name, rec.City, rec.Country)
		if err != nil {
			log.Printf("airport suggest: resolve coordinates iata=%s err=%v", rec.IATA, err)
			return Record{}, false
		}
		rec.Lat, rec.Lon = lat, lon
	}

	if err := rec.Validate(); err != nil {
		log.Printf("airport suggest: dropping record err=%v", err)
		return Record{}, false
	}
	return rec, true
}

// normalize trims, collapses inner whitespace and lower-cases the query. It
// reports false when the query is shorter than MinQueryLen runes.
func (s *Service) normalize(query string) (string, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(query), " "))
	if utf8.RuneCountInString(key) < s.cfg.MinQueryLen {
		return "", false
	}
	return key, true
}
