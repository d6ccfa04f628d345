// README: Command-line estimate for one flight, by IATA code or raw coordinates.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ecofly/internal/ai"
	"ecofly/internal/config"
	"ecofly/internal/modules/airport"
	"ecofly/internal/modules/estimate"
)

func main() {
	var (
		from      = flag.String("from", "", "departure IATA code or free-text query")
		to        = flag.String("to", "", "arrival IATA code or free-text query")
		airlineID = flag.String("airline", "QR", "airline IATA designator")
		fromLat   = flag.Float64("from-lat", 0, "departure latitude (with -from-lon, skips lookup)")
		fromLon   = flag.Float64("from-lon", 0, "departure longitude")
		toLat     = flag.Float64("to-lat", 0, "arrival latitude (with -to-lon, skips lookup)")
		toLon     = flag.Float64("to-lon", 0, "arrival longitude")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catalog, err := airport.NewCatalog()
	if err != nil {
		log.Fatalf("airport catalog: %v", err)
	}
	deps := airport.ServiceDeps{Catalog: catalog}
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to initialize AI provider: %v", err)
		}
		defer provider.Close()
		deps.Provider = provider
	}
	airports := airport.NewService(deps, cfg.Lookup)

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	origin, err := endpoint(ctx, airports, "from", *from, *fromLat, *fromLon, set["from-lat"] && set["from-lon"])
	if err != nil {
		log.Fatal(err)
	}
	destination, err := endpoint(ctx, airports, "to", *to, *toLat, *toLon, set["to-lat"] && set["to-lon"])
	if err != nil {
		log.Fatal(err)
	}

	res, err := estimate.NewService(cfg.Calculation, nil).Estimate(ctx, "cli", estimate.Request{
		From:      origin,
		To:        destination,
		AirlineID: *airlineID,
	})
	if err != nil {
		log.Fatalf("estimate: %v", err)
	}

	fmt.Printf("%s -> %s with %s\n", res.From.Label(), res.To.Label(), res.Airline.Name)
	fmt.Printf("CO2: %s\n", res.Display.CO2)
	fmt.Printf("Distance: %s | Duration: %s\n", res.Display.Distance, res.Display.Duration)
	for _, m := range res.Comparison {
		fmt.Printf("  by %-5s %.1f kg\n", m.Mode, m.CO2EmissionsKg)
	}
	for _, tip := range res.Tips {
		fmt.Printf("- %s\n", tip)
	}
}

// endpoint resolves one side of the flight: raw coordinates, an exact catalog code, or the
// first suggestion for a free-text query.
func endpoint(ctx context.Context, airports *airport.Service, name, query string, lat, lon float64, useCoords bool) (airport.Record, error) {
	if useCoords {
		label := query
		if label == "" {
			label = name
		}
		return airport.Record{IATA: label, Name: label, City: label, Lat: lat, Lon: lon}, nil
	}
	if query == "" {
		return airport.Record{}, fmt.Errorf("-%s is required", name)
	}
	if rec, err := airports.Resolve(ctx, query); err == nil {
		return rec, nil
	}
	suggestions := airports.Suggest(ctx, query)
	if len(suggestions) == 0 {
		return airport.Record{}, fmt.Errorf("no airport found for -%s %q", name, query)
	}
	return suggestions[0], nil
}
