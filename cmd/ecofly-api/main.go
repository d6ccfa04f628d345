// README: Entry point; loads config, wires optional backends and serves the HTTP API until signalled.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ecofly/internal/ai"
	"ecofly/internal/config"
	httptransport "ecofly/internal/http"
	"ecofly/internal/infra"
	"ecofly/internal/maps"
	"ecofly/internal/modules/airport"
	"ecofly/internal/modules/estimate"
	"ecofly/internal/modules/quota"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}
	if verifier == nil {
		log.Printf("ECOFLY_FIREBASE_PROJECT_ID not set; all callers are anonymous")
	}

	catalog, err := airport.NewCatalog()
	if err != nil {
		log.Fatalf("airport catalog: %v", err)
	}
	deps := airport.ServiceDeps{Catalog: catalog}

	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		deps.Provider = provider
	} else {
		log.Printf("GEMINI_API_KEY not set; airport search uses the static catalog")
	}

	if cfg.Maps.APIKey != "" {
		geocoder, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		deps.Resolver = geocoder
	}

	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal(err)
		}
		defer redisClient.Close()
		deps.Cache = airport.NewCache(redisClient, cfg.Lookup.CacheTTL)
	}

	var (
		history  estimate.History
		quotaSvc *quota.Service
	)
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		history = estimate.NewStore(dbPool)
		quotaSvc = quota.NewService(quota.NewStore(dbPool, cfg.Lookup.DailyQuota))
	} else {
		log.Printf("ECOFLY_DB_DSN not set; estimate history and lookup quota disabled")
	}

	server := httptransport.NewServer(cfg.HTTP.Addr, httptransport.ServerDeps{
		Airports:  airport.NewService(deps, cfg.Lookup),
		Estimates: estimate.NewService(cfg.Calculation, history),
		Quota:     quotaSvc,
		Verifier:  verifier,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("ecofly api listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
