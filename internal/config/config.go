// README: Config loader with env defaults for HTTP, storage, AI lookup and calculation settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"ecofly/internal/modules/flight"
)

type LookupConfig struct {
	MinQueryLen int
	MaxResults  int
	Timeout     time.Duration
	CacheTTL    time.Duration
	RatePerSec  float64
	Burst       int
	DailyQuota  int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Firebase struct {
		ProjectID       string
		CredentialsFile string
	}
	AI struct {
		GeminiKey   string
		GeminiModel string
	}
	Maps struct {
		APIKey string
	}
	Lookup      LookupConfig
	Calculation flight.CalculationConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ECOFLY_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("ECOFLY_DB_DSN")
	cfg.Redis.Addr = os.Getenv("ECOFLY_REDIS_ADDR")
	cfg.Firebase.ProjectID = os.Getenv("ECOFLY_FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("ECOFLY_FIREBASE_CREDENTIALS")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.GeminiModel = os.Getenv("ECOFLY_GEMINI_MODEL")
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")

	cfg.Lookup = LookupConfig{
		MinQueryLen: envOrDefaultInt("ECOFLY_LOOKUP_MIN_QUERY", 2),
		MaxResults:  envOrDefaultInt("ECOFLY_LOOKUP_MAX_RESULTS", 5),
		Timeout:     envOrDefaultDuration("ECOFLY_LOOKUP_TIMEOUT", 10*time.Second),
		CacheTTL:    envOrDefaultDuration("ECOFLY_LOOKUP_CACHE_TTL", 24*time.Hour),
		RatePerSec:  envOrDefaultFloat("ECOFLY_LOOKUP_RATE", 5),
		Burst:       envOrDefaultInt("ECOFLY_LOOKUP_BURST", 10),
		DailyQuota:  envOrDefaultInt("ECOFLY_LOOKUP_DAILY_QUOTA", 200),
	}
	if cfg.Lookup.MaxResults < 1 {
		return cfg, fmt.Errorf("ECOFLY_LOOKUP_MAX_RESULTS must be positive, got %d", cfg.Lookup.MaxResults)
	}

	cfg.Calculation = flight.CalculationConfig{
		CO2FactorPerKm:  envOrDefaultFloat("ECOFLY_CO2_FACTOR_PER_KM", flight.DefaultCO2FactorPerKm),
		AverageSpeedKmh: envOrDefaultFloat("ECOFLY_AVG_SPEED_KMH", flight.DefaultAverageSpeedKmh),
	}
	if err := cfg.Calculation.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
