package estimate

import (
	"time"

	"ecofly/internal/modules/airline"
	"ecofly/internal/modules/airport"
	"ecofly/internal/modules/ecotips"
	"ecofly/internal/modules/flight"
)

// Request names both endpoints and the operating airline.
type Request struct {
	From      airport.Record
	To        airport.Record
	AirlineID string
}

// Display holds the human-readable forms of the metrics.
type Display struct {
	CO2      string `json:"co2"`
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}

type AirlineView struct {
	airline.Airline
	LogoURL string `json:"logo_url"`
}

type Result struct {
	From       airport.Record         `json:"from"`
	To         airport.Record         `json:"to"`
	Airline    AirlineView            `json:"airline"`
	Metrics    flight.FlightMetrics   `json:"metrics"`
	Display    Display                `json:"display"`
	Tips       []string               `json:"tips"`
	Comparison []ecotips.ModeEmission `json:"comparison"`
}

// Entry is one persisted estimate. CallerID is never serialised.
type Entry struct {
	ID              int64     `json:"id"`
	CallerID        string    `json:"-"`
	FromIATA        string    `json:"from_iata"`
	ToIATA          string    `json:"to_iata"`
	AirlineID       string    `json:"airline_id"`
	DistanceKm      float64   `json:"distance_km"`
	CO2EmissionsKg  float64   `json:"co2_emissions_kg"`
	DurationMinutes float64   `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}
