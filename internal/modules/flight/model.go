// README: Flight metric value types, calculation settings and validation errors.
package flight

import (
	"errors"
	"fmt"
	"math"
)

// Defaults used when no override is configured.
const (
	DefaultCO2FactorPerKm  = 0.115 // kg CO2 per passenger-km
	DefaultAverageSpeedKmh = 800.0

	// MinAverageSpeedKmh keeps antipodal durations within a few million minutes.
	MinAverageSpeedKmh = 1.0
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidConfig     = errors.New("invalid calculation config")
)

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FlightMetrics is the derived result of a single calculation.
type FlightMetrics struct {
	DistanceKm      float64 `json:"distance_km"`
	CO2EmissionsKg  float64 `json:"co2_emissions_kg"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// CalculationConfig holds the two tunable constants of the estimate.
type CalculationConfig struct {
	CO2FactorPerKm  float64
	AverageSpeedKmh float64
}

func DefaultConfig() CalculationConfig {
	return CalculationConfig{
		CO2FactorPerKm:  DefaultCO2FactorPerKm,
		AverageSpeedKmh: DefaultAverageSpeedKmh,
	}
}

// Validate is meant to run once at startup; ComputeMetrics assumes a valid config.
func (c CalculationConfig) Validate() error {
	if math.IsNaN(c.CO2FactorPerKm) || math.IsInf(c.CO2FactorPerKm, 0) || c.CO2FactorPerKm <= 0 {
		return fmt.Errorf("%w: co2 factor %v", ErrInvalidConfig, c.CO2FactorPerKm)
	}
	if math.IsNaN(c.AverageSpeedKmh) || math.IsInf(c.AverageSpeedKmh, 0) || c.AverageSpeedKmh < MinAverageSpeedKmh {
		return fmt.Errorf("%w: average speed %v", ErrInvalidConfig, c.AverageSpeedKmh)
	}
	return nil
}

// CoordinateError names the offending field and value. It matches
// ErrInvalidCoordinate with errors.Is.
type CoordinateError struct {
	Field string
	Value float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s: %s=%v is out of range", ErrInvalidCoordinate, e.Field, e.Value)
}

func (e *CoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}
