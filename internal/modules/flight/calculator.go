// README: Flight metrics calculator (distance, CO2, duration). Pure and safe for concurrent use.
package flight

// ComputeDistance returns the haversine great-circle distance in kilometres.
// Out-of-range or non-finite coordinates fail with a *CoordinateError.
func ComputeDistance(origin, destination GeoPoint) (float64, error) {
	if err := validatePoint("origin", origin); err != nil {
		return 0, err
	}
	if err := validatePoint("destination", destination); err != nil {
		return 0, err
	}
	return haversineKm(origin.Lat, origin.Lon, destination.Lat, destination.Lon), nil
}

// ComputeMetrics derives distance, emissions and duration for one flight.
// cfg is expected to have passed Validate.
func ComputeMetrics(origin, destination GeoPoint, cfg CalculationConfig) (FlightMetrics, error) {
	distanceKm, err := ComputeDistance(origin, destination)
	if err != nil {
		return FlightMetrics{}, err
	}

	return FlightMetrics{
		DistanceKm:      distanceKm,
		CO2EmissionsKg:  distanceKm * cfg.CO2FactorPerKm,
		DurationMinutes: (distanceKm / cfg.AverageSpeedKmh) * 60,
	}, nil
}
