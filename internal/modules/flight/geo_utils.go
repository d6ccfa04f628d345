// README: Pure geographic helpers (haversine distance, coordinate range checks).
package flight

import "math"

const earthRadiusKm = 6371.0

// MaxDistanceKm is half the circumference of the model sphere.
const MaxDistanceKm = math.Pi * earthRadiusKm

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees. Inputs must already be validated.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	dLat := rLat2 - rLat1
	dLon := degreesToRadians(lon2) - degreesToRadians(lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(rLat1)*math.Cos(rLat2)*sinLon*sinLon
	// Rounding can push a just past 1 for antipodal points.
	if a > 1 {
		a = 1
	}
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func validatePoint(prefix string, p GeoPoint) error {
	if !finiteInRange(p.Lat, 90) {
		return &CoordinateError{Field: prefix + ".lat", Value: p.Lat}
	}
	if !finiteInRange(p.Lon, 180) {
		return &CoordinateError{Field: prefix + ".lon", Value: p.Lon}
	}
	return nil
}

// ValidatePoint reports whether p satisfies the GeoPoint invariant.
func ValidatePoint(p GeoPoint) error {
	return validatePoint("point", p)
}

func finiteInRange(v, limit float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= -limit && v <= limit
}
