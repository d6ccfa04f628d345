package estimate

import (
	"fmt"
	"math"

	"ecofly/internal/modules/flight"
)

// maxDurationMinutes bounds the hour count so the integer conversion stays defined.
const maxDurationMinutes = 60e9

// FormatDuration renders minutes as "Xh Ym". Minutes are rounded; a rounded 60 carries into the hour.
func FormatDuration(minutes float64) string {
	if minutes < 0 || math.IsNaN(minutes) {
		minutes = 0
	}
	if minutes > maxDurationMinutes {
		minutes = maxDurationMinutes
	}
	h := math.Floor(minutes / 60)
	m := math.Round(minutes - h*60)
	if m >= 60 {
		h++
		m -= 60
	}
	return fmt.Sprintf("%dh %dm", int64(h), int64(m))
}

func formatCO2(kg float64) string {
	return fmt.Sprintf("%.1f kg CO₂", kg)
}

func formatDistance(km float64) string {
	return fmt.Sprintf("%.0f km", km)
}

func display(m flight.FlightMetrics) Display {
	return Display{
		CO2:      formatCO2(m.CO2EmissionsKg),
		Distance: formatDistance(m.DistanceKm),
		Duration: FormatDuration(m.DurationMinutes),
	}
}
