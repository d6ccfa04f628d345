// README: Educational content shown next to an estimate (tips and per-mode comparison).
package ecotips

// Per passenger-km emission factors for surface alternatives, kg CO2.
const (
	trainKgPerKm = 0.035
	busKgPerKm   = 0.03
	carKgPerKm   = 0.2
)

var tips = []string{
	"Avoid unnecessary flights; choose lower-emission alternatives like trains where possible.",
	"Book nonstop flights on fuel-efficient carriers and choose to fly in economy class.",
	"Pack light to reduce the aircraft's weight and bring reusable items to minimize waste.",
}

// ModeEmission is the CO2 the same distance would cost on another mode of transport.
type ModeEmission struct {
	Mode           string  `json:"mode"`
	CO2EmissionsKg float64 `json:"co2_emissions_kg"`
}

func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

// CompareModes returns train, bus and car emissions for distanceKm, lowest first.
// Negative distances are treated as zero.
func CompareModes(distanceKm float64) []ModeEmission {
	if distanceKm < 0 {
		distanceKm = 0
	}
	return []ModeEmission{
		{Mode: "bus", CO2EmissionsKg: busKgPerKm * distanceKm},
		{Mode: "train", CO2EmissionsKg: trainKgPerKm * distanceKm},
		{Mode: "car", CO2EmissionsKg: carKgPerKm * distanceKm},
	}
}
