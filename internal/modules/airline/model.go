// README: Static airline reference data used for display only.
package airline

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("airline not found")

// Airline is identified by its 2-character IATA designator.
type Airline struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const logoBaseURL = "https://pics.avs.io"

// LogoURL returns a square logo for the airline; size is in pixels.
func LogoURL(id string, size int) string {
	if size <= 0 {
		size = 48
	}
	return fmt.Sprintf("%s/%d/%d/%s.png", logoBaseURL, size, size, id)
}
