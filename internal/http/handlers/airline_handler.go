package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecofly/internal/modules/airline"
)

type airlineResp struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

type AirlineHandler struct{}

func NewAirlineHandler() *AirlineHandler {
	return &AirlineHandler{}
}

// List handles GET /api/airlines.
func (h *AirlineHandler) List(c *gin.Context) {
	all := airline.List()
	out := make([]airlineResp, 0, len(all))
	for _, a := range all {
		out = append(out, airlineResp{ID: a.ID, Name: a.Name, LogoURL: airline.LogoURL(a.ID, 0)})
	}
	writeJSON(c, http.StatusOK, out)
}
