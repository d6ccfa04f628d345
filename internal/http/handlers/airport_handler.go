// README: Airport suggestion and lookup handlers (quota-guarded AI search).
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecofly/internal/http/middleware"
	"ecofly/internal/modules/airport"
	"ecofly/internal/modules/quota"
)

// Quota is satisfied by *quota.Service.
type Quota interface {
	Use(ctx context.Context, uid string) error
}

type AirportHandler struct {
	airports *airport.Service
	quota    Quota
}

// NewAirportHandler accepts a nil quota to disable the daily allowance.
func NewAirportHandler(airports *airport.Service, q Quota) *AirportHandler {
	return &AirportHandler{airports: airports, quota: q}
}

// Suggest handles GET /api/airports?q=.
func (h *AirportHandler) Suggest(c *gin.Context) {
	query := c.Query("q")
	if !h.airports.Accepts(query) {
		writeJSON(c, http.StatusOK, []airport.Record{})
		return
	}

	if h.quota != nil {
		uid := middleware.CallerUID(c)
		if err := h.quota.Use(c.Request.Context(), uid); err != nil {
			if errors.Is(err, quota.ErrQuotaExceeded) {
				writeServiceError(c, err)
				return
			}
			log.Printf("airport handler: quota check uid=%s err=%v", uid, err)
		}
	}

	writeJSON(c, http.StatusOK, h.airports.Suggest(c.Request.Context(), query))
}

// Get handles GET /api/airports/:iata.
func (h *AirportHandler) Get(c *gin.Context) {
	rec, err := h.airports.Resolve(c.Request.Context(), c.Param("iata"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rec)
}
