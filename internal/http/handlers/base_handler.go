// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecofly/internal/modules/airline"
	"ecofly/internal/modules/airport"
	"ecofly/internal/modules/estimate"
	"ecofly/internal/modules/flight"
	"ecofly/internal/modules/quota"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps module sentinel errors to HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	var coordErr *flight.CoordinateError
	switch {
	case errors.As(err, &coordErr):
		writeJSON(c, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: coordErr.Field})
	case errors.Is(err, flight.ErrInvalidCoordinate), errors.Is(err, airline.ErrNotFound):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, airport.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, quota.ErrQuotaExceeded):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, estimate.ErrHistoryDisabled):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
