// README: Estimate handlers (create estimate, list recent history).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ecofly/internal/http/middleware"
	"ecofly/internal/modules/airport"
	"ecofly/internal/modules/estimate"
)

// AirportResolver is satisfied by *airport.Service.
type AirportResolver interface {
	Resolve(ctx context.Context, iata string) (airport.Record, error)
}

type EstimateHandler struct {
	estimates *estimate.Service
	airports  AirportResolver
}

func NewEstimateHandler(estimates *estimate.Service, airports AirportResolver) *EstimateHandler {
	return &EstimateHandler{estimates: estimates, airports: airports}
}

// airportInput is either a full record or just an IATA code resolved from the catalog.
type airportInput struct {
	IATA    string   `json:"iata"`
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

type createEstimateReq struct {
	From      *airportInput `json:"from"`
	To        *airportInput `json:"to"`
	AirlineID string        `json:"airline_id"`
}

// Create handles POST /api/estimates.
func (h *EstimateHandler) Create(c *gin.Context) {
	var req createEstimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.From == nil || req.To == nil || strings.TrimSpace(req.AirlineID) == "" {
		writeError(c, http.StatusBadRequest, "missing from, to or airline_id")
		return
	}

	for _, field := range []string{missingCoordinate("from", req.From), missingCoordinate("to", req.To)} {
		if field != "" {
			writeJSON(c, http.StatusBadRequest, errorResponse{Error: "lat and lon must be sent together", Field: field})
			return
		}
	}

	ctx := c.Request.Context()
	from, err := h.toRecord(ctx, req.From)
	if err != nil {
		writeAirportInputError(c, "from", err)
		return
	}
	to, err := h.toRecord(ctx, req.To)
	if err != nil {
		writeAirportInputError(c, "to", err)
		return
	}

	res, err := h.estimates.Estimate(ctx, middleware.CallerUID(c), estimate.Request{
		From:      from,
		To:        to,
		AirlineID: req.AirlineID,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// Recent handles GET /api/estimates/recent?limit=. Only the caller's own history is listed.
func (h *EstimateHandler) Recent(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.estimates.Recent(c.Request.Context(), middleware.CallerUID(c), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, entries)
}

// missingCoordinate names the absent half of a lat/lon pair, or returns "".
func missingCoordinate(side string, in *airportInput) string {
	switch {
	case in.Lat != nil && in.Lon == nil:
		return side + ".lon"
	case in.Lat == nil && in.Lon != nil:
		return side + ".lat"
	}
	return ""
}

func (h *EstimateHandler) toRecord(ctx context.Context, in *airportInput) (airport.Record, error) {
	if in.Lat == nil || in.Lon == nil {
		return h.airports.Resolve(ctx, in.IATA)
	}
	return airport.Record{
		IATA:    strings.ToUpper(strings.TrimSpace(in.IATA)),
		Name:    in.Name,
		City:    in.City,
		Country: in.Country,
		Lat:     *in.Lat,
		Lon:     *in.Lon,
	}, nil
}

func writeAirportInputError(c *gin.Context, field string, err error) {
	if errors.Is(err, airport.ErrNotFound) {
		writeJSON(c, http.StatusBadRequest, errorResponse{Error: "unknown airport", Field: field})
		return
	}
	writeServiceError(c, err)
}
