package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecofly/internal/modules/ecotips"
)

type ecoTipsResp struct {
	Tips       []string               `json:"tips"`
	Comparison []ecotips.ModeEmission `json:"comparison,omitempty"`
}

type EcoTipsHandler struct{}

func NewEcoTipsHandler() *EcoTipsHandler {
	return &EcoTipsHandler{}
}

// Get handles GET /api/eco-tips?distance_km=. The comparison is included only with a distance.
func (h *EcoTipsHandler) Get(c *gin.Context) {
	resp := ecoTipsResp{Tips: ecotips.Tips()}
	if v := c.Query("distance_km"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			writeError(c, http.StatusBadRequest, "invalid distance_km")
			return
		}
		resp.Comparison = ecotips.CompareModes(d)
	}
	writeJSON(c, http.StatusOK, resp)
}
