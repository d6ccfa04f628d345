// README: API gateway; holds service dependencies and builds the HTTP server.
package http

import (
	"net/http"
	"time"

	"ecofly/internal/infra"
	"ecofly/internal/modules/airport"
	"ecofly/internal/modules/estimate"
	"ecofly/internal/modules/quota"
)

type ServerDeps struct {
	Airports  *airport.Service
	Estimates *estimate.Service
	Quota     *quota.Service      // nil: no lookup allowance
	Verifier  infra.TokenVerifier // nil: every caller is anonymous
}

// NewServer returns an http.Server for addr serving NewRouter(deps).
func NewServer(addr string, deps ServerDeps) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
