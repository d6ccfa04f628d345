package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ecofly/internal/config"
	"ecofly/internal/modules/airport"
	"ecofly/internal/modules/estimate"
	"ecofly/internal/modules/flight"
)

func TestRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog, err := airport.NewCatalog()
	if err != nil {
		t.Fatal(err)
	}
	srv := NewServer(":0", ServerDeps{
		Airports:  airport.NewService(airport.ServiceDeps{Catalog: catalog}, config.LookupConfig{}),
		Estimates: estimate.NewService(flight.DefaultConfig(), nil),
	})

	for path, want := range map[string]int{
		"/health":               http.StatusOK,
		"/api/airlines":         http.StatusOK,
		"/api/airports/KTM":     http.StatusOK,
		"/api/airports?q=nepal": http.StatusOK,
		"/api/nope":             http.StatusNotFound,
	} {
		w := httptest.NewRecorder()
		srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != want {
			t.Errorf("GET %s = %d, want %d", path, w.Code, want)
		}
	}
}
