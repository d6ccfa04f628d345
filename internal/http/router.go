// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecofly/internal/http/handlers"
	"ecofly/internal/http/middleware"
)

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	// Anonymous quota keys use the socket address, never X-Forwarded-For.
	_ = r.SetTrustedProxies(nil)
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))

	// A nil *quota.Service must not become a non-nil interface.
	var q handlers.Quota
	if deps.Quota != nil {
		q = deps.Quota
	}
	airportHandler := handlers.NewAirportHandler(deps.Airports, q)
	api.GET("/airports", airportHandler.Suggest)
	api.GET("/airports/:iata", airportHandler.Get)

	airlineHandler := handlers.NewAirlineHandler()
	api.GET("/airlines", airlineHandler.List)

	estimateHandler := handlers.NewEstimateHandler(deps.Estimates, deps.Airports)
	api.POST("/estimates", estimateHandler.Create)
	api.GET("/estimates/recent", estimateHandler.Recent)

	ecoTipsHandler := handlers.NewEcoTipsHandler()
	api.GET("/eco-tips", ecoTipsHandler.Get)

	return r
}
