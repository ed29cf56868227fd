package common

import (
	"net/http"

	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/labstack/echo/v4"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler returns 200 as long as the process can serve requests.
// It deliberately checks nothing else, liveness must not flap with dependencies.
func getHealthyHandler(_ *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
}
