package router

import (
	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/api/handlers/common"
	"github.com/kashguard/go-cosmos/internal/api/handlers/cosmos/accounts"
	"github.com/kashguard/go-cosmos/internal/api/handlers/cosmos/audit"
	"github.com/kashguard/go-cosmos/internal/api/handlers/cosmos/sign"
	"github.com/kashguard/go-cosmos/internal/api/middleware"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true

	s.Echo.HTTPErrorHandler = HTTPErrorHandlerWithConfig(HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.Recover())
	}

	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(echoMiddleware.CORS())
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.Logger())
	}

	s.Router = &api.Router{
		Routes: nil, // will be populated by attachAllRoutes

		Root:        s.Echo.Group(""),
		Management:  s.Echo.Group("/-"),
		APIV1Cosmos: s.Echo.Group("/api/v1/cosmos"),
	}

	attachAllRoutes(s)
}

func attachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		common.GetMetricsRoute(s),

		sign.PostSignRoute(s),

		accounts.PostCreateAccountRoute(s),
		accounts.GetListAccountsRoute(s),
		accounts.GetAccountRoute(s),
		accounts.PutUpdateAccountRoute(s),
		accounts.DeleteAccountRoute(s),

		audit.GetAuditLogsRoute(s),
	}
}
