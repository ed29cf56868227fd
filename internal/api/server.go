package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/jmoiron/sqlx"
	"github.com/kashguard/go-cosmos/internal/config"
	"github.com/kashguard/go-cosmos/internal/cosmos/account"
	"github.com/kashguard/go-cosmos/internal/cosmos/audit"
	"github.com/kashguard/go-cosmos/internal/cosmos/policy"
	"github.com/kashguard/go-cosmos/internal/cosmos/sign"
	"github.com/kashguard/go-cosmos/internal/cosmos/storage"
	"github.com/kashguard/go-cosmos/internal/metrics"
	"github.com/kashguard/go-cosmos/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

type Router struct {
	Routes      []*echo.Route
	Root        *echo.Group
	Management  *echo.Group
	APIV1Cosmos *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config  config.Server
	DB      *sqlx.DB
	Clock   time2.Clock
	Metrics *metrics.Service

	// Cosmos services
	Store          storage.Store
	PolicyEngine   policy.Engine
	AuditLogger    audit.Logger
	AccountService account.Service
	SignService    sign.Service
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	db *sqlx.DB,
	clock time2.Clock,
	metrics *metrics.Service,
	store storage.Store,
	policyEngine policy.Engine,
	auditLogger audit.Logger,
	accountService account.Service,
	signService sign.Service,
) *Server {
	return &Server{
		Config:         cfg,
		DB:             db,
		Clock:          clock,
		Metrics:        metrics,
		Store:          store,
		PolicyEngine:   policyEngine,
		AuditLogger:    auditLogger,
		AccountService: accountService,
		SignService:    signService,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	// 内存后端不使用数据库连接，初始化检查时用占位连接通过 nil 校验
	checkServer := *s
	if s.Config.Cosmos.StorageBackend == config.StorageBackendMemory && s.DB == nil {
		checkServer.DB = &sqlx.DB{}
	}

	if err := util.IsStructInitialized(&checkServer); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.DB != nil {
		log.Debug().Msg("Closing database connection")

		if err := s.DB.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			log.Error().Err(err).Msg("Failed to close database connection")
			errs = append(errs, err)
		}
	}

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	return errs
}
