package test

import (
	"context"
	"testing"

	"github.com/kashguard/go-cosmos/internal/api"
	"github.com/kashguard/go-cosmos/internal/api/router"
	"github.com/kashguard/go-cosmos/internal/config"
)

// WithTestServer returns a fully configured server against the in-memory
// storage backend (method under test).
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	defaultConfig := DefaultTestServerConfig()
	WithTestServerConfigurable(t, defaultConfig, closure)
}

// WithTestServerConfigurable returns a fully configured server, allowing for
// configuration using the provided server config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	s, err := api.InitNewServerWithDB(config, nil, t)
	if err != nil {
		t.Fatalf("failed to init server: %v", err)
	}

	router.Init(s)

	closure(s)

	if errs := s.Shutdown(context.Background()); len(errs) > 0 {
		t.Fatalf("failed to shutdown server: %v", errs)
	}
}

// DefaultTestServerConfig returns the default config for test servers,
// forcing the in-memory storage backend.
func DefaultTestServerConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Cosmos.StorageBackend = config.StorageBackendMemory
	cfg.Echo.EnableLoggerMiddleware = false

	return cfg
}
