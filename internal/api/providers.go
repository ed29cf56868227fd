package api

import (
	"fmt"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/jmoiron/sqlx"
	"github.com/kashguard/go-cosmos/internal/config"
	"github.com/kashguard/go-cosmos/internal/cosmos/account"
	"github.com/kashguard/go-cosmos/internal/cosmos/audit"
	"github.com/kashguard/go-cosmos/internal/cosmos/policy"
	"github.com/kashguard/go-cosmos/internal/cosmos/sign"
	"github.com/kashguard/go-cosmos/internal/cosmos/storage"
	"github.com/kashguard/go-cosmos/internal/metrics"
	"github.com/kashguard/go-cosmos/internal/persistence"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirements for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if useMock {
		clock = time2.NewMockClock(time.Now())
	} else {
		clock = time2.DefaultClock
	}

	return clock
}

func NewDB(cfg config.Server) (*sqlx.DB, error) {
	// 内存后端无需数据库连接
	if cfg.Cosmos.StorageBackend == config.StorageBackendMemory {
		return nil, nil
	}

	return persistence.NewDB(cfg.Database)
}

func NoTest() []*testing.T {
	return nil
}

// Cosmos Providers

// NewStore creates the account/audit store based on configuration
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewStore(cfg config.Server, db *sqlx.DB) (storage.Store, error) {
	switch cfg.Cosmos.StorageBackend {
	case config.StorageBackendPostgreSQL:
		return storage.NewPostgreSQLStore(db), nil
	case config.StorageBackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Cosmos.StorageBackend)
	}
}

// NewPolicyEngine creates policy engine
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewPolicyEngine() policy.Engine {
	return policy.NewEngine()
}

// NewAuditLogger creates audit logger
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewAuditLogger(store storage.Store) audit.Logger {
	return audit.NewLogger(store)
}

// NewAccountService creates account service
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewAccountService(store storage.Store, auditLogger audit.Logger) (account.Service, error) {
	return account.NewService(store, auditLogger)
}

// NewSignService creates sign service
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewSignService(
	accountService account.Service,
	policyEngine policy.Engine,
	auditLogger audit.Logger,
	metrics *metrics.Service,
	clock time2.Clock,
) (sign.Service, error) {
	return sign.NewService(accountService, policyEngine, auditLogger, metrics, clock)
}
