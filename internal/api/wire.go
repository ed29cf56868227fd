//go:build wireinject

package api

import (
	"testing"

	"github.com/google/wire"
	"github.com/jmoiron/sqlx"
	"github.com/kashguard/go-cosmos/internal/config"
	"github.com/kashguard/go-cosmos/internal/metrics"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	metrics.New,
	NewClock,
	cosmosServiceSet,
)

var cosmosServiceSet = wire.NewSet(
	NewStore,
	NewPolicyEngine,
	NewAuditLogger,
	NewAccountService,
	NewSignService,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewDB, NoTest)
	return new(Server), nil
}

// InitNewServerWithDB returns a new Server instance with the given DB instance.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithDB(
	_ config.Server,
	_ *sqlx.DB,
	t ...*testing.T,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
