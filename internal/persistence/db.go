package persistence

import (
	"github.com/jmoiron/sqlx"
	"github.com/kashguard/go-cosmos/internal/config"
	"github.com/pkg/errors"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

// NewDB opens a pooled connection to PostgreSQL and verifies it with a ping.
func NewDB(cfg config.Database) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}
