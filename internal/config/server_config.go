package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kashguard/go-cosmos/internal/cosmos/auth"
	"github.com/kashguard/go-cosmos/internal/util"
	"github.com/rs/zerolog"
)

// EchoServer configures the HTTP layer.
type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableCORSMiddleware           bool
	EnableRecoverMiddleware        bool
	EnableLoggerMiddleware         bool
}

// Logger configures zerolog.
type Logger struct {
	Level              zerolog.Level
	PrettyPrintConsole bool
}

// Database configures the PostgreSQL connection.
type Database struct {
	Host             string
	Port             int
	Username         string
	Password         string
	Database         string
	AdditionalParams map[string]string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
}

// ConnectionString builds a keyword/value postgres connection string.
func (c Database) ConnectionString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "host=%s port=%d user=%s password=%s dbname=%s", c.Host, c.Port, c.Username, c.Password, c.Database)

	if len(c.AdditionalParams) > 0 {
		keys := make([]string, 0, len(c.AdditionalParams))
		for k := range c.AdditionalParams {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%s", k, c.AdditionalParams[k])
		}
	}

	return b.String()
}

// Supported storage backends.
const (
	StorageBackendPostgreSQL = "postgresql"
	StorageBackendMemory     = "memory"
)

// Cosmos configures the signing domain.
type Cosmos struct {
	// StorageBackend selects the account/audit store: "postgresql" or "memory"
	StorageBackend string
	// APIVersion is stamped as x-ms-version by the signing transport
	APIVersion string
	// DefaultAccount is used by sign requests that name no account (optional)
	DefaultAccount string
}

// Server is the full service configuration.
type Server struct {
	Database Database
	Echo     EchoServer
	Logger   Logger
	Cosmos   Cosmos
}

// DefaultServiceConfigFromEnv returns the server config as parsed from the
// environment with sensible development defaults.
func DefaultServiceConfigFromEnv() Server {
	return Server{
		Database: Database{
			Host:     util.GetEnv("PGHOST", "postgres"),
			Port:     util.GetEnvAsInt("PGPORT", 5432),
			Database: util.GetEnv("PGDATABASE", "go_cosmos"),
			Username: util.GetEnv("PGUSER", "dbuser"),
			Password: util.GetEnv("PGPASSWORD", ""),
			AdditionalParams: map[string]string{
				"sslmode": util.GetEnv("PGSSLMODE", "disable"),
			},
			MaxOpenConns:    util.GetEnvAsInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns:    util.GetEnvAsInt("DB_MAX_IDLE_CONNS", 15),
			ConnMaxLifetime: time.Second * time.Duration(util.GetEnvAsInt("DB_CONN_MAX_LIFETIME_SEC", 3600)),
		},
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
		},
		Logger: Logger{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Cosmos: Cosmos{
			StorageBackend: util.GetEnv("SERVER_COSMOS_STORAGE_BACKEND", StorageBackendPostgreSQL),
			APIVersion:     util.GetEnv("SERVER_COSMOS_API_VERSION", auth.DefaultAPIVersion),
			DefaultAccount: util.GetEnv("SERVER_COSMOS_DEFAULT_ACCOUNT", ""),
		},
	}
}
