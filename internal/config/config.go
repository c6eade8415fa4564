package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:5000"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`
	ReadHeaderTimeout       time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`

	Store    Store
	Postgres Postgres
	SQLite   SQLite
	CORS     CORS
}

// Store selects the persistence backend.
type Store struct {
	Driver      string `env:"STORE_DRIVER" envDefault:"postgres"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER"`
	Password string `env:"PG_PASSWORD"`
	Database string `env:"PG_DATABASE" envDefault:"trivia"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns int    `env:"PG_MAX_CONNS" envDefault:"10"`
}

// ConnString renders a pgx keyword/value connection string.
func (p Postgres) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// PoolConnString is ConnString plus the pgxpool sizing parameter.
func (p Postgres) PoolConnString() string {
	return fmt.Sprintf("%s pool_max_conns=%d", p.ConnString(), p.MaxConns)
}

// SQLite configures the file-backed store.
type SQLite struct {
	Path string `env:"SQLITE_PATH" envDefault:"trivia.db"`
}

// CORS holds the cross-origin headers attached to every response. The
// defaults are what the trivia frontend has always received, including the
// stray "true" entry in the allowed headers.
type CORS struct {
	AllowedOrigin  string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	AllowedHeaders string `env:"CORS_ALLOWED_HEADERS" envDefault:"Content-Type,Authorization,true"`
	AllowedMethods string `env:"CORS_ALLOWED_METHODS" envDefault:"GET,PATCH,POST,DELETE,OPTIONS"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements env tags cannot express.
func (a *App) Validate() error {
	switch a.Store.Driver {
	case DriverPostgres:
		if a.Postgres.User == "" {
			return fmt.Errorf("PG_USER must be configured for the postgres store")
		}
	case DriverSQLite:
		if a.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH must be configured for the sqlite store")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (want %s or %s)", a.Store.Driver, DriverPostgres, DriverSQLite)
	}
	return nil
}
