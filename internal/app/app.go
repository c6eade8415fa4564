package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/api"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/server"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// backend is a trivia.Store that can be health-checked and released.
type backend interface {
	trivia.Store
	server.Pinger
}

// Application aggregates shared infrastructure (store, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	http    *http.Server
	closers []func() error
}

// New bootstraps logger, the configured store and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Str("store", cfg.Store.Driver).Msg("starting application bootstrap")

	a := &Application{cfg: cfg, logger: logger}

	store, err := a.openStore(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	svc := trivia.NewService(store, logger, trivia.ServiceOptions{})
	handlers := api.NewHandlers(svc, logger)
	a.http = server.NewHTTPServer(cfg, logger, handlers, store)

	return a, nil
}

func (a *Application) openStore(ctx context.Context) (backend, error) {
	switch a.cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, a.cfg.Postgres.PoolConnString())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })

		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		if a.cfg.Store.AutoMigrate {
			// the sql.DB borrows connections from the pool; the pool stays owned by closers
			if err := db.Up(ctx, stdlib.OpenDBFromPool(pool), db.DriverPostgres); err != nil {
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
			a.logger.Info().Msg("postgres migrations applied")
		}
		return pgBackend{PostgresStore: repository.NewPostgresStore(pool), pool: pool}, nil

	case config.DriverSQLite:
		store, err := repository.OpenSQLite(a.cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)

		if a.cfg.Store.AutoMigrate {
			if err := db.Up(ctx, store.DB(), db.DriverSQLite); err != nil {
				return nil, fmt.Errorf("migrate sqlite: %w", err)
			}
			a.logger.Info().Str("path", a.cfg.SQLite.Path).Msg("sqlite migrations applied")
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", a.cfg.Store.Driver)
	}
}

type pgBackend struct {
	*repository.PostgresStore
	pool *pgxpool.Pool
}

func (b pgBackend) Ping(ctx context.Context) error {
	return b.pool.Ping(ctx)
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		a.close()
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.close()
	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Error().Err(err).Msg("store shutdown error")
		}
	}
	a.closers = nil
}
