package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

func main() {
	command := flag.String("command", db.CommandUp, "Migration command: up, down, or status")
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load("configs/.env")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var conn *sql.DB
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		conn, err = sql.Open("pgx", cfg.Postgres.ConnString())
		if err != nil {
			log.Fatal().Err(err).Str("host", cfg.Postgres.Host).Msg("failed to open database connection")
		}
	case config.DriverSQLite:
		store, err := repository.OpenSQLite(cfg.SQLite.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SQLite.Path).Msg("failed to open sqlite database")
		}
		conn = store.DB()
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	log.Info().
		Str("driver", cfg.Store.Driver).
		Str("command", *command).
		Msg("connected to database")

	if err := db.Run(ctx, conn, cfg.Store.Driver, *command); err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("migration failed")
	}
	log.Info().Str("command", *command).Msg("migration command completed")
}
