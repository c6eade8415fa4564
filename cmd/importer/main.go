package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/importer"
	"github.com/gokatarajesh/trivia-api/internal/logging"
)

func main() {
	category := flag.String("category", "Science", "Local category name to import into")
	amount := flag.Int("amount", 10, "Number of questions to fetch (OpenTDB caps at 50)")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load("configs/.env")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.New(cfg.Name, cfg.Env)

	client := importer.NewOpenTDBClient("", nil)

	var imp *importer.Importer
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Postgres.PoolConnString())
		if err != nil {
			logger.Fatal().Err(err).Msg("connect postgres")
		}
		defer pool.Close()
		imp = importer.New(client, repository.NewPostgresStore(pool), logger)
	case config.DriverSQLite:
		store, err := repository.OpenSQLite(cfg.SQLite.Path)
		if err != nil {
			logger.Fatal().Err(err).Msg("open sqlite")
		}
		defer store.Close()
		imp = importer.New(client, store, logger)
	}

	n, err := imp.Import(ctx, *category, *amount)
	if err != nil {
		logger.Fatal().Err(err).Int("inserted", n).Msg("import failed")
	}
}
