// Package db runs the embedded schema migrations against a store.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/gokatarajesh/trivia-api/db/migrations"
)

// Supported store drivers. Each names a directory under db/migrations.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var gooseDialects = map[string]string{
	DriverPostgres: "postgres",
	DriverSQLite:   "sqlite3",
}

// Command names accepted by Run.
const (
	CommandUp     = "up"
	CommandDown   = "down"
	CommandStatus = "status"
)

// Run applies a goose command using the migrations embedded for driver.
func Run(ctx context.Context, db *sql.DB, driver, command string) error {
	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("unsupported store driver %q", driver)
	}

	goose.SetBaseFS(migrations.FS)
	goose.SetTableName("goose_db_version")
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	switch command {
	case CommandUp:
		return goose.UpContext(ctx, db, driver)
	case CommandDown:
		return goose.DownContext(ctx, db, driver)
	case CommandStatus:
		return goose.StatusContext(ctx, db, driver)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	return Run(ctx, db, driver, CommandUp)
}
