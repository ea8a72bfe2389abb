package db

import (
	"fmt"
	"log/slog"

	"github.com/Spok95/sport-inventory/migrations"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.SetBaseFS(migrations.FS)
}

// Migrate brings the equipment/stock schema up to date. It runs once at startup,
// never on the report path.
func Migrate(dsn string, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	v, err := goose.GetDBVersion(sqlDB)
	if err == nil {
		log.Info("schema version", "version", v)
	}
	return nil
}
