// Command migrate applies the equipment/stock schema once and exits.
package main

import (
	"flag"
	"os"

	"github.com/Spok95/sport-inventory/internal/config"
	"github.com/Spok95/sport-inventory/internal/infra/db"
	"github.com/Spok95/sport-inventory/internal/infra/logger"
)

func main() {
	cfgPath := flag.String("config", "config/example.yaml", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.App.Env)

	if err := db.Migrate(cfg.Postgres.ConnString(), log); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}
	log.Info("migrations applied")
}
