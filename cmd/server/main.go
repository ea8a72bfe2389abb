package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/sport-inventory/internal/config"
	"github.com/Spok95/sport-inventory/internal/domain/analytics"
	"github.com/Spok95/sport-inventory/internal/domain/inventory"
	"github.com/Spok95/sport-inventory/internal/infra/db"
	httpx "github.com/Spok95/sport-inventory/internal/infra/http"
	"github.com/Spok95/sport-inventory/internal/infra/logger"
	"github.com/Spok95/sport-inventory/internal/infra/metrics"
	"github.com/Spok95/sport-inventory/internal/report"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfgPath := flag.String("config", "config/example.yaml", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)
	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	dsn := cfg.Postgres.ConnString()

	// Схема — отдельный шаг (cmd/migrate); здесь ошибка не мешает отдавать 500.
	if cfg.Postgres.Migrate {
		if err := db.Migrate(dsn, log); err != nil {
			log.Warn("migrations failed", "err", err)
		} else {
			log.Info("migrations applied")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, dsn, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	srv, err := newServer(cfg, pool, log, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
			stop()
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr, "theme", cfg.Report.Theme)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
	return nil
}

// newServer wires repo, report service and handler onto the HTTP server.
func newServer(cfg config.Config, store inventory.Querier, log *slog.Logger, reg prometheus.Registerer) (*httpx.Server, error) {
	theme, err := report.ParseTheme(cfg.Report.Theme)
	if err != nil {
		return nil, err
	}
	renderer, err := report.NewRenderer(cfg.Report.Title)
	if err != nil {
		return nil, err
	}

	m := metrics.New(reg)
	svc := report.NewService(
		inventory.NewRepo(store, log),
		analytics.Options{Threshold: cfg.Report.Threshold, Highlight: cfg.Report.Highlight},
		m, log,
	)
	handler := report.NewHandler(log, svc, renderer, theme, m)
	return httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, log, handler), nil
}
