// Command digest builds the inventory report once and sends it to the admin Telegram chat.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/sport-inventory/internal/config"
	"github.com/Spok95/sport-inventory/internal/domain/analytics"
	"github.com/Spok95/sport-inventory/internal/domain/inventory"
	"github.com/Spok95/sport-inventory/internal/infra/db"
	"github.com/Spok95/sport-inventory/internal/infra/logger"
	"github.com/Spok95/sport-inventory/internal/notify"
	"github.com/Spok95/sport-inventory/internal/report"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
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
		log.Error("digest failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.Postgres.ConnString(), log)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("telegram init: %w", err)
	}
	return sendDigest(ctx, cfg, inventory.NewRepo(pool, log), api, log, time.Now())
}

// sendDigest builds the report from loader and posts it through api.
func sendDigest(ctx context.Context, cfg config.Config, loader report.Loader, api notify.Sender, log *slog.Logger, now time.Time) error {
	tg, err := notify.NewTelegram(api, cfg.Telegram.AdminChatID, cfg.Report.Title, log)
	if err != nil {
		return err
	}
	svc := report.NewService(loader,
		analytics.Options{Threshold: cfg.Report.Threshold, Highlight: cfg.Report.Highlight},
		nil, log,
	)
	sum, err := svc.Build(ctx)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	return tg.SendReport(sum, now)
}
