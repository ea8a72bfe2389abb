// Package report turns the stored inventory into the quarterly analytics report:
// an HTML page in one of two themes, an xlsx workbook, or a short text digest.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/Spok95/sport-inventory/internal/domain/analytics"
	"github.com/Spok95/sport-inventory/internal/domain/inventory"
	"github.com/Spok95/sport-inventory/internal/infra/metrics"
)

type Loader interface {
	Load(ctx context.Context) (*inventory.Record, error)
}

// StoreError wraps any failure to reach or query the store.
type StoreError struct{ Err error }

func (e *StoreError) Error() string { return "database connection failed: " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

type Service struct {
	loader  Loader
	opts    analytics.Options
	metrics *metrics.Metrics
	log     *slog.Logger
}

func NewService(loader Loader, opts analytics.Options, m *metrics.Metrics, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{loader: loader, opts: opts, metrics: m, log: log}
}

// Build loads the record and summarizes it. Empty stock is inventory.ErrNoData.
func (s *Service) Build(ctx context.Context) (*analytics.Summary, error) {
	start := time.Now()
	rec, err := s.loader.Load(ctx)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	s.metrics.ObserveBuild(start, rec.Len())

	sum, err := analytics.Summarize(rec, s.opts)
	if err != nil {
		return nil, err
	}
	s.log.Debug("report built",
		"items", rec.Len(),
		"highest", sum.Highest.String(),
		"lowest", sum.Lowest.String(),
		"above_threshold", len(sum.AboveThreshold),
	)
	return sum, nil
}
