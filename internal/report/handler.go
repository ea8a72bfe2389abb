package report

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Spok95/sport-inventory/internal/domain/analytics"
	"github.com/Spok95/sport-inventory/internal/domain/inventory"
	"github.com/Spok95/sport-inventory/internal/infra/metrics"
)

const (
	msgNoData      = "No inventory data found."
	msgStoreFailed = "Database connection failed: "
)

type Builder interface {
	Build(ctx context.Context) (*analytics.Summary, error)
}

type Handler struct {
	log      *slog.Logger
	reports  Builder
	renderer *Renderer
	theme    Theme
	metrics  *metrics.Metrics
}

func NewHandler(log *slog.Logger, reports Builder, renderer *Renderer, theme Theme, m *metrics.Metrics) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{log: log, reports: reports, renderer: renderer, theme: theme, metrics: m}
}

// Register mounts the report routes.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.ServeHTML)
	mux.HandleFunc("GET /report.xlsx", h.ServeWorkbook)
}

// ServeHTML отдаёт отчёт целиком или 500 с текстом ошибки, без частичного HTML.
func (h *Handler) ServeHTML(w http.ResponseWriter, r *http.Request) {
	sum, ok := h.build(w, r, "html")
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.HTML(&buf, h.theme, sum); err != nil {
		h.log.Error("render report failed", "err", err)
		h.metrics.Count("html", metrics.OutcomeError)
		writeText(w, http.StatusInternalServerError, "Failed to render report.")
		return
	}

	h.metrics.Count("html", metrics.OutcomeOK)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) ServeWorkbook(w http.ResponseWriter, r *http.Request) {
	sum, ok := h.build(w, r, "xlsx")
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, sum); err != nil {
		h.log.Error("build workbook failed", "err", err)
		h.metrics.Count("xlsx", metrics.OutcomeError)
		writeText(w, http.StatusInternalServerError, "Failed to build workbook.")
		return
	}

	h.metrics.Count("xlsx", metrics.OutcomeOK)
	w.Header().Set("Content-Type", WorkbookContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) build(w http.ResponseWriter, r *http.Request, format string) (*analytics.Summary, bool) {
	sum, err := h.reports.Build(r.Context())
	if err == nil {
		return sum, true
	}

	var storeErr *StoreError
	switch {
	case errors.Is(err, inventory.ErrNoData):
		h.log.Warn("no inventory data", "format", format)
		h.metrics.Count(format, metrics.OutcomeNoData)
		writeText(w, http.StatusInternalServerError, msgNoData)
	case errors.As(err, &storeErr):
		h.log.Error("load inventory failed", "format", format, "err", storeErr.Err)
		h.metrics.Count(format, metrics.OutcomeError)
		writeText(w, http.StatusInternalServerError, msgStoreFailed+storeErr.Err.Error())
	default:
		h.log.Error("build report failed", "format", format, "err", err)
		h.metrics.Count(format, metrics.OutcomeError)
		writeText(w, http.StatusInternalServerError, err.Error())
	}
	return nil, false
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
