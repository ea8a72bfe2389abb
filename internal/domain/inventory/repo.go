package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

const loadStockSQL = `
	SELECT e.name, s.quarter, s.quantity
	FROM equipment e
	JOIN stock s ON s.equipment_id = e.id
	ORDER BY e.name, s.quarter
`

// Querier is the part of pgxpool.Pool the repo needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type StockRow struct {
	Name     string
	Quarter  string
	Quantity int
}

type Repo struct {
	db  Querier
	log *slog.Logger
}

func NewRepo(db Querier, log *slog.Logger) *Repo {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Repo{db: db, log: log}
}

// Load читает все остатки одним запросом. Пустой Record не ошибка — решает вызывающий.
func (r *Repo) Load(ctx context.Context) (*Record, error) {
	rows, err := r.db.Query(ctx, loadStockSQL)
	if err != nil {
		return nil, fmt.Errorf("query stock: %w", err)
	}
	stock, err := pgx.CollectRows(rows, pgx.RowToStructByPos[StockRow])
	if err != nil {
		return nil, fmt.Errorf("scan stock: %w", err)
	}

	return fold(stock, r.log), nil
}

// Fold builds a Record from already fetched rows, dropping unknown quarters.
func Fold(rows []StockRow) *Record {
	return fold(rows, slog.New(slog.DiscardHandler))
}

func fold(rows []StockRow, log *slog.Logger) *Record {
	rec := NewRecord()
	for _, row := range rows {
		q, ok := ParseQuarter(row.Quarter)
		if !ok {
			log.Debug("skip stock row with unknown quarter", "item", row.Name, "quarter", row.Quarter)
			continue
		}
		rec.Set(row.Name, q, row.Quantity)
	}
	return rec
}
