package report

import (
	"fmt"
	"io"

	"github.com/Spok95/sport-inventory/internal/domain/analytics"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Summary"
	SheetOverview  = "Overview"
	SheetRanking   = "Ranking"
	SheetThreshold = "Threshold"

	WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// WriteWorkbook writes the report as an xlsx file with one sheet per section.
func WriteWorkbook(w io.Writer, s *analytics.Summary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return err
	}
	for _, name := range []string{SheetOverview, SheetRanking, SheetThreshold} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	summary := [][]any{
		{"Highest quarter", s.Highest.String()},
		{"Lowest quarter", s.Lowest.String()},
		{"Overall average", s.OverallAverage},
		{"Leader", s.Leader},
		{"Threshold", s.Threshold},
	}
	if err := setRows(f, SheetSummary, summary); err != nil {
		return err
	}

	quarterHeader := []any{"Equipment", "Q1", "Q2", "Q3", "Q4"}

	overview := [][]any{append(quarterHeader, "Average")}
	for _, it := range s.Items {
		overview = append(overview, quantitiesRow(it, it.Average))
	}
	if err := setRows(f, SheetOverview, overview); err != nil {
		return err
	}

	ranking := [][]any{{"Rank", "Equipment", "Average"}}
	for i, it := range s.Ranking {
		ranking = append(ranking, []any{i + 1, it.Name, it.Average})
	}
	if err := setRows(f, SheetRanking, ranking); err != nil {
		return err
	}

	threshold := [][]any{quarterHeader}
	for _, it := range s.AboveThreshold {
		threshold = append(threshold, quantitiesRow(it))
	}
	if err := setRows(f, SheetThreshold, threshold); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func quantitiesRow(it analytics.ItemStats, extra ...any) []any {
	row := []any{it.Name}
	for _, q := range it.Quantities {
		row = append(row, q)
	}
	return append(row, extra...)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
