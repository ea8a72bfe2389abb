// Package analytics derives quarterly statistics from a loaded inventory record.
// Every function here is pure and leaves its input untouched.
package analytics

import (
	"sort"

	"github.com/Spok95/sport-inventory/internal/domain/inventory"
)

const (
	DefaultThreshold = 100
	DefaultHighlight = 150.0
)

type ItemStats struct {
	Name       string
	Quantities inventory.Quantities
	Average    float64
	// Highlighted — средний остаток не ниже уровня подсветки.
	Highlighted bool
}

type Summary struct {
	Totals         inventory.Quantities
	Highest        inventory.Quarter
	Lowest         inventory.Quarter
	OverallAverage float64
	// Leader is the item with the highest average, first in Ranking.
	Leader string
	// Items sorted by name.
	Items []ItemStats
	// Ranking by average, high to low.
	Ranking []ItemStats
	// AboveThreshold keeps the name order of Items.
	AboveThreshold []ItemStats
	Threshold      int
	Highlight      float64
}

type Options struct {
	Threshold int
	Highlight float64
}

func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, Highlight: DefaultHighlight}
}

// Totals sums each quarter across all items.
func Totals(rec *inventory.Record) inventory.Quantities {
	var t inventory.Quantities
	for _, it := range rec.Items() {
		for q, v := range it.Quantities {
			t[q] += v
		}
	}
	return t
}

// HighestQuarter returns the quarter with the largest total; the earliest wins a tie.
func HighestQuarter(t inventory.Quantities) inventory.Quarter {
	best := 0
	for i := 1; i < inventory.NumQuarters; i++ {
		if t[i] > t[best] {
			best = i
		}
	}
	return inventory.Quarter(best)
}

// LowestQuarter returns the quarter with the smallest total; the earliest wins a tie.
func LowestQuarter(t inventory.Quantities) inventory.Quarter {
	worst := 0
	for i := 1; i < inventory.NumQuarters; i++ {
		if t[i] < t[worst] {
			worst = i
		}
	}
	return inventory.Quarter(worst)
}

func Average(q inventory.Quantities) float64 {
	return float64(q.Sum()) / inventory.NumQuarters
}

// OverallAverage is the grand total over items × quarters. Zero for an empty record.
func OverallAverage(rec *inventory.Record) float64 {
	if rec.Len() == 0 {
		return 0
	}
	return float64(Totals(rec).Sum()) / float64(rec.Len()*inventory.NumQuarters)
}

func stats(rec *inventory.Record) []ItemStats {
	items := rec.Items()
	out := make([]ItemStats, 0, len(items))
	for _, it := range items {
		out = append(out, ItemStats{Name: it.Name, Quantities: it.Quantities, Average: Average(it.Quantities)})
	}
	return out
}

// Rank orders items by average, high to low. Equal averages keep record order.
func Rank(rec *inventory.Record) []ItemStats {
	out := stats(rec)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Average > out[j].Average })
	return out
}

// Sorted orders items by name using plain byte comparison.
func Sorted(rec *inventory.Record) []ItemStats {
	out := stats(rec)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AtLeast keeps items whose every quarter is >= threshold, in input order.
func AtLeast(items []ItemStats, threshold int) []ItemStats {
	out := []ItemStats{}
	for _, it := range items {
		if it.Quantities.Min() >= threshold {
			out = append(out, it)
		}
	}
	return out
}

// Summarize computes the whole report. An empty record is ErrNoData.
func Summarize(rec *inventory.Record, opts Options) (*Summary, error) {
	if rec == nil || rec.Len() == 0 {
		return nil, inventory.ErrNoData
	}

	totals := Totals(rec)
	items := highlight(Sorted(rec), opts.Highlight)
	ranking := highlight(Rank(rec), opts.Highlight)

	return &Summary{
		Totals:         totals,
		Highest:        HighestQuarter(totals),
		Lowest:         LowestQuarter(totals),
		OverallAverage: OverallAverage(rec),
		Leader:         ranking[0].Name,
		Items:          items,
		Ranking:        ranking,
		AboveThreshold: AtLeast(items, opts.Threshold),
		Threshold:      opts.Threshold,
		Highlight:      opts.Highlight,
	}, nil
}

func highlight(items []ItemStats, level float64) []ItemStats {
	for i := range items {
		items[i].Highlighted = items[i].Average >= level
	}
	return items
}
