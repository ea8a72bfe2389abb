package analytics

import (
	"errors"
	"math"
	"testing"

	"github.com/Spok95/sport-inventory/internal/domain/inventory"
)

func record(items ...inventory.Item) *inventory.Record {
	rec := inventory.NewRecord()
	for _, it := range items {
		for _, q := range inventory.Quarters() {
			rec.Set(it.Name, q, it.Quantities[q])
		}
	}
	return rec
}

func ballAndNet() *inventory.Record {
	return record(
		inventory.Item{Name: "Ball", Quantities: inventory.Quantities{120, 80, 200, 150}},
		inventory.Item{Name: "Net", Quantities: inventory.Quantities{100, 100, 100, 100}},
	)
}

func names(items []ItemStats) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func equalNames(t *testing.T, what string, got []ItemStats, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("%s = %v, want %v", what, g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("%s = %v, want %v", what, g, want)
		}
	}
}

func TestSummarizeBallAndNet(t *testing.T) {
	s, err := Summarize(ballAndNet(), DefaultOptions())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if s.Totals != (inventory.Quantities{220, 180, 300, 250}) {
		t.Errorf("totals = %v", s.Totals)
	}
	if s.Highest != inventory.Q3 || s.Lowest != inventory.Q2 {
		t.Errorf("highest/lowest = %s/%s, want Q3/Q2", s.Highest, s.Lowest)
	}
	if s.Ranking[0].Average != 137.5 || s.Ranking[1].Average != 100.0 {
		t.Errorf("averages = %v, %v", s.Ranking[0].Average, s.Ranking[1].Average)
	}
	equalNames(t, "ranking", s.Ranking, "Ball", "Net")
	equalNames(t, "above threshold", s.AboveThreshold, "Net")
	if s.Leader != "Ball" {
		t.Errorf("leader = %s", s.Leader)
	}
	if s.OverallAverage != 118.75 {
		t.Errorf("overall average = %v", s.OverallAverage)
	}
	for _, it := range s.Items {
		if it.Highlighted {
			t.Errorf("%s highlighted with average %.2f", it.Name, it.Average)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(inventory.NewRecord(), DefaultOptions()); !errors.Is(err, inventory.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, err := Summarize(nil, DefaultOptions()); !errors.Is(err, inventory.ErrNoData) {
		t.Fatalf("expected ErrNoData for nil record, got %v", err)
	}
}

func TestUnknownQuarterDoesNotAffectTotals(t *testing.T) {
	rec := inventory.Fold([]inventory.StockRow{
		{Name: "Ball", Quarter: "Q1", Quantity: 10},
		{Name: "Ball", Quarter: "Q5", Quantity: 1000},
	})
	if got := Totals(rec); got != (inventory.Quantities{10, 0, 0, 0}) {
		t.Fatalf("totals = %v", got)
	}
}

func TestQuarterTies(t *testing.T) {
	tests := []struct {
		totals          inventory.Quantities
		highest, lowest inventory.Quarter
	}{
		{inventory.Quantities{5, 5, 5, 5}, inventory.Q1, inventory.Q1},
		{inventory.Quantities{1, 9, 9, 1}, inventory.Q2, inventory.Q1},
		{inventory.Quantities{7, 3, 7, 3}, inventory.Q1, inventory.Q2},
		{inventory.Quantities{0, 0, 4, 4}, inventory.Q3, inventory.Q1},
	}
	for _, tt := range tests {
		if h := HighestQuarter(tt.totals); h != tt.highest {
			t.Errorf("HighestQuarter(%v) = %s, want %s", tt.totals, h, tt.highest)
		}
		if l := LowestQuarter(tt.totals); l != tt.lowest {
			t.Errorf("LowestQuarter(%v) = %s, want %s", tt.totals, l, tt.lowest)
		}
		h, l := HighestQuarter(tt.totals), LowestQuarter(tt.totals)
		for _, v := range tt.totals {
			if tt.totals[h] < v || v < tt.totals[l] {
				t.Errorf("bounds violated for %v", tt.totals)
			}
		}
	}
}

func TestRankStable(t *testing.T) {
	rec := record(
		inventory.Item{Name: "Cone", Quantities: inventory.Quantities{10, 10, 10, 10}},
		inventory.Item{Name: "Bat", Quantities: inventory.Quantities{40, 0, 0, 0}},
		inventory.Item{Name: "Ace", Quantities: inventory.Quantities{50, 50, 50, 50}},
		inventory.Item{Name: "Disc", Quantities: inventory.Quantities{0, 0, 0, 40}},
	)
	equalNames(t, "ranking", Rank(rec), "Ace", "Cone", "Bat", "Disc")
	equalNames(t, "sorted", Sorted(rec), "Ace", "Bat", "Cone", "Disc")
}

func TestSortedIsOrdinal(t *testing.T) {
	rec := record(
		inventory.Item{Name: "ball"},
		inventory.Item{Name: "Zone"},
		inventory.Item{Name: "Ball"},
	)
	equalNames(t, "sorted", Sorted(rec), "Ball", "Zone", "ball")
}

func TestAtLeast(t *testing.T) {
	items := Sorted(record(
		inventory.Item{Name: "A", Quantities: inventory.Quantities{100, 100, 100, 99}},
		inventory.Item{Name: "B", Quantities: inventory.Quantities{100, 200, 300, 400}},
		inventory.Item{Name: "C", Quantities: inventory.Quantities{0, 500, 500, 500}},
		inventory.Item{Name: "D", Quantities: inventory.Quantities{150, 150, 150, 150}},
	))

	got := AtLeast(items, 100)
	equalNames(t, "threshold 100", got, "B", "D")
	for _, it := range items {
		kept := false
		for _, g := range got {
			kept = kept || g.Name == it.Name
		}
		if kept != (it.Quantities.Min() >= 100) {
			t.Errorf("%s kept=%v with min %d", it.Name, kept, it.Quantities.Min())
		}
	}

	none := AtLeast(items, 1000)
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", none)
	}
}

func TestOverallAverageReproducesTotal(t *testing.T) {
	rec := record(
		inventory.Item{Name: "A", Quantities: inventory.Quantities{1, 2, 3, 4}},
		inventory.Item{Name: "B", Quantities: inventory.Quantities{7, 0, 11, 13}},
		inventory.Item{Name: "C", Quantities: inventory.Quantities{3, 3, 3, 2}},
	)
	total := Totals(rec).Sum()
	back := OverallAverage(rec) * float64(rec.Len()*inventory.NumQuarters)
	if math.Abs(back-float64(total)) > 1e-9 {
		t.Fatalf("overall average × n×4 = %v, total %d", back, total)
	}
}

func TestSummarizeDoesNotMutateRecord(t *testing.T) {
	rec := ballAndNet()
	before := rec.Items()
	if _, err := Summarize(rec, Options{Threshold: 50, Highlight: 120}); err != nil {
		t.Fatal(err)
	}
	after := rec.Items()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("record changed: %v -> %v", before[i], after[i])
		}
	}
}

func TestHighlight(t *testing.T) {
	s, err := Summarize(ballAndNet(), Options{Threshold: DefaultThreshold, Highlight: 137.5})
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range s.Items {
		if it.Highlighted != (it.Name == "Ball") {
			t.Errorf("%s highlighted=%v", it.Name, it.Highlighted)
		}
	}
}
