package report

import (
	"fmt"
	"strings"

	"github.com/Spok95/sport-inventory/internal/domain/analytics"
)

// Digest is the short plain-text version of the report used for chat messages.
func Digest(title string, s *analytics.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s\n", title)
	fmt.Fprintf(&b, "Highest quarter: %s\n", s.Highest)
	fmt.Fprintf(&b, "Lowest quarter: %s\n", s.Lowest)
	fmt.Fprintf(&b, "Overall average: %s\n", fixed2(s.OverallAverage))
	if s.Leader != "" {
		fmt.Fprintf(&b, "Leader: %s (%s)\n", s.Leader, fixed2(averageOf(s, s.Leader)))
	}

	names := make([]string, 0, len(s.AboveThreshold))
	for _, it := range s.AboveThreshold {
		names = append(names, it.Name)
	}
	if len(names) == 0 {
		fmt.Fprintf(&b, "≥%d every quarter: none", s.Threshold)
	} else {
		fmt.Fprintf(&b, "≥%d every quarter: %s", s.Threshold, strings.Join(names, ", "))
	}
	return b.String()
}

func averageOf(s *analytics.Summary, name string) float64 {
	for _, it := range s.Items {
		if it.Name == name {
			return it.Average
		}
	}
	return 0
}
