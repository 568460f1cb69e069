// Package reports computes the tabular aggregates behind the dashboard
// views: summary cards, per-unit revenue, daily trends, top tickets, the
// visit heatmap, and the survey scorecards. It consumes cleaned ticket
// lines and survey responses and produces plain data for the presentation
// layer to chart.
package reports

import (
	"time"

	"github.com/parkdash/models"
)

// FilterLines restricts lines to a transaction-date range and, when unit is
// non-empty, to one business unit. Bounds are inclusive and compared on the
// calendar date; a nil bound is open. Lines without a transaction date pass
// only an unbounded filter.
func FilterLines(lines []models.TicketLine, from, to *time.Time, unit string) []models.TicketLine {
	out := make([]models.TicketLine, 0, len(lines))
	for _, line := range lines {
		if unit != "" && line.TicketGroup != unit {
			continue
		}
		if from != nil || to != nil {
			if line.TransactionDate == nil {
				continue
			}
			day := dateOnly(*line.TransactionDate)
			if from != nil && day.Before(dateOnly(*from)) {
				continue
			}
			if to != nil && day.After(dateOnly(*to)) {
				continue
			}
		}
		out = append(out, line)
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
