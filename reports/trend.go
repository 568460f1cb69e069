package reports

import (
	"sort"
	"time"

	"github.com/parkdash/models"
)

// TrendPoint is one (transaction date, unit) cell of the daily trend chart.
// Weekend marks Friday through Sunday, the park's peak days, which the
// dashboard shades behind the trend lines.
type TrendPoint struct {
	Date             time.Time `json:"date"`
	Unit             string    `json:"unit"`
	TotalPayment     float64   `json:"total_payment"`
	TicketsPurchased float64   `json:"tickets_purchased"`
	Weekend          bool      `json:"weekend"`
}

// DailyTrend aggregates payment and ticket quantity per (transaction date,
// unit), sorted by date then unit. Lines without a transaction date are
// skipped.
func DailyTrend(lines []models.TicketLine) []TrendPoint {
	type cell struct {
		date time.Time
		unit string
	}
	acc := make(map[cell]*TrendPoint)
	for _, line := range lines {
		if line.TransactionDate == nil {
			continue
		}
		key := cell{date: dateOnly(*line.TransactionDate), unit: line.TicketGroup}
		p, ok := acc[key]
		if !ok {
			wd := key.date.Weekday()
			p = &TrendPoint{
				Date:    key.date,
				Unit:    key.unit,
				Weekend: wd == time.Friday || wd == time.Saturday || wd == time.Sunday,
			}
			acc[key] = p
		}
		if line.TotalPayment != nil {
			p.TotalPayment += *line.TotalPayment
		}
		if line.TicketPurchased != nil {
			p.TicketsPurchased += *line.TicketPurchased
		}
	}

	out := make([]TrendPoint, 0, len(acc))
	for _, p := range acc {
		out = append(out, *p)
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].Date.Equal(out[b].Date) {
			return out[a].Date.Before(out[b].Date)
		}
		return out[a].Unit < out[b].Unit
	})
	return out
}
