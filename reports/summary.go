package reports

import (
	"sort"

	"github.com/parkdash/models"
)

// Summary backs the dashboard's headline metric cards.
type Summary struct {
	TotalTickets     float64 `json:"total_tickets"`
	TotalPayment     float64 `json:"total_payment"`
	FormattedPayment string  `json:"formatted_payment"`
}

// UnitPayment is the revenue card of one business unit.
type UnitPayment struct {
	Unit             string  `json:"unit"`
	TotalPayment     float64 `json:"total_payment"`
	FormattedPayment string  `json:"formatted_payment"`
}

// Summarize totals ticket quantity and payment over the given lines. Null
// values are excluded from the sums.
func Summarize(lines []models.TicketLine) Summary {
	var s Summary
	for _, line := range lines {
		if line.TicketPurchased != nil {
			s.TotalTickets += *line.TicketPurchased
		}
		if line.TotalPayment != nil {
			s.TotalPayment += *line.TotalPayment
		}
	}
	s.FormattedPayment = FormatRupiah(s.TotalPayment)
	return s
}

// PaymentPerUnit sums line payments per business unit, sorted by unit name.
func PaymentPerUnit(lines []models.TicketLine) []UnitPayment {
	totals := make(map[string]float64)
	for _, line := range lines {
		if line.TicketGroup == "" || line.TotalPayment == nil {
			continue
		}
		totals[line.TicketGroup] += *line.TotalPayment
	}

	units := make([]string, 0, len(totals))
	for unit := range totals {
		units = append(units, unit)
	}
	sort.Strings(units)

	out := make([]UnitPayment, 0, len(units))
	for _, unit := range units {
		out = append(out, UnitPayment{
			Unit:             unit,
			TotalPayment:     totals[unit],
			FormattedPayment: FormatRupiah(totals[unit]),
		})
	}
	return out
}
