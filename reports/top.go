package reports

import (
	"sort"

	"github.com/parkdash/models"
)

// TicketRank is one bar of a top-tickets chart.
type TicketRank struct {
	TicketDetail string  `json:"ticket_detail"`
	Value        float64 `json:"value"`
	Label        string  `json:"label,omitempty"`
}

// TopTicketsByPayment returns the n ticket details with the highest summed
// payment, descending, with a rupiah label per bar.
func TopTicketsByPayment(lines []models.TicketLine, n int) []TicketRank {
	ranks := rankTickets(lines, n, func(line models.TicketLine) (float64, bool) {
		if line.TotalPayment == nil {
			return 0, false
		}
		return *line.TotalPayment, true
	})
	for i := range ranks {
		ranks[i].Label = FormatRupiah(ranks[i].Value)
	}
	return ranks
}

// TopTicketsByPurchased returns the n ticket details with the highest
// summed quantity, descending.
func TopTicketsByPurchased(lines []models.TicketLine, n int) []TicketRank {
	return rankTickets(lines, n, func(line models.TicketLine) (float64, bool) {
		if line.TicketPurchased == nil {
			return 0, false
		}
		return *line.TicketPurchased, true
	})
}

func rankTickets(lines []models.TicketLine, n int, value func(models.TicketLine) (float64, bool)) []TicketRank {
	totals := make(map[string]float64)
	for _, line := range lines {
		if line.TicketDetail == "" {
			continue
		}
		if v, ok := value(line); ok {
			totals[line.TicketDetail] += v
		}
	}

	out := make([]TicketRank, 0, len(totals))
	for detail, total := range totals {
		out = append(out, TicketRank{TicketDetail: detail, Value: total})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Value != out[b].Value {
			return out[a].Value > out[b].Value
		}
		return out[a].TicketDetail < out[b].TicketDetail
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
