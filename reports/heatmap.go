package reports

import (
	"sort"

	"github.com/parkdash/models"
)

// HeatmapCell is one (month, day) cell of the visit calendar heatmap; Count
// sums the tickets purchased on that visit date.
type HeatmapCell struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	MonthName string  `json:"month_name"`
	Day       int     `json:"day"`
	Count     float64 `json:"count"`
}

// VisitHeatmap aggregates ticket quantity by visit date parts, sorted by
// (year, month, day). Lines without a visit date are skipped.
func VisitHeatmap(lines []models.TicketLine) []HeatmapCell {
	type key struct {
		year  int
		month int
		day   int
	}
	acc := make(map[key]float64)
	for _, line := range lines {
		if line.VisitDate == nil || line.TotalTicketPurchase == nil {
			continue
		}
		k := key{year: line.VisitDate.Year(), month: int(line.VisitDate.Month()), day: line.VisitDate.Day()}
		acc[k] += *line.TotalTicketPurchase
	}

	keys := make([]key, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].year != keys[b].year {
			return keys[a].year < keys[b].year
		}
		if keys[a].month != keys[b].month {
			return keys[a].month < keys[b].month
		}
		return keys[a].day < keys[b].day
	})

	out := make([]HeatmapCell, 0, len(keys))
	for _, k := range keys {
		out = append(out, HeatmapCell{
			Year:      k.year,
			Month:     k.month,
			MonthName: monthNames[k.month-1],
			Day:       k.day,
			Count:     acc[k],
		})
	}
	return out
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
