// Package etl turns raw dashboard CSV exports into cleaned, typed tables:
// the multi-item ticket transaction export into per-ticket-line rows and the
// customer survey export into canonical survey responses.
package etl

import (
	"io"
	"strings"
	"time"

	"github.com/parkdash/dataset"
	"github.com/parkdash/models"
)

// Columns of the transaction export. The exporter mixes English and
// Indonesian names; they must be matched verbatim.
const (
	ColTransactionID   = "No Transaksi"
	ColTransactionDate = "Tgl Transaksi"
	ColVisitDate       = "Tgl Kunjungan"
	ColAttendeeName    = "Attendee Name"
	ColAttendeeEmail   = "Attendee Email"
	ColAttendeePhone   = "Attendee Phone"
	ColTicketGroup     = "Ticket Group"
	ColTicketPurchased = "Ticket Purchased"
	ColTicketDetail    = "Ticket Detail"
	ColTicketPrice     = "Ticket Price"
)

// dropColumns are settlement/voucher columns the dashboards never use.
// Absent ones are skipped silently.
var dropColumns = []string{
	"Settlement Paid Timestamp",
	"Payment Type",
	"Ticket Type",
	"Kode Voucher",
	"Voucher Amount",
	"Biaya",
	"Total Paid",
}

// multiItemColumns hold ";"-joined per-line values; entry i of each column
// belongs to ticket line i of the transaction.
var multiItemColumns = []string{
	ColTicketGroup,
	ColTicketPurchased,
	ColTicketDetail,
	ColTicketPrice,
}

var transactionSchema = dataset.Schema{
	Required: []string{
		ColTransactionID,
		ColTicketGroup,
		ColTicketPurchased,
		ColTicketDetail,
		ColTicketPrice,
	},
	Optional: []string{
		ColTransactionDate,
		ColVisitDate,
		ColAttendeeName,
		ColAttendeeEmail,
		ColAttendeePhone,
	},
}

// LoadAndClean reads a raw transaction CSV and produces one TicketLine per
// (transaction, ticket line). Malformed values degrade to null, never to an
// error; a missing required column or an input without data rows yields an
// empty result.
//
// Step order is load-bearing: the transaction-scoped totals are computed
// before the explode, and the empty-row cleaning runs on the still-unexploded
// rows, so a row is dropped when ANY of its columns is blank, not per line.
func LoadAndClean(r io.Reader) ([]models.TicketLine, error) {
	table, err := dataset.ReadCSV(r)
	if err != nil {
		return nil, err
	}

	table.DropColumns(dropColumns...)

	res := transactionSchema.Negotiate(table)
	if !res.Complete || table.NumRows() == 0 {
		return []models.TicketLine{}, nil
	}

	n := table.NumRows()

	// Date columns: unparseable values become null. The cell is blanked so
	// the empty-row cleaning below treats the row as incomplete, matching
	// the dropna pass of the reference pipeline.
	txnDates := make([]*time.Time, n)
	visitDates := make([]*time.Time, n)
	for i := 0; i < n; i++ {
		txnDates[i] = parseDateCell(table, i, ColTransactionDate, res)
		visitDates[i] = parseDateCell(table, i, ColVisitDate, res)
	}

	// Transaction totals, from a positional zip of the unsplit quantity and
	// price lists. A pair that fails numeric coercion contributes 0 to the
	// sums instead of invalidating the transaction.
	totalPayment := make([]float64, n)
	totalTickets := make([]float64, n)
	for i := 0; i < n; i++ {
		qtys := strings.Split(table.Get(i, ColTicketPurchased), ";")
		prices := strings.Split(table.Get(i, ColTicketPrice), ";")
		for j := 0; j < len(qtys) && j < len(prices); j++ {
			q, qok := parseNumber(qtys[j])
			p, pok := parseNumber(prices[j])
			if qok && pok {
				totalPayment[i] += q * p
			}
		}
		for _, qs := range qtys {
			if q, ok := parseNumber(qs); ok {
				totalTickets[i] += q
			}
		}
	}

	// Empty-row cleaning on the unexploded rows.
	keep := make([]bool, n)
	for i := 0; i < n; i++ {
		keep[i] = !table.RowIsBlank(i)
	}

	// Explode the multi-value columns in lockstep. Unequal list lengths for
	// one row expand to the longest list, padding the short columns with
	// null entries.
	var lines []models.TicketLine
	for i := 0; i < n; i++ {
		if !keep[i] {
			continue
		}

		split := make(map[string][]string, len(multiItemColumns))
		width := 0
		for _, col := range multiItemColumns {
			parts := strings.Split(table.Get(i, col), ";")
			split[col] = parts
			if len(parts) > width {
				width = len(parts)
			}
		}

		for j := 0; j < width; j++ {
			qty, qok := parseNumber(entryAt(split[ColTicketPurchased], j))
			price, pok := parseNumber(entryAt(split[ColTicketPrice], j))

			line := models.TicketLine{
				TransactionID:   strings.TrimSpace(table.Get(i, ColTransactionID)),
				TransactionDate: txnDates[i],
				VisitDate:       visitDates[i],
				AttendeeName:    strings.TrimSpace(table.Get(i, ColAttendeeName)),
				AttendeeEmail:   strings.TrimSpace(table.Get(i, ColAttendeeEmail)),
				AttendeePhone:   strings.TrimSpace(table.Get(i, ColAttendeePhone)),
				TicketGroup:     entryAt(split[ColTicketGroup], j),
				TicketDetail:    entryAt(split[ColTicketDetail], j),

				TotalPaymentTransaction:         ptr(totalPayment[i]),
				TotalTicketPurchasedTransaction: ptr(totalTickets[i]),
			}
			if qok {
				line.TicketPurchased = ptr(qty)
				line.TotalTicketPurchase = ptr(qty)
			}
			if pok {
				line.TicketPrice = ptr(price)
			}
			if qok && pok {
				line.TotalPayment = ptr(qty * price)
			}
			lines = append(lines, line)
		}
	}

	if lines == nil {
		lines = []models.TicketLine{}
	}
	return lines, nil
}

// parseDateCell parses a date column cell, blanking the cell on failure so
// the row is later dropped as incomplete. Absent columns stay null without
// touching the table.
func parseDateCell(t *dataset.Table, row int, col string, res dataset.Resolution) *time.Time {
	if res.Absent[col] {
		return nil
	}
	parsed, ok := ParseDate(t.Get(row, col), false)
	if !ok {
		t.Set(row, col, "")
		return nil
	}
	return &parsed
}

func entryAt(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[i])
}

func ptr(v float64) *float64 { return &v }
