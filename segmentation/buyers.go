// Package segmentation derives customer-value analytics from exploded
// ticket lines: one-time vs repeat buyer classification and RFM
// (Recency/Frequency/Monetary) scoring. Transactions consisting solely of
// promotional giveaway tickets are excluded from both.
package segmentation

import (
	"sort"

	"github.com/parkdash/models"
)

// BuyerCount is the distinct non-promo transaction count of one customer.
type BuyerCount struct {
	Email        string `json:"email"`
	Transactions int    `json:"transactions"`
}

// BuyerSegmentation summarizes the one-time vs repeat buyer split.
type BuyerSegmentation struct {
	UniqueBuyers  int          `json:"unique_buyers"`
	OneTimeBuyers int          `json:"one_time_buyers"`
	RepeatBuyers  int          `json:"repeat_buyers"`
	Counts        []BuyerCount `json:"counts"`
}

// promoOnlyTransactions returns the ids of transactions whose distinct
// ticket details are all drawn from the promo list.
func promoOnlyTransactions(lines []models.TicketLine, promoTickets []string) map[string]bool {
	promo := make(map[string]bool, len(promoTickets))
	for _, p := range promoTickets {
		promo[p] = true
	}

	details := make(map[string]map[string]bool)
	for _, line := range lines {
		if line.TransactionID == "" {
			continue
		}
		set, ok := details[line.TransactionID]
		if !ok {
			set = make(map[string]bool)
			details[line.TransactionID] = set
		}
		set[line.TicketDetail] = true
	}

	promoOnly := make(map[string]bool)
	for id, set := range details {
		all := true
		for d := range set {
			if !promo[d] {
				all = false
				break
			}
		}
		if all {
			promoOnly[id] = true
		}
	}
	return promoOnly
}

// SegmentBuyers classifies customers by distinct transaction count after
// discarding promo-only transactions: exactly one transaction is a one-time
// buyer, more than one a repeat buyer. A nil promoTickets falls back to the
// production promo list.
func SegmentBuyers(lines []models.TicketLine, promoTickets []string) BuyerSegmentation {
	if promoTickets == nil {
		promoTickets = models.DefaultPromoTickets()
	}
	promoOnly := promoOnlyTransactions(lines, promoTickets)

	// Collapse the line rows back to one row per transaction. Summing the
	// already transaction-scoped total is a degenerate aggregation kept for
	// parity with the transaction-level table the dashboards show. Rows
	// missing part of the (transaction, email, phone) key drop out here.
	type txnKey struct {
		id    string
		email string
		phone string
	}
	txnTotals := make(map[txnKey]float64)
	for _, line := range lines {
		if promoOnly[line.TransactionID] {
			continue
		}
		if line.TransactionID == "" || line.AttendeeEmail == "" || line.AttendeePhone == "" {
			continue
		}
		key := txnKey{id: line.TransactionID, email: line.AttendeeEmail, phone: line.AttendeePhone}
		total := txnTotals[key]
		if line.TotalPaymentTransaction != nil {
			total += *line.TotalPaymentTransaction
		}
		txnTotals[key] = total
	}

	perCustomer := make(map[string]map[string]bool)
	for key := range txnTotals {
		set, ok := perCustomer[key.email]
		if !ok {
			set = make(map[string]bool)
			perCustomer[key.email] = set
		}
		set[key.id] = true
	}

	seg := BuyerSegmentation{Counts: make([]BuyerCount, 0, len(perCustomer))}
	for email, txns := range perCustomer {
		seg.Counts = append(seg.Counts, BuyerCount{Email: email, Transactions: len(txns)})
	}
	sort.Slice(seg.Counts, func(a, b int) bool {
		if seg.Counts[a].Transactions != seg.Counts[b].Transactions {
			return seg.Counts[a].Transactions > seg.Counts[b].Transactions
		}
		return seg.Counts[a].Email < seg.Counts[b].Email
	})

	seg.UniqueBuyers = len(seg.Counts)
	for _, c := range seg.Counts {
		if c.Transactions > 1 {
			seg.RepeatBuyers++
		} else {
			seg.OneTimeBuyers++
		}
	}
	return seg
}
