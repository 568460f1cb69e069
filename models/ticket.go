package models

import "time"

// TicketLine represents one row of the exploded transaction table: a single
// ticket-type purchase within a transaction. String fields use "" to mark an
// absent value; numeric and date fields use nil.
//
// The transaction-scoped totals (TotalPaymentTransaction,
// TotalTicketPurchasedTransaction) are computed once per transaction before
// the multi-value explode and repeated on every line of that transaction.
// They are never re-derived from the line-level columns.
type TicketLine struct {
	TransactionID   string     `json:"transaction_id"`
	TransactionDate *time.Time `json:"transaction_date,omitempty"`
	VisitDate       *time.Time `json:"visit_date,omitempty"`
	AttendeeName    string     `json:"attendee_name,omitempty"`
	AttendeeEmail   string     `json:"attendee_email,omitempty"`
	AttendeePhone   string     `json:"attendee_phone,omitempty"`
	TicketGroup     string     `json:"ticket_group,omitempty"`
	TicketDetail    string     `json:"ticket_detail,omitempty"`

	TicketPurchased *float64 `json:"ticket_purchased,omitempty"`
	TicketPrice     *float64 `json:"ticket_price,omitempty"`

	// Line-level totals, recomputed after the explode.
	TotalPayment        *float64 `json:"total_payment,omitempty"`
	TotalTicketPurchase *float64 `json:"total_ticket_purchase,omitempty"`

	// Transaction-level totals, computed before the explode.
	TotalPaymentTransaction         *float64 `json:"total_payment_transaction,omitempty"`
	TotalTicketPurchasedTransaction *float64 `json:"total_ticket_purchased_transaction,omitempty"`
}
