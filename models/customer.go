package models

// UnitCustomer represents one deduplicated customer of a business unit.
// Customers are keyed by the normalized (email, phone) pair; either component
// may be empty but never both. VisitDates holds the distinct visit dates of
// the customer, sorted ascending and joined with ";".
type UnitCustomer struct {
	AttendeeName  string `json:"attendee_name"`
	AttendeeEmail string `json:"attendee_email,omitempty"`
	AttendeePhone string `json:"attendee_phone,omitempty"`
	VisitDates    string `json:"visit_dates"`
}
