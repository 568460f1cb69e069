// Package extraction builds the per-unit unique customer table from cleaned
// ticket lines: contacts are normalized, promotional tickets are excluded,
// and rows collapse to one record per (email, phone) pair per unit.
package extraction

import (
	"sort"
	"time"

	"github.com/parkdash/contact"
	"github.com/parkdash/models"
)

// Options configures an extraction run. Zero-value fields fall back to the
// production reference tables.
type Options struct {
	// Units is the canonical unit list, in output order. Every listed unit
	// appears in the result, empty when it has no qualifying rows; unit
	// names in the data that are not listed are ignored.
	Units []string
	// UnitSynonyms rewrites production unit names to canonical ones before
	// grouping. An empty map disables the rewrite.
	UnitSynonyms map[string]string
	// PromoTickets lists ticket details excluded from extraction.
	PromoTickets []string
	// DateFormat is the Go layout for the joined visit dates.
	DateFormat string
	// Contacts normalizes the email and phone columns.
	Contacts *contact.Normalizer
}

// DefaultDateFormat renders visit dates as dd/mm/yyyy.
const DefaultDateFormat = "02/01/2006"

func (o Options) withDefaults() Options {
	if o.Units == nil {
		o.Units = models.DefaultUnits()
	}
	if o.UnitSynonyms == nil {
		o.UnitSynonyms = models.DefaultUnitSynonyms()
	}
	if o.PromoTickets == nil {
		o.PromoTickets = models.DefaultPromoTickets()
	}
	if o.DateFormat == "" {
		o.DateFormat = DefaultDateFormat
	}
	if o.Contacts == nil {
		o.Contacts = contact.NewNormalizer()
	}
	return o
}

type identity struct {
	email string
	phone string
}

type group struct {
	name   string
	visits []time.Time
}

// UniqueCustomers aggregates ticket lines to one customer record per
// (normalized email, normalized phone) pair per canonical unit. Rows with
// neither contact surviving normalization are dropped; the attendee name is
// the latest one observed by visit date; visit dates are deduplicated,
// sorted, and ";"-joined. Records within a unit are returned sorted by
// (email, phone); callers must not read meaning into that order.
func UniqueCustomers(lines []models.TicketLine, opts Options) map[string][]models.UnitCustomer {
	opts = opts.withDefaults()

	promo := make(map[string]bool, len(opts.PromoTickets))
	for _, p := range opts.PromoTickets {
		promo[p] = true
	}

	cleaned := make([]models.TicketLine, len(lines))
	copy(cleaned, lines)
	for i := range cleaned {
		if canonical, ok := opts.UnitSynonyms[cleaned[i].TicketGroup]; ok {
			cleaned[i].TicketGroup = canonical
		}
		cleaned[i].AttendeeEmail = opts.Contacts.CleanEmail(cleaned[i].AttendeeEmail)
		cleaned[i].AttendeePhone = opts.Contacts.CleanPhone(cleaned[i].AttendeePhone)
	}

	results := make(map[string][]models.UnitCustomer, len(opts.Units))
	for _, unit := range opts.Units {
		var rows []models.TicketLine
		for _, line := range cleaned {
			if line.TicketGroup != unit || promo[line.TicketDetail] {
				continue
			}
			if line.AttendeeEmail == "" && line.AttendeePhone == "" {
				continue
			}
			rows = append(rows, line)
		}

		// Ascending visit-date order decides which attendee name wins;
		// rows without a visit date sort last.
		sort.SliceStable(rows, func(a, b int) bool {
			da, db := rows[a].VisitDate, rows[b].VisitDate
			if da == nil {
				return false
			}
			if db == nil {
				return true
			}
			return da.Before(*db)
		})

		groups := make(map[identity]*group)
		order := make([]identity, 0)
		for _, row := range rows {
			key := identity{email: row.AttendeeEmail, phone: row.AttendeePhone}
			g, ok := groups[key]
			if !ok {
				g = &group{}
				groups[key] = g
				order = append(order, key)
			}
			if row.AttendeeName != "" {
				g.name = row.AttendeeName
			}
			if row.VisitDate != nil {
				g.visits = append(g.visits, *row.VisitDate)
			}
		}

		sort.Slice(order, func(a, b int) bool {
			if order[a].email != order[b].email {
				return order[a].email < order[b].email
			}
			return order[a].phone < order[b].phone
		})

		records := make([]models.UnitCustomer, 0, len(order))
		for _, key := range order {
			g := groups[key]
			records = append(records, models.UnitCustomer{
				AttendeeName:  g.name,
				AttendeeEmail: key.email,
				AttendeePhone: key.phone,
				VisitDates:    joinVisitDates(g.visits, opts.DateFormat),
			})
		}
		results[unit] = records
	}
	return results
}

// joinVisitDates formats the distinct calendar dates ascending, joined with
// ";". Time-of-day components are ignored.
func joinVisitDates(visits []time.Time, layout string) string {
	seen := make(map[string]time.Time, len(visits))
	for _, v := range visits {
		day := time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		seen[day.Format("2006-01-02")] = day
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(a, b int) bool { return days[a].Before(days[b]) })

	out := ""
	for i, d := range days {
		if i > 0 {
			out += ";"
		}
		out += d.Format(layout)
	}
	return out
}
