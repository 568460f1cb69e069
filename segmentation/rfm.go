package segmentation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/parkdash/models"
)

// RFM segment labels, from strongest to weakest composite score.
const (
	SegmentLoyal          = "Loyal Customer"
	SegmentPotentialLoyal = "Potential Loyalist"
	SegmentNeedsAttention = "Needs Attention"
	SegmentLost           = "Lost"
)

// Hard failures of the RFM computation. Everything else degrades to an
// empty result.
var (
	ErrNoMonetary = errors.New("cannot compute Monetary: no payment values in dataset")
	ErrNoRecency  = errors.New("cannot compute Recency: no transaction dates in dataset")
)

// RFMProfile scores one customer. Recency counts days since the customer's
// last transaction, measured from one day past the newest transaction in
// the dataset; Frequency counts distinct transactions; Monetary sums line
// payments. Each dimension is bucketed 1..5, the composite is their sum.
type RFMProfile struct {
	Email     string  `json:"email"`
	Recency   int     `json:"recency"`
	Frequency int     `json:"frequency"`
	Monetary  float64 `json:"monetary"`
	RScore    int     `json:"r_score"`
	FScore    int     `json:"f_score"`
	MScore    int     `json:"m_score"`
	RFMScore  int     `json:"rfm_score"`
	Segment   string  `json:"segment"`
}

// ScoreRFM computes RFM profiles per customer email. A customer with no
// non-promo line at all is excluded entirely; everyone else keeps all of
// their lines, promo included. A nil promoTickets falls back to the
// production promo list.
//
// Fewer than five distinct values in a score dimension fails with
// ErrInsufficientDistinct; there is no silent fallback.
func ScoreRFM(lines []models.TicketLine, promoTickets []string) ([]RFMProfile, error) {
	if promoTickets == nil {
		promoTickets = models.DefaultPromoTickets()
	}
	promo := make(map[string]bool, len(promoTickets))
	for _, p := range promoTickets {
		promo[p] = true
	}

	keep := make(map[string]bool)
	for _, line := range lines {
		if line.AttendeeEmail != "" && !promo[line.TicketDetail] {
			keep[line.AttendeeEmail] = true
		}
	}

	filtered := make([]models.TicketLine, 0, len(lines))
	for _, line := range lines {
		if keep[line.AttendeeEmail] {
			filtered = append(filtered, line)
		}
	}
	if len(filtered) == 0 {
		return []RFMProfile{}, nil
	}

	var maxDate *time.Time
	hasPayment := false
	for _, line := range filtered {
		if line.TransactionDate != nil && (maxDate == nil || line.TransactionDate.After(*maxDate)) {
			maxDate = line.TransactionDate
		}
		if line.TotalPayment != nil {
			hasPayment = true
		}
	}
	if !hasPayment {
		return nil, ErrNoMonetary
	}
	if maxDate == nil {
		return nil, ErrNoRecency
	}
	reference := maxDate.Add(24 * time.Hour)

	type accum struct {
		last     time.Time
		txns     map[string]bool
		monetary float64
	}
	byEmail := make(map[string]*accum)
	for _, line := range filtered {
		a, ok := byEmail[line.AttendeeEmail]
		if !ok {
			a = &accum{txns: make(map[string]bool)}
			byEmail[line.AttendeeEmail] = a
		}
		if line.TransactionDate != nil && line.TransactionDate.After(a.last) {
			a.last = *line.TransactionDate
		}
		a.txns[line.TransactionID] = true
		if line.TotalPayment != nil {
			a.monetary += *line.TotalPayment
		}
	}

	emails := make([]string, 0, len(byEmail))
	for email := range byEmail {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	profiles := make([]RFMProfile, len(emails))
	recency := make([]float64, len(emails))
	frequency := make([]float64, len(emails))
	monetary := make([]float64, len(emails))
	for i, email := range emails {
		a := byEmail[email]
		days := int(reference.Sub(a.last).Hours() / 24)
		profiles[i] = RFMProfile{
			Email:     email,
			Recency:   days,
			Frequency: len(a.txns),
			Monetary:  a.monetary,
		}
		recency[i] = float64(days)
		frequency[i] = float64(len(a.txns))
		monetary[i] = a.monetary
	}

	// Recency is cut on raw values, most recent scoring highest. Frequency
	// and Monetary are rank-transformed first so ties split into even
	// buckets, higher values scoring higher.
	rScores, err := quantileCut(recency, []int{5, 4, 3, 2, 1})
	if err != nil {
		return nil, fmt.Errorf("recency: %w", err)
	}
	fScores, err := quantileCut(rankFirst(frequency), []int{1, 2, 3, 4, 5})
	if err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}
	mScores, err := quantileCut(rankFirst(monetary), []int{1, 2, 3, 4, 5})
	if err != nil {
		return nil, fmt.Errorf("monetary: %w", err)
	}

	for i := range profiles {
		profiles[i].RScore = rScores[i]
		profiles[i].FScore = fScores[i]
		profiles[i].MScore = mScores[i]
		profiles[i].RFMScore = rScores[i] + fScores[i] + mScores[i]
		profiles[i].Segment = segmentFor(profiles[i].RFMScore)
	}
	return profiles, nil
}

// segmentFor maps a composite score (range 3..15) to its segment; the
// thresholds are evaluated top down, first match wins.
func segmentFor(score int) string {
	switch {
	case score >= 12:
		return SegmentLoyal
	case score >= 9:
		return SegmentPotentialLoyal
	case score >= 6:
		return SegmentNeedsAttention
	default:
		return SegmentLost
	}
}
