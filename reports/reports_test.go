package reports

import (
	"testing"
	"time"

	"github.com/parkdash/models"
)

func fptr(v float64) *float64 { return &v }

func tptr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSummarize(t *testing.T) {
	lines := []models.TicketLine{
		{TicketPurchased: fptr(2), TotalPayment: fptr(100000)},
		{TicketPurchased: fptr(1), TotalPayment: fptr(30000)},
		{TicketPurchased: nil, TotalPayment: nil},
	}

	s := Summarize(lines)
	if s.TotalTickets != 3 {
		t.Fatalf("TotalTickets = %v, want 3", s.TotalTickets)
	}
	if s.TotalPayment != 130000 {
		t.Fatalf("TotalPayment = %v, want 130000", s.TotalPayment)
	}
	if s.FormattedPayment != "Rp 130,000" {
		t.Fatalf("FormattedPayment = %q", s.FormattedPayment)
	}
}

func TestPaymentPerUnit(t *testing.T) {
	lines := []models.TicketLine{
		{TicketGroup: "Dufan Ancol", TotalPayment: fptr(100000)},
		{TicketGroup: "Ancol", TotalPayment: fptr(50000)},
		{TicketGroup: "Dufan Ancol", TotalPayment: fptr(25000)},
		{TicketGroup: "", TotalPayment: fptr(999)},
	}

	got := PaymentPerUnit(lines)
	if len(got) != 2 {
		t.Fatalf("expected 2 units, got %d", len(got))
	}
	if got[0].Unit != "Ancol" || got[0].TotalPayment != 50000 {
		t.Fatalf("first unit = %+v", got[0])
	}
	if got[1].Unit != "Dufan Ancol" || got[1].TotalPayment != 125000 {
		t.Fatalf("second unit = %+v", got[1])
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1_500_000_000, "Rp 1.5M"},
		{2_500_000, "Rp 2.5jt"},
		{130000, "Rp 130,000"},
		{1000, "Rp 1,000"},
		{999, "Rp 999"},
		{0, "Rp 0"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.in); got != tc.want {
			t.Fatalf("FormatRupiah(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDailyTrend(t *testing.T) {
	lines := []models.TicketLine{
		{TransactionDate: tptr(2024, 3, 8), TicketGroup: "Ancol", TotalPayment: fptr(100000), TicketPurchased: fptr(2)},
		{TransactionDate: tptr(2024, 3, 8), TicketGroup: "Ancol", TotalPayment: fptr(50000), TicketPurchased: fptr(1)},
		{TransactionDate: tptr(2024, 3, 6), TicketGroup: "Dufan Ancol", TotalPayment: fptr(30000), TicketPurchased: fptr(1)},
		{TransactionDate: nil, TicketGroup: "Ancol", TotalPayment: fptr(999)},
	}

	got := DailyTrend(lines)
	if len(got) != 2 {
		t.Fatalf("expected 2 trend points, got %d", len(got))
	}

	// 2024-03-06 is a Wednesday, 2024-03-08 a Friday.
	first := got[0]
	if first.Unit != "Dufan Ancol" || first.Weekend {
		t.Fatalf("first point = %+v, want Wednesday Dufan Ancol", first)
	}
	second := got[1]
	if second.Unit != "Ancol" || !second.Weekend {
		t.Fatalf("second point = %+v, want Friday flagged as weekend", second)
	}
	if second.TotalPayment != 150000 || second.TicketsPurchased != 3 {
		t.Fatalf("aggregation wrong: %+v", second)
	}
}

func TestTopTickets(t *testing.T) {
	lines := []models.TicketLine{
		{TicketDetail: "A", TotalPayment: fptr(100000), TicketPurchased: fptr(1)},
		{TicketDetail: "B", TotalPayment: fptr(50000), TicketPurchased: fptr(10)},
		{TicketDetail: "C", TotalPayment: fptr(75000), TicketPurchased: fptr(2)},
		{TicketDetail: "A", TotalPayment: fptr(25000), TicketPurchased: fptr(1)},
	}

	byPayment := TopTicketsByPayment(lines, 2)
	if len(byPayment) != 2 {
		t.Fatalf("limit not applied: %d results", len(byPayment))
	}
	if byPayment[0].TicketDetail != "A" || byPayment[0].Value != 125000 {
		t.Fatalf("top by payment = %+v", byPayment[0])
	}
	if byPayment[0].Label != "Rp 125,000" {
		t.Fatalf("label = %q", byPayment[0].Label)
	}
	if byPayment[1].TicketDetail != "C" {
		t.Fatalf("second by payment = %+v", byPayment[1])
	}

	byQty := TopTicketsByPurchased(lines, 0)
	if len(byQty) != 3 {
		t.Fatalf("zero limit should return all: %d results", len(byQty))
	}
	if byQty[0].TicketDetail != "B" || byQty[0].Value != 10 {
		t.Fatalf("top by quantity = %+v", byQty[0])
	}
}

func TestFilterLines(t *testing.T) {
	lines := []models.TicketLine{
		{TransactionID: "T1", TransactionDate: tptr(2024, 3, 1), TicketGroup: "Ancol"},
		{TransactionID: "T2", TransactionDate: tptr(2024, 3, 5), TicketGroup: "Dufan Ancol"},
		{TransactionID: "T3", TransactionDate: tptr(2024, 3, 10), TicketGroup: "Ancol"},
		{TransactionID: "T4", TransactionDate: nil, TicketGroup: "Ancol"},
	}

	all := FilterLines(lines, nil, nil, "")
	if len(all) != 4 {
		t.Fatalf("unbounded filter should pass everything, got %d", len(all))
	}

	from, to := tptr(2024, 3, 1), tptr(2024, 3, 5)
	ranged := FilterLines(lines, from, to, "")
	if len(ranged) != 2 {
		t.Fatalf("inclusive range should keep T1 and T2, got %d", len(ranged))
	}

	unitOnly := FilterLines(lines, nil, nil, "Ancol")
	if len(unitOnly) != 3 {
		t.Fatalf("unit filter should keep 3 lines, got %d", len(unitOnly))
	}

	both := FilterLines(lines, from, nil, "Ancol")
	if len(both) != 2 {
		t.Fatalf("combined filter should drop the dateless line, got %d", len(both))
	}
}

func TestVisitHeatmap(t *testing.T) {
	lines := []models.TicketLine{
		{VisitDate: tptr(2024, 3, 5), TotalTicketPurchase: fptr(2)},
		{VisitDate: tptr(2024, 3, 5), TotalTicketPurchase: fptr(1)},
		{VisitDate: tptr(2024, 2, 28), TotalTicketPurchase: fptr(4)},
		{VisitDate: nil, TotalTicketPurchase: fptr(9)},
	}

	got := VisitHeatmap(lines)
	if len(got) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(got))
	}
	if got[0].Month != 2 || got[0].Day != 28 || got[0].Count != 4 {
		t.Fatalf("first cell = %+v", got[0])
	}
	if got[1].Month != 3 || got[1].MonthName != "March" || got[1].Count != 3 {
		t.Fatalf("second cell = %+v", got[1])
	}
}
