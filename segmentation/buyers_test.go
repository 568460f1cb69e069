package segmentation

import (
	"testing"

	"github.com/parkdash/models"
)

func buyerLine(txn, email, phone, detail string, txnTotal float64) models.TicketLine {
	return models.TicketLine{
		TransactionID:           txn,
		AttendeeEmail:           email,
		AttendeePhone:           phone,
		TicketDetail:            detail,
		TotalPaymentTransaction: &txnTotal,
	}
}

func TestSegmentBuyers(t *testing.T) {
	lines := []models.TicketLine{
		// Budi: two paid transactions, one of them multi-line.
		buyerLine("TRX001", "budi@gmail.com", "6281234567890", "Tiket Reguler", 130000),
		buyerLine("TRX001", "budi@gmail.com", "6281234567890", "Tiket Anak", 130000),
		buyerLine("TRX002", "budi@gmail.com", "6281234567890", "Tiket Reguler", 50000),
		// Siti: one paid transaction.
		buyerLine("TRX003", "siti@yahoo.com", "6281234567891", "Tiket Reguler", 20000),
		// Joko: only a promotional giveaway, excluded entirely.
		buyerLine("TRX004", "joko@gmail.com", "6281234567892", "Tiket Free Kendaraan Listrik - Mobil", 0),
	}

	seg := SegmentBuyers(lines, nil)

	if seg.UniqueBuyers != 2 {
		t.Fatalf("UniqueBuyers = %d, want 2", seg.UniqueBuyers)
	}
	if seg.RepeatBuyers != 1 || seg.OneTimeBuyers != 1 {
		t.Fatalf("repeat/one-time = %d/%d, want 1/1", seg.RepeatBuyers, seg.OneTimeBuyers)
	}
	if len(seg.Counts) != 2 {
		t.Fatalf("Counts length = %d, want 2", len(seg.Counts))
	}
	if seg.Counts[0].Email != "budi@gmail.com" || seg.Counts[0].Transactions != 2 {
		t.Fatalf("top buyer = %+v, want budi with 2 transactions", seg.Counts[0])
	}
	if seg.Counts[1].Email != "siti@yahoo.com" || seg.Counts[1].Transactions != 1 {
		t.Fatalf("second buyer = %+v, want siti with 1 transaction", seg.Counts[1])
	}
}

func TestSegmentBuyersMixedTransactionNotPromoOnly(t *testing.T) {
	// A transaction mixing a promo ticket with a paid one still counts.
	lines := []models.TicketLine{
		buyerLine("TRX001", "budi@gmail.com", "6281234567890", "Tiket Free Kendaraan Listrik - Motor", 50000),
		buyerLine("TRX001", "budi@gmail.com", "6281234567890", "Tiket Reguler", 50000),
	}

	seg := SegmentBuyers(lines, nil)
	if seg.UniqueBuyers != 1 || seg.OneTimeBuyers != 1 {
		t.Fatalf("mixed transaction should count: %+v", seg)
	}
}

func TestSegmentBuyersDropsIncompleteIdentity(t *testing.T) {
	lines := []models.TicketLine{
		buyerLine("TRX001", "budi@gmail.com", "", "Tiket Reguler", 50000),
		buyerLine("TRX002", "", "6281234567890", "Tiket Reguler", 50000),
		buyerLine("", "siti@yahoo.com", "6281234567891", "Tiket Reguler", 50000),
	}

	seg := SegmentBuyers(lines, nil)
	if seg.UniqueBuyers != 0 {
		t.Fatalf("rows missing part of the identity should drop, got %+v", seg)
	}
}

func TestSegmentBuyersEmpty(t *testing.T) {
	seg := SegmentBuyers(nil, nil)
	if seg.UniqueBuyers != 0 || len(seg.Counts) != 0 {
		t.Fatalf("empty input should yield zero segmentation: %+v", seg)
	}
}

func TestPromoOnlyTransactions(t *testing.T) {
	promo := models.DefaultPromoTickets()
	lines := []models.TicketLine{
		{TransactionID: "A", TicketDetail: "Tiket Free Kendaraan Listrik - Mobil"},
		{TransactionID: "A", TicketDetail: "Tiket Free Kendaraan Listrik - Motor"},
		{TransactionID: "B", TicketDetail: "Tiket Free Kendaraan Listrik - Mobil"},
		{TransactionID: "B", TicketDetail: "Tiket Reguler"},
		{TransactionID: "C", TicketDetail: "Tiket Reguler"},
	}

	got := promoOnlyTransactions(lines, promo)
	if !got["A"] {
		t.Fatalf("transaction A is promo-only, not flagged")
	}
	if got["B"] || got["C"] {
		t.Fatalf("transactions with paid tickets flagged as promo-only: %v", got)
	}
}
