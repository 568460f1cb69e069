package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parkdash/reports"
	"github.com/parkdash/store"
)

// DatasetSummary returns the headline metric cards and per-unit revenue for
// the filtered dataset
func DatasetSummary(c *fiber.Ctx) error {
	ds, err := getDataset(c, store.KindTransactions)
	if err != nil {
		return err
	}

	lines := reports.FilterLines(ds.Lines, queryDate(c, "date_from"), queryDate(c, "date_to"), c.Query("unit"))

	return c.JSON(fiber.Map{
		"summary":          reports.Summarize(lines),
		"payment_per_unit": reports.PaymentPerUnit(lines),
		"filters": fiber.Map{
			"date_from": c.Query("date_from"),
			"date_to":   c.Query("date_to"),
			"unit":      c.Query("unit"),
		},
	})
}

// TransactionTrend returns the daily payment/ticket trend per unit
func TransactionTrend(c *fiber.Ctx) error {
	ds, err := getDataset(c, store.KindTransactions)
	if err != nil {
		return err
	}

	lines := reports.FilterLines(ds.Lines, queryDate(c, "date_from"), queryDate(c, "date_to"), c.Query("unit"))

	return c.JSON(fiber.Map{
		"trend": reports.DailyTrend(lines),
	})
}

// TopTickets returns the top-N ticket details by payment and by quantity
func TopTickets(c *fiber.Ctx) error {
	ds, err := getDataset(c, store.KindTransactions)
	if err != nil {
		return err
	}

	n := c.QueryInt("limit", 5)
	lines := reports.FilterLines(ds.Lines, queryDate(c, "date_from"), queryDate(c, "date_to"), c.Query("unit"))

	return c.JSON(fiber.Map{
		"by_payment":   reports.TopTicketsByPayment(lines, n),
		"by_purchased": reports.TopTicketsByPurchased(lines, n),
	})
}

// VisitHeatmap returns ticket counts per visit calendar day
func VisitHeatmap(c *fiber.Ctx) error {
	ds, err := getDataset(c, store.KindTransactions)
	if err != nil {
		return err
	}

	lines := reports.FilterLines(ds.Lines, queryDate(c, "date_from"), queryDate(c, "date_to"), c.Query("unit"))

	return c.JSON(fiber.Map{
		"heatmap": reports.VisitHeatmap(lines),
	})
}
