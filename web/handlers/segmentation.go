package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/parkdash/reports"
	"github.com/parkdash/segmentation"
	"github.com/parkdash/store"
)

// BuyerSegmentationReport returns the one-time vs repeat buyer split for
// the filtered dataset
func BuyerSegmentationReport(c *fiber.Ctx) error {
	ds, err := getDataset(c, store.KindTransactions)
	if err != nil {
		return err
	}

	lines := reports.FilterLines(ds.Lines, queryDate(c, "date_from"), queryDate(c, "date_to"), c.Query("unit"))
	return c.JSON(segmentation.SegmentBuyers(lines, nil))
}

// RFMReport returns per-customer RFM profiles and the segment distribution
func RFMReport(c *fiber.Ctx) error {
	ds, err := getDataset(c, store.KindTransactions)
	if err != nil {
		return err
	}

	lines := reports.FilterLines(ds.Lines, queryDate(c, "date_from"), queryDate(c, "date_to"), c.Query("unit"))

	profiles, err := segmentation.ScoreRFM(lines, nil)
	if err != nil {
		if errors.Is(err, segmentation.ErrInsufficientDistinct) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return err
	}

	distribution := make(map[string]int)
	for _, p := range profiles {
		distribution[p.Segment]++
	}

	return c.JSON(fiber.Map{
		"customers":    len(profiles),
		"profiles":     profiles,
		"distribution": distribution,
	})
}
