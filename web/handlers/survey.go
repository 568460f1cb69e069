package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parkdash/reports"
	"github.com/parkdash/store"
)

// SurveySummary returns the customer-experience scorecards for an uploaded
// survey dataset
func SurveySummary(c *fiber.Ctx) error {
	ds, err := getDataset(c, store.KindSurveys)
	if err != nil {
		return err
	}
	return c.JSON(reports.SummarizeSurvey(ds.Responses))
}
