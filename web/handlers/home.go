package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parkdash/store"
)

// HomePage reports service status
func HomePage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service":     "parkdash",
		"environment": cfg.App.Environment,
		"datasets":    store.Count(),
	})
}
