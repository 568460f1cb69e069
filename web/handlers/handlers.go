package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parkdash/config"
	"github.com/parkdash/store"
)

var cfg *config.Config

// Setup wires the handler package to the loaded configuration. Must be
// called before any handler runs.
func Setup(c *config.Config) {
	cfg = c
}

// getDataset resolves the :id route parameter against the store, requiring
// the given kind.
func getDataset(c *fiber.Ctx, kind store.Kind) (*store.Dataset, error) {
	id := c.Params("id")
	ds, ok := store.Get(id)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "dataset not found: "+id)
	}
	if ds.Kind != kind {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"dataset "+id+" holds "+string(ds.Kind)+", not "+string(kind))
	}
	return ds, nil
}

// queryDate parses an optional yyyy-mm-dd query parameter. A missing or
// malformed value means no bound.
func queryDate(c *fiber.Ctx, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
