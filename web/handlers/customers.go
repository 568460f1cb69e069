package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/parkdash/extraction"
	"github.com/parkdash/models"
	"github.com/parkdash/reports"
	"github.com/parkdash/store"
)

// CustomerList returns the deduplicated customer table per canonical unit
func CustomerList(c *fiber.Ctx) error {
	ds, err := getDataset(c, store.KindTransactions)
	if err != nil {
		return err
	}

	customers := extraction.UniqueCustomers(ds.Lines, extraction.Options{
		DateFormat: cfg.Pipeline.VisitDateFormat,
	})

	counts := make(map[string]int, len(customers))
	for unit, records := range customers {
		counts[unit] = len(records)
	}

	return c.JSON(fiber.Map{
		"units":     counts,
		"customers": customers,
	})
}

// CustomerExport downloads the customer table as CSV: one unit when ?unit=
// is given, otherwise all units combined
func CustomerExport(c *fiber.Ctx) error {
	ds, err := getDataset(c, store.KindTransactions)
	if err != nil {
		return err
	}

	customers := extraction.UniqueCustomers(ds.Lines, extraction.Options{
		DateFormat: cfg.Pipeline.VisitDateFormat,
	})

	unit := c.Query("unit")
	var records []models.UnitCustomer
	filename := "all_units_customers.csv"
	if unit != "" {
		var ok bool
		records, ok = customers[unit]
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "unknown unit: "+unit)
		}
		filename = reports.UnitFilename(unit)
	} else {
		records = reports.CombineCustomers(customers, models.DefaultUnits())
	}

	var buf bytes.Buffer
	if err := reports.WriteCustomersCSV(&buf, records); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
