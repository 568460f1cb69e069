package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/parkdash/etl"
	"github.com/parkdash/store"
)

// UploadTransactions accepts a raw transaction CSV as multipart form file
// "file", runs the transaction ETL, and registers the cleaned dataset
func UploadTransactions(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing form file \"file\"")
	}

	file, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot open upload: "+err.Error())
	}
	defer file.Close()

	lines, err := etl.LoadAndClean(file)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	transactions := make(map[string]bool)
	for _, line := range lines {
		transactions[line.TransactionID] = true
	}

	ds := &store.Dataset{
		Kind:     store.KindTransactions,
		Filename: header.Filename,
		Lines:    lines,
	}
	id := store.Put(ds)
	log.Printf("Loaded transaction dataset %s: %d lines, %d transactions (%s)",
		id, len(lines), len(transactions), header.Filename)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"dataset_id":   id,
		"filename":     header.Filename,
		"ticket_lines": len(lines),
		"transactions": len(transactions),
	})
}

// UploadSurveys accepts a raw survey CSV and registers the cleaned responses
func UploadSurveys(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing form file \"file\"")
	}

	file, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cannot open upload: "+err.Error())
	}
	defer file.Close()

	responses, err := etl.LoadSurvey(file)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	ds := &store.Dataset{
		Kind:      store.KindSurveys,
		Filename:  header.Filename,
		Responses: responses,
	}
	id := store.Put(ds)
	log.Printf("Loaded survey dataset %s: %d responses (%s)", id, len(responses), header.Filename)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"dataset_id": id,
		"filename":   header.Filename,
		"responses":  len(responses),
	})
}

// DeleteDataset drops an uploaded dataset from the session store
func DeleteDataset(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := store.Get(id); !ok {
		return fiber.NewError(fiber.StatusNotFound, "dataset not found: "+id)
	}
	store.Remove(id)
	return c.SendStatus(fiber.StatusNoContent)
}
