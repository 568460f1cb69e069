package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parkdash/models"
)

// customerHeader mirrors the column order of the customer extraction table.
var customerHeader = []string{
	"Attendee Name",
	"Attendee Email",
	"Attendee Phone",
	"Tgl Kunjungan (Semua)",
}

// WriteCustomersCSV writes one unit's customer records as CSV.
func WriteCustomersCSV(w io.Writer, customers []models.UnitCustomer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(customerHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range customers {
		record := []string{c.AttendeeName, c.AttendeeEmail, c.AttendeePhone, c.VisitDates}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CombineCustomers concatenates the per-unit records in canonical unit
// order, for the combined export file.
func CombineCustomers(customers map[string][]models.UnitCustomer, units []string) []models.UnitCustomer {
	var all []models.UnitCustomer
	for _, unit := range units {
		all = append(all, customers[unit]...)
	}
	return all
}

// ExportCustomerFiles writes one CSV per unit plus the combined
// all_units_customers.csv under dir, creating it as needed. Returns the
// written file paths.
func ExportCustomerFiles(dir string, customers map[string][]models.UnitCustomer, units []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	var written []string
	for _, unit := range units {
		path := filepath.Join(dir, UnitFilename(unit))
		if err := writeCustomerFile(path, customers[unit]); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	combined := filepath.Join(dir, "all_units_customers.csv")
	if err := writeCustomerFile(combined, CombineCustomers(customers, units)); err != nil {
		return written, err
	}
	return append(written, combined), nil
}

// UnitFilename is the export filename of one unit's customer CSV.
func UnitFilename(unit string) string {
	return strings.ReplaceAll(unit, " ", "_") + "_customers.csv"
}

func writeCustomerFile(path string, customers []models.UnitCustomer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := WriteCustomersCSV(file, customers); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
