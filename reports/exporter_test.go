package reports

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parkdash/models"
)

func TestWriteCustomersCSV(t *testing.T) {
	customers := []models.UnitCustomer{
		{AttendeeName: "Budi", AttendeeEmail: "budi@gmail.com", AttendeePhone: "6281234567890", VisitDates: "01/03/2024;05/03/2024"},
	}

	var buf bytes.Buffer
	if err := WriteCustomersCSV(&buf, customers); err != nil {
		t.Fatalf("WriteCustomersCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 record, got %d lines", len(lines))
	}
	if lines[0] != "Attendee Name,Attendee Email,Attendee Phone,Tgl Kunjungan (Semua)" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "Budi,budi@gmail.com,6281234567890,01/03/2024;05/03/2024" {
		t.Fatalf("record = %q", lines[1])
	}
}

func TestUnitFilename(t *testing.T) {
	if got := UnitFilename("Sea World Ancol"); got != "Sea_World_Ancol_customers.csv" {
		t.Fatalf("UnitFilename = %q", got)
	}
}

func TestCombineCustomers(t *testing.T) {
	customers := map[string][]models.UnitCustomer{
		"B": {{AttendeeEmail: "b@x.com"}},
		"A": {{AttendeeEmail: "a1@x.com"}, {AttendeeEmail: "a2@x.com"}},
	}

	all := CombineCustomers(customers, []string{"A", "B"})
	if len(all) != 3 {
		t.Fatalf("expected 3 combined records, got %d", len(all))
	}
	if all[0].AttendeeEmail != "a1@x.com" || all[2].AttendeeEmail != "b@x.com" {
		t.Fatalf("combined order wrong: %+v", all)
	}
}

func TestExportCustomerFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	units := []string{"Ancol", "Dufan Ancol"}
	customers := map[string][]models.UnitCustomer{
		"Ancol": {{AttendeeName: "Budi", AttendeeEmail: "budi@gmail.com"}},
	}

	written, err := ExportCustomerFiles(dir, customers, units)
	if err != nil {
		t.Fatalf("ExportCustomerFiles: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 2 unit files plus the combined file, got %d", len(written))
	}

	for _, path := range written {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("missing export file %s: %v", path, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "Dufan_Ancol_customers.csv"))
	if err != nil {
		t.Fatalf("read empty-unit file: %v", err)
	}
	if strings.TrimSpace(string(data)) != "Attendee Name,Attendee Email,Attendee Phone,Tgl Kunjungan (Semua)" {
		t.Fatalf("empty unit file should be header-only, got %q", string(data))
	}

	data, err = os.ReadFile(filepath.Join(dir, "all_units_customers.csv"))
	if err != nil {
		t.Fatalf("read combined file: %v", err)
	}
	if !strings.Contains(string(data), "budi@gmail.com") {
		t.Fatalf("combined file missing records: %q", string(data))
	}
}
