package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/parkdash/config"
	"github.com/parkdash/etl"
	"github.com/parkdash/extraction"
	"github.com/parkdash/models"
	"github.com/parkdash/reports"
)

func main() {
	// Command line flags
	var (
		input  = flag.String("input", "", "Transaction CSV export to process")
		outDir = flag.String("out-dir", "", "Output directory (default EXPORT_DIR)")
		format = flag.String("date-format", "", "Visit date layout (default VISIT_DATE_FORMAT)")
		help   = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help || *input == "" {
		showHelp()
		if *input == "" && !*help {
			os.Exit(1)
		}
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *outDir == "" {
		*outDir = cfg.Export.Dir
	}
	if *format == "" {
		*format = cfg.Pipeline.VisitDateFormat
	}

	file, err := os.Open(*input)
	if err != nil {
		log.Fatalf("❌ Failed to open input: %v", err)
	}
	defer file.Close()

	fmt.Printf("🚀 Extracting customers from %s\n", *input)

	lines, err := etl.LoadAndClean(file)
	if err != nil {
		log.Fatalf("❌ Failed to clean transactions: %v", err)
	}
	fmt.Printf("📊 Cleaned %d ticket lines\n", len(lines))

	units := models.DefaultUnits()
	customers := extraction.UniqueCustomers(lines, extraction.Options{DateFormat: *format})
	for _, unit := range units {
		fmt.Printf("   %-24s %d unique customers\n", unit, len(customers[unit]))
	}

	written, err := reports.ExportCustomerFiles(*outDir, customers, units)
	if err != nil {
		log.Fatalf("❌ Failed to export: %v", err)
	}
	for _, path := range written {
		fmt.Printf("✅ Wrote %s\n", path)
	}
}

func showHelp() {
	log.Print(`
Customer Data Extraction Tool

Usage:
  go run cmd/extract/main.go -input transactions.csv [options]

Options:
  -input        Transaction CSV export to process (required)
  -out-dir      Output directory (default: EXPORT_DIR, ./exports)
  -date-format  Go layout for joined visit dates (default: 02/01/2006)
  -help         Show this help message

Writes one customers CSV per business unit plus a combined
all_units_customers.csv.
`)
}
