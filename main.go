package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/parkdash/config"
	"github.com/parkdash/store"
	"github.com/parkdash/web"
)

func main() {
	// Command line flags
	var (
		port = flag.String("port", "", "Override APP_PORT for this run")
		help = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != "" {
		cfg.App.Port = *port
	}

	// Initialize the in-memory dataset store
	store.Initialize()

	// Create and start web server
	server := web.NewServer(cfg)

	// Start server in a goroutine
	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func showHelp() {
	log.Print(`
Park Analytics Dashboard Server

Usage:
  go run main.go [options]

Options:
  -port    Override the APP_PORT environment variable
  -help    Show this help message

Environment:
  APP_PORT           Listen port (default 8080)
  APP_ENV            Environment name (default development)
  VISIT_DATE_FORMAT  Go layout for joined visit dates (default 02/01/2006)
  MAX_UPLOAD_MB      Upload size cap in MB (default 32)
  EXPORT_DIR         Output folder for CSV exports (default exports)

For offline customer extraction, use:
  go run cmd/extract/main.go -input transactions.csv
`)
}
