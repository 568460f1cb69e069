package web

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/parkdash/config"
	"github.com/parkdash/web/handlers"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer(cfg *config.Config) *Server {
	handlers.Setup(cfg)

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Pipeline.MaxUploadMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// Log error details to console
			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Setup routes
	setupRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App) {
	// Service status
	app.Get("/", handlers.HomePage)

	api := app.Group("/api")

	// Uploads
	api.Post("/datasets/transactions", handlers.UploadTransactions)
	api.Post("/datasets/surveys", handlers.UploadSurveys)
	api.Delete("/datasets/:id", handlers.DeleteDataset)

	// Transaction dashboards
	datasets := api.Group("/datasets/:id")
	datasets.Get("/summary", handlers.DatasetSummary)
	datasets.Get("/trend", handlers.TransactionTrend)
	datasets.Get("/top-tickets", handlers.TopTickets)
	datasets.Get("/heatmap", handlers.VisitHeatmap)

	// Customer analytics
	datasets.Get("/segmentation", handlers.BuyerSegmentationReport)
	datasets.Get("/rfm", handlers.RFMReport)
	datasets.Get("/customers", handlers.CustomerList)
	datasets.Get("/customers/export", handlers.CustomerExport)

	// Survey dashboards
	datasets.Get("/survey-summary", handlers.SurveySummary)
}
