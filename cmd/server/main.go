package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"shwe-topup/internal/adapters/http/middleware"
	"shwe-topup/internal/adapters/http/routes"
	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/adapters/persistence/repositories"
	"shwe-topup/internal/config"
	"shwe-topup/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "shwe-topup/docs" // Swagger docs
)

// @title Shwe Top-Up API
// @version 1.0
// @description Telecom credit marketplace API for the Shwe Top-Up storefront
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@shwetopup.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.shwetopup.com
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed admin account, operators, categories and sample products
	if err := config.SeedData(db, cfg); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Start Cron Service (token purge 03:00, pending queue reminder 08:30)
	cronService := services.NewCronService(
		repositories.NewRefreshTokenRepository(db),
		repositories.NewCreditRequestRepository(db),
	)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Shwe Top-Up API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
