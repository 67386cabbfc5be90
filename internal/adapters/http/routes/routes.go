package routes

import (
	"shwe-topup/internal/adapters/http/handlers"
	"shwe-topup/internal/adapters/http/middleware"
	"shwe-topup/internal/adapters/persistence/repositories"
	"shwe-topup/internal/config"
	"shwe-topup/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	creditRequestRepo := repositories.NewCreditRequestRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	creditService := services.NewCreditService(creditRequestRepo)
	orderService := services.NewOrderService(orderRepo, catalogRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	creditHandler := handlers.NewCreditHandler(creditService)
	orderHandler := handlers.NewOrderHandler(orderService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	faqHandler := handlers.NewFAQHandler()

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, userHandler, catalogHandler,
		creditHandler, orderHandler, dashboardHandler, faqHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	catalogHandler *handlers.CatalogHandler,
	creditHandler *handlers.CreditHandler,
	orderHandler *handlers.OrderHandler,
	dashboardHandler *handlers.DashboardHandler,
	faqHandler *handlers.FAQHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (public, rate limited)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Catalog routes (public)
	catalogRoutes := router.Group("/catalog")
	catalogRoutes.Get("/products", catalogHandler.ListProducts)
	catalogRoutes.Get("/categories", catalogHandler.ListCategories)
	catalogRoutes.Get("/operators", catalogHandler.ListOperators)

	// FAQ (public)
	router.Get("/faq", faqHandler.GetFAQ)

	// Credit routes (packages public, requests authenticated)
	creditRoutes := router.Group("/credits")
	creditRoutes.Get("/packages", creditHandler.ListPackages)
	creditRoutes.Post("/requests", middleware.AuthMiddleware(cfg), creditHandler.CreateRequest)
	creditRoutes.Get("/requests", middleware.AuthMiddleware(cfg), creditHandler.ListMyRequests)

	// Order routes (authenticated users)
	orderRoutes := router.Group("/orders")
	orderRoutes.Use(middleware.AuthMiddleware(cfg))
	orderRoutes.Post("/", orderHandler.Purchase)
	orderRoutes.Get("/my", orderHandler.ListMyOrders)

	// Dashboard routes (authenticated users)
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/home", dashboardHandler.GetHome)

	// Profile routes (authenticated users)
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	profileRoutes.Get("/", userHandler.GetProfile)
	profileRoutes.Put("/", userHandler.UpdateProfile)
	profileRoutes.Put("/password", userHandler.ChangePassword)

	// Admin routes (admin only)
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, userHandler, creditHandler, orderHandler, dashboardHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (5 req/min/IP against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupAdminRoutes configures admin-only routes
func setupAdminRoutes(
	router fiber.Router,
	userHandler *handlers.UserHandler,
	creditHandler *handlers.CreditHandler,
	orderHandler *handlers.OrderHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	router.Get("/dashboard", dashboardHandler.GetAdminDashboard)

	router.Get("/credit-requests", creditHandler.ListRequests)
	router.Put("/credit-requests/:id/approve", creditHandler.ApproveRequest)
	router.Put("/credit-requests/:id/deny", creditHandler.DenyRequest)

	router.Get("/orders", orderHandler.ListOrders)
	router.Put("/orders/:id/status", orderHandler.UpdateStatus)

	router.Get("/users", userHandler.ListUsers)
	router.Put("/users/:id/role", userHandler.SetRole)
	router.Put("/users/:id/ban", userHandler.SetBanned)
}
