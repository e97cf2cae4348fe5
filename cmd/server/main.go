package main

import (
	"net/http"
	"os"
	"time"

	"order_tracker/internal/config"
	"order_tracker/internal/database"
	"order_tracker/internal/handlers"
	"order_tracker/internal/middleware"
	"order_tracker/internal/repository"
	"order_tracker/internal/services"
	"order_tracker/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	settingsService := services.NewSettingsService(settingsRepo)
	sequenceService := services.NewSequenceService(orderRepo, customerRepo, settingsService)
	orderService := services.NewOrderService(orderRepo, sequenceService)
	customerService := services.NewCustomerService(customerRepo, orderRepo, sequenceService)
	authService := services.NewAuthService(
		userRepo,
		customerRepo,
		cfg.JWTSecret,
		time.Duration(cfg.AdminTokenHours)*time.Hour,
		time.Duration(cfg.CustomerTokenDays)*24*time.Hour,
	)

	// Realtime broadcaster, one per process
	hub := ws.NewHub()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService, hub)
	customerHandler := handlers.NewCustomerHandler(customerService, authService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	requireAdmin := middleware.RequireAdmin(authService)
	requireCustomer := middleware.RequireCustomer(authService)

	// Setup routes
	router := gin.Default()

	router.GET("/ws", hub.HandleConnection)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
		})

		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/setup", authHandler.Setup)

		api.GET("/orders/track", orderHandler.Track)
		api.GET("/orders", requireAdmin, orderHandler.List)
		api.GET("/orders/search/:query", requireAdmin, orderHandler.Search)
		api.GET("/orders/:id", requireAdmin, orderHandler.Get)
		api.POST("/orders", requireAdmin, orderHandler.Create)
		api.PUT("/orders/:id", requireAdmin, orderHandler.Update)
		api.DELETE("/orders/:id", requireAdmin, orderHandler.Delete)

		api.POST("/customer/login", customerHandler.Login)
		api.GET("/customer/profile", requireCustomer, customerHandler.Profile)
		api.GET("/customer/orders", requireCustomer, customerHandler.MyOrders)
		api.PUT("/customer/change-password", requireCustomer, customerHandler.ChangePassword)

		api.POST("/customers", requireAdmin, customerHandler.Create)
		api.GET("/customers", requireAdmin, customerHandler.List)
		api.GET("/customers/:id/orders", requireAdmin, customerHandler.Orders)
		api.PUT("/customers/:id", requireAdmin, customerHandler.Update)
		api.DELETE("/customers/:id", requireAdmin, customerHandler.Delete)

		api.GET("/settings", requireAdmin, settingsHandler.Get)
		api.PUT("/settings", requireAdmin, settingsHandler.Update)
		api.GET("/settings/public", settingsHandler.Public)
	}

	// Start server
	log.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
