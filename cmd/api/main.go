package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos-service/internal/config"
	"pos-service/internal/domain"
	"pos-service/internal/events"
	"pos-service/internal/handlers"
	"pos-service/internal/repository"
	"pos-service/internal/service"
	"pos-service/pkg/logger"
	"pos-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting POS Service",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
	)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := gin.New()

	// CORS middleware (must be first to handle preflight requests)
	router.Use(middleware.CORSMiddleware())

	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))

	// Request ID middleware (must be early in the chain)
	router.Use(middleware.RequestIDMiddleware(appLogger))

	// Idempotency for write operations carrying an X-Request-ID
	requestIDStore := middleware.NewInMemoryRequestIDStore()
	router.Use(middleware.IdempotencyMiddleware(requestIDStore, appLogger, 5*time.Minute))

	// Error handler middleware
	router.Use(middleware.ErrorHandler(appLogger))

	// Store response middleware (for idempotency)
	router.Use(middleware.StoreResponseMiddleware(requestIDStore, appLogger, 5*time.Minute))

	// Initialize in-memory stores and the unit-of-work seam
	productRepo := repository.NewProductRepository()
	invoiceRepo := repository.NewInvoiceRepository()
	unitOfWork := repository.NewUnitOfWork()

	seedProducts(productRepo, appLogger)

	// Initialize event publisher (Kafka with in-memory fallback)
	var eventBus events.EventPublisher
	kafkaPublisher, err := events.NewKafkaEventPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Warn("Failed to initialize Kafka publisher, using in-memory fallback", zap.Error(err))
		eventBus = events.NewEventPublisher(appLogger)
	} else {
		defer kafkaPublisher.Close()
		eventBus = kafkaPublisher
	}

	// Construct the workflow and handlers explicitly, no DI container
	invoiceService := service.NewInvoiceService(appLogger, productRepo, invoiceRepo, unitOfWork, eventBus)
	invoiceHandler := handlers.NewInvoiceHandler(appLogger, invoiceService)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/health", invoiceHandler.HealthCheck)

		invoices := api.Group("/invoices")
		{
			invoices.POST("/create", invoiceHandler.CreateInvoice)
			invoices.GET("/:id", invoiceHandler.GetInvoice)
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting POS service",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited")
}

// seedProducts loads demo catalog data for local testing
func seedProducts(repo repository.ProductRepository, appLogger *zap.Logger) {
	products := []*domain.Product{
		domain.NewProduct(1, "Widget A", decimal.RequireFromString("9.99"), 10),
		domain.NewProduct(5, "Widget B", decimal.RequireFromString("4.50"), 5),
	}
	for _, p := range products {
		if err := repo.Save(context.Background(), p); err != nil {
			appLogger.Fatal("Failed to seed product", zap.Int("product_id", p.ID), zap.Error(err))
		}
		appLogger.Info("Seeded product",
			zap.Int("product_id", p.ID),
			zap.String("name", p.Name),
			zap.String("unit_price", p.UnitPrice.String()),
			zap.Int("stock", p.QuantityAvailable),
		)
	}
}
