// File: shipquote/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipquote/config"
	"shipquote/cron"
	"shipquote/database"
	shipmentRepo "shipquote/database/repository/shipment"
	"shipquote/handlers"
	"shipquote/middleware"
	"shipquote/routes"
	"shipquote/services/pricing"
	"shipquote/services/quote"
	"shipquote/services/shipment"
	"shipquote/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitQuoteCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// The aggregation core: carriers, fingerprint cache, orchestrator.
	providers := []pricing.Provider{
		pricing.NewVelocityExpress(),
		pricing.NewTerraFreight(),
		pricing.NewOceanicCargo(),
	}
	cacheTTL := time.Duration(config.AppConfig.QuoteCacheTTLMinutes) * time.Minute
	quoteCache := quote.NewRedisQuoteCache(utils.GetQuoteCacheClient(), 2*cacheTTL)
	aggregator := &quote.Aggregator{
		Providers:     providers,
		Cache:         quoteCache,
		CacheTTL:      cacheTTL,
		CallTimeout:   time.Duration(config.AppConfig.ProviderTimeoutSeconds) * time.Second,
		SurchargeRate: config.AppConfig.FragileSurchargeRate,
		Logger:        logger,
	}

	// Shipment lifecycle: Mongo persistence, Stripe capture, asynq publishing.
	shipRepo := shipmentRepo.NewMongoShipmentRepo()
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()

	shipmentService := &shipment.DefaultShipmentService{
		Repo:     shipRepo,
		Payments: shipment.NewStripePaymentHandler(logger),
		Tasks:    taskClient,
		Logger:   logger,
	}

	handlerBundle := &routes.HandlerBundle{
		Quote:    handlers.NewQuoteHandler(aggregator, logger),
		Shipment: handlers.NewShipmentHandler(shipmentService, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Consume booked-shipment notification tasks in background.
	cron.InitShipmentWorker(logger)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
