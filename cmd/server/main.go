package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/cratespace/cratespace/internal/dashboard"
	"github.com/cratespace/cratespace/internal/inventory"
	invhttp "github.com/cratespace/cratespace/internal/inventory/delivery/http"
	invdomain "github.com/cratespace/cratespace/internal/inventory/domain"
	invquery "github.com/cratespace/cratespace/internal/inventory/usecase/query"
	"github.com/cratespace/cratespace/internal/order"
	orderdomain "github.com/cratespace/cratespace/internal/order/domain"
	orderquery "github.com/cratespace/cratespace/internal/order/usecase/query"
	"github.com/cratespace/cratespace/kafka"
	"github.com/cratespace/cratespace/pkg/database"
	"github.com/cratespace/cratespace/pkg/health"
	"github.com/cratespace/cratespace/pkg/logger"
	"github.com/cratespace/cratespace/pkg/middleware"
	"github.com/cratespace/cratespace/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "cratespace")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting CrateSpace")

	// Tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// Database
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "cratespace"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&invdomain.Item{}, &orderdomain.Order{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if err := database.Seed(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed database")
	}

	logger.Logger.Info().Msg("Database initialized")

	// Kafka publisher (optional)
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Redis cache for the dashboard (optional)
	var cache *redis.Client
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		cache = redis.NewClient(&redis.Options{Addr: addr})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Warn().Err(err).Msg("Redis unavailable, dashboard cache disabled")
			cache = nil
		}
	}

	// Handlers via Wire DI
	inventoryHandler, err := inventory.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}

	orderHandler, err := order.InitializeHTTPHandler(db, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}

	// Dashboard (manual DI over the shared repositories)
	itemRepo := inventory.ProvideItemRepository(db)
	orderRepo := order.ProvideOrderRepository(db)
	dashboardHandler := dashboard.NewHandler(
		invquery.NewItemCountHandler(itemRepo),
		invquery.NewLowStockAlertsHandler(itemRepo),
		invquery.NewInventoryValueHandler(itemRepo),
		orderquery.NewPendingCountHandler(orderRepo),
		orderquery.NewRecentOrdersHandler(orderRepo),
		cache,
	)

	// Router
	router := mux.NewRouter()
	middleware.Register(router, 30*time.Second)

	inventoryHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	dashboardHandler.RegisterRoutes(router)

	// The health probe uses its own plain connection so a saturated GORM
	// pool cannot fail the liveness check
	healthDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer healthDB.Close()

	checker := health.NewChecker(healthDB)
	router.HandleFunc("/health", checker.Handler()).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())
	invhttp.RegisterSwaggerDocs(router, httpSwagger.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
