package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cratespace/cratespace/kafka"
	"github.com/cratespace/cratespace/pkg/logger"
	"github.com/cratespace/cratespace/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "cratespace-alerts")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

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

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "cratespace-alerts")

	consumer, err := kafka.NewConsumer(brokers, groupID, []string{kafka.TopicLowStock})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeLowStock, handleLowStock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Consumer stopped")
		}
	}()

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("topic", kafka.TopicLowStock).
		Msg("Low-stock alert worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down alert worker")
	cancel()
}

// handleLowStock logs a reorder notice for each low-stock event. A real
// deployment would fan this out to email or a ticketing system.
func handleLowStock(ctx context.Context, payload []byte) error {
	var event kafka.LowStockEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}

	logger.Warn(ctx).
		Str("item_name", event.ItemName).
		Int("current_quantity", event.CurrentQuantity).
		Int("minimum_quantity", event.MinimumQuantity).
		Msg("Reorder needed: item is at or below its minimum stock level")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
