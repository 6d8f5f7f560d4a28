package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-inmem-shop/internal/config"
	kafkax "github.com/ariefcatur/go-inmem-shop/internal/kafka"
	"github.com/ariefcatur/go-inmem-shop/internal/notify"
	"github.com/ariefcatur/go-inmem-shop/internal/obs"
	"github.com/ariefcatur/go-inmem-shop/internal/orders"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if len(cfg.KafkaBrokers) == 0 {
		logger.Fatal("KAFKA_BROKERS is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	topics := []string{orders.TopicOrderPlaced, orders.TopicOrderStatusChanged}
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.OrderEventsGroup, topics, cfg.OrderEventsWorkers, logger)
	h := notify.NewHandler(logger)

	logger.Info("order events consumer started",
		zap.String("group", cfg.OrderEventsGroup),
		zap.Strings("topics", topics),
		zap.Int("workers", cfg.OrderEventsWorkers),
	)
	if err := cons.Start(ctx, h.Handle); err != nil {
		logger.Error("consumer exit", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("consumer stopped")
}
