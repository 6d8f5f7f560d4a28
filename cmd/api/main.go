package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ariefcatur/go-inmem-shop/internal/cart"
	"github.com/ariefcatur/go-inmem-shop/internal/catalog"
	"github.com/ariefcatur/go-inmem-shop/internal/config"
	"github.com/ariefcatur/go-inmem-shop/internal/httpx"
	kafkax "github.com/ariefcatur/go-inmem-shop/internal/kafka"
	"github.com/ariefcatur/go-inmem-shop/internal/obs"
	"github.com/ariefcatur/go-inmem-shop/internal/orders"
	"github.com/ariefcatur/go-inmem-shop/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("service stopped")
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	// Stores
	var seed []catalog.Product
	if cfg.SeedCatalog {
		seed = catalog.DemoProducts()
	}
	cat := catalog.New(seed...)
	carts := cart.NewStore(cat)
	ledger := orders.NewLedger(cat, carts)

	api := &httpx.API{
		Catalog: cat,
		Carts:   carts,
		Orders:  ledger,
		Service: cfg.ServiceName,
		Log:     logger,
	}

	// Redis (optional)
	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		if err := redisx.Ping(ctx, rdb); err != nil {
			logger.Warn("redis unreachable, idempotency keys may fail", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		api.Idem = redisx.NewCheckoutKeys(rdb)
	}

	// Kafka producer (optional)
	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, 1024, logger)
		prod.Start()
		api.Events = prod
	}

	router := httpx.NewRouter(logger, httpx.RouterOptions{
		RequestTimeout: cfg.RequestTimeout,
		CORSOrigins:    cfg.CORSOrigins,
	})
	api.Register(router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.Int("products", cat.Len()),
			zap.Bool("redis", api.Idem != nil),
			zap.Bool("kafka", prod != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(sctx)
		if prod != nil {
			// flush queued events after the last request has finished
			if perr := prod.Close(sctx); perr != nil {
				logger.Warn("event flush incomplete", zap.Error(perr))
			}
		}
		return err
	})
	return g.Wait()
}
