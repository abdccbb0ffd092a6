package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "biltiflow/docs"
	"biltiflow/pkg/api"
	"biltiflow/pkg/config"
	"biltiflow/pkg/idempotency"
	memidem "biltiflow/pkg/idempotency/memory"
	redisidem "biltiflow/pkg/idempotency/redis"
	"biltiflow/pkg/logger"
	"biltiflow/pkg/order"
	"biltiflow/pkg/order/memory"
	"biltiflow/pkg/otel"
)

// @title Bilti API
// @version 1.0
// @description CRUD over bilti (waybill) orders
// @host localhost:8000
// @BasePath /
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		logger.New(os.Stderr, logger.LevelInfo, "biltiflow", nil).Error(context.Background(), "load config", "error", err)
		return err
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.New(os.Stderr, logger.LevelInfo, cfg.ServiceName, nil).Error(context.Background(), "parse log level", "error", err)
		return err
	}
	log := logger.New(os.Stdout, level, cfg.ServiceName, otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.ServiceName,
		Host:        cfg.OTELHost,
		Probability: cfg.TraceProbability,
	})
	if err != nil {
		log.Error(context.Background(), "init tracing", "error", err)
		return err
	}
	defer shutdown(context.Background())

	var idem idempotency.Store = memidem.NewStore()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
		idem = redisidem.New(redisClient)
		log.Info(context.Background(), "idempotency store", "backend", "redis", "addr", cfg.RedisAddr)
	}

	repo := memory.New(order.Seed()...)
	handler := api.NewRouter(
		api.NewHandler(repo, idem, cfg.IdempotencyTTL, log),
		api.RouterOptions{
			FrontendDir: cfg.FrontendDir,
			Tracer:      tp.Tracer(cfg.ServiceName),
			Log:         log,
		},
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info(context.Background(), "listening", "addr", cfg.HTTPAddr, "frontend", cfg.FrontendDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error(context.Background(), "server closed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(context.Background(), "shutdown", "error", err)
		return err
	}
	return nil
}
