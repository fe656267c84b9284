package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	httpAdapter "github.com/smartmoney/walletd/internal/adapter/http"
	"github.com/smartmoney/walletd/internal/adapter/http/handler"
	"github.com/smartmoney/walletd/internal/adapter/http/middleware"
	"github.com/smartmoney/walletd/internal/infrastructure/config"
	"github.com/smartmoney/walletd/internal/infrastructure/logger"
	"github.com/smartmoney/walletd/internal/infrastructure/metrics"
	"github.com/smartmoney/walletd/internal/infrastructure/notifier"
	"github.com/smartmoney/walletd/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	m := metrics.New()
	sessions := session.NewManager(notifier.NewLogNotifier(log), m, log, cfg.SessionTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SessionHandler:   handler.NewSessionHandler(sessions),
		WalletHandler:    handler.NewWalletHandler(sessions, m),
		InventoryHandler: handler.NewInventoryHandler(sessions, m),
		InvoiceHandler:   handler.NewInvoiceHandler(sessions, m),
		ReportHandler:    handler.NewReportHandler(sessions),
		HealthHandler:    handler.NewHealthHandler(sessions),
		Logger:           log,
		RateLimiter:      limiter,
		ServeMetrics:     true,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := sessions.Sweep(gctx, cfg.SessionSweepInterval)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		err := limiter.Run(gctx, cfg.RateLimitCleanupInterval)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}

	log.Info().Msg("server stopped")
}
