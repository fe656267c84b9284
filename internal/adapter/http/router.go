package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/smartmoney/walletd/internal/adapter/http/handler"
	"github.com/smartmoney/walletd/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SessionHandler   *handler.SessionHandler
	WalletHandler    *handler.WalletHandler
	InventoryHandler *handler.InventoryHandler
	InvoiceHandler   *handler.InvoiceHandler
	ReportHandler    *handler.ReportHandler
	HealthHandler    *handler.HealthHandler

	Logger       zerolog.Logger
	RateLimiter  *middleware.RateLimiter
	ServeMetrics bool
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.NewRecoveryMiddleware(cfg.Logger).Wrap)
	if cfg.ServeMetrics {
		r.Use(middleware.Metrics)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.ServeMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", cfg.SessionHandler.Open)

		r.Route("/sessions/{sid}", func(r chi.Router) {
			r.Get("/", cfg.SessionHandler.Snapshot)

			// Money actions
			r.Post("/deposits", cfg.WalletHandler.Deposit)
			r.Post("/withdrawals", cfg.WalletHandler.Withdraw)
			r.Post("/purchases", cfg.WalletHandler.Purchase)
			r.Post("/transfers", cfg.WalletHandler.Transfer)
			r.Post("/p2p-payments", cfg.WalletHandler.SendP2P)
			r.Post("/vendor-payments", cfg.WalletHandler.PayVendor)

			// Wallet reads
			r.Get("/records", cfg.WalletHandler.Records)
			r.Get("/accounts", cfg.WalletHandler.Accounts)
			r.Get("/vendors", cfg.WalletHandler.Vendors)

			// Inventory
			r.Route("/inventory", func(r chi.Router) {
				r.Post("/consume", cfg.InventoryHandler.Consume)
				r.Get("/items", cfg.InventoryHandler.Items)
				r.Get("/requests", cfg.InventoryHandler.Requests)
			})

			// Invoices
			r.Post("/invoices", cfg.InvoiceHandler.Submit)

			// Reports
			r.Route("/reports", func(r chi.Router) {
				r.Get("/summary", cfg.ReportHandler.Summary)
				r.Get("/crypto", cfg.ReportHandler.Crypto)
			})
		})
	})

	return r
}
