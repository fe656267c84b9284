package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the wallet service.
type Metrics struct {
	// Action metrics
	ActionsTotal *prometheus.CounterVec
	ActionErrors *prometheus.CounterVec
	ActionAmount *prometheus.HistogramVec

	// Invoice metrics
	InvoiceSubmissions *prometheus.CounterVec

	// Inventory metrics
	ReplenishmentRequests prometheus.Counter

	// Session metrics
	ActiveSessions  prometheus.Gauge
	SessionsOpened  prometheus.Counter
	SessionsExpired prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ActionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_actions_total",
				Help: "Total wallet actions by type",
			},
			[]string{"action"},
		),
		ActionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_action_errors_total",
				Help: "Total rejected wallet actions by type",
			},
			[]string{"action"},
		),
		ActionAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletd_action_amount",
				Help:    "Absolute amounts moved by wallet actions",
				Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
			},
			[]string{"action"},
		),
		InvoiceSubmissions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_invoice_submissions_total",
				Help: "Invoice submissions by outcome",
			},
			[]string{"outcome"},
		),
		ReplenishmentRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_replenishment_requests_total",
			Help: "Total replenishment requests generated",
		}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "walletd_active_sessions",
			Help: "Current number of live sessions",
		}),
		SessionsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_sessions_opened_total",
			Help: "Total sessions opened",
		}),
		SessionsExpired: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_sessions_expired_total",
			Help: "Total sessions dropped by the TTL sweep",
		}),
	}
}
