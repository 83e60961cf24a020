package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// POSMetrics counts checkout outcomes.
type POSMetrics struct {
	TransactionsCommitted *prometheus.CounterVec
	InsufficientStock     prometheus.Counter
	NumberRetries         prometheus.Counter
	CommitFailures        prometheus.Counter
}

// NewPOSMetrics registers and returns the POS counters.
func NewPOSMetrics() *POSMetrics {
	committed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "riderpos",
		Subsystem: "pos",
		Name:      "transactions_committed_total",
		Help:      "Total number of committed POS transactions.",
	}, []string{"payment_method"})
	insufficient := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "riderpos",
		Subsystem: "pos",
		Name:      "insufficient_stock_total",
		Help:      "Checkouts rejected because rider stock was insufficient.",
	})
	retries := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "riderpos",
		Subsystem: "pos",
		Name:      "transaction_number_retries_total",
		Help:      "Transaction number collisions that triggered a regenerate.",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "riderpos",
		Subsystem: "pos",
		Name:      "commit_failures_total",
		Help:      "Checkouts rolled back due to a persistence failure.",
	})

	prometheus.MustRegister(committed, insufficient, retries, failures)
	return &POSMetrics{
		TransactionsCommitted: committed,
		InsufficientStock:     insufficient,
		NumberRetries:         retries,
		CommitFailures:        failures,
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
