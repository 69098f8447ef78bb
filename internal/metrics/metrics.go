// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Billing cycle run results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds all Prometheus metrics. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Billing metrics
	BillingCycleRunsTotal      *prometheus.CounterVec
	BillingCycleRecordsCreated prometheus.Counter
	PaymentTransitionsTotal    *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics on registry
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cablepay_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cablepay_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		BillingCycleRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cablepay_billing_cycle_runs_total",
				Help: "Total number of billing cycle initializer runs",
			},
			[]string{"result"},
		),
		BillingCycleRecordsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cablepay_billing_cycle_records_created_total",
				Help: "Total number of payment records created by the billing cycle initializer",
			},
		),
		PaymentTransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cablepay_payment_transitions_total",
				Help: "Total number of payments marked paid or unpaid",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BillingCycleRunsTotal,
		m.BillingCycleRecordsCreated,
		m.PaymentTransitionsTotal,
	)

	return m
}

// ObserveHTTPRequest records one served request
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveBillingCycle records one initializer run
func (m *Metrics) ObserveBillingCycle(created int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.BillingCycleRunsTotal.WithLabelValues(ResultFailure).Inc()
		return
	}
	m.BillingCycleRunsTotal.WithLabelValues(ResultSuccess).Inc()
	m.BillingCycleRecordsCreated.Add(float64(created))
}

// ObservePaymentTransition records a payment moved to status
func (m *Metrics) ObservePaymentTransition(status string) {
	if m == nil {
		return
	}
	m.PaymentTransitionsTotal.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
