// Package metrics exposes Prometheus collectors for order intake.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rejection reasons used as the "reason" label.
const (
	ReasonShape      = "shape"
	ReasonValidation = "validation"
	ReasonInternal   = "internal"
)

// Metrics groups the collectors of the service.
type Metrics struct {
	registry *prometheus.Registry

	OrdersProcessed *prometheus.CounterVec
	OrdersRejected  *prometheus.CounterVec
	FieldViolations *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		OrdersProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_processed_total",
				Help: "Orders accepted and converted, by submitted currency",
			},
			[]string{"currency"},
		),
		OrdersRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_rejected_total",
				Help: "Orders rejected, by reason",
			},
			[]string{"reason"}, // shape|validation|internal
		),
		FieldViolations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_field_violations_total",
				Help: "Business rule violations, by field",
			},
			[]string{"field"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
	m.registry.MustRegister(m.OrdersProcessed, m.OrdersRejected, m.FieldViolations, m.RequestDuration)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveProcessed counts an accepted order.
func (m *Metrics) ObserveProcessed(currency string) {
	if m == nil {
		return
	}
	m.OrdersProcessed.WithLabelValues(currency).Inc()
}

// ObserveRejected counts a rejected order and, for validation failures, each
// failing field.
func (m *Metrics) ObserveRejected(reason string, fields map[string][]string) {
	if m == nil {
		return
	}
	m.OrdersRejected.WithLabelValues(reason).Inc()
	if reason != ReasonValidation {
		return
	}
	for field := range fields {
		m.FieldViolations.WithLabelValues(field).Inc()
	}
}
