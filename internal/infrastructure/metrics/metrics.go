package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "driwich"

type Metrics struct {
	registry *prometheus.Registry

	Requests          *prometheus.CounterVec
	LatencyMS         *prometheus.HistogramVec
	OrdersCreated     prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	PrintFailures     prometheus.Counter
	StoreErrors       *prometheus.CounterVec
}

// New registers every collector on a private registry so tests can build
// as many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"route"}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders recorded this session.",
		}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Order status advances, by the status reached.",
		}, []string{"status"}),
		PrintFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticket_print_failures_total",
			Help:      "Tickets that could not be handed to the printer.",
		}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_store_errors_total",
			Help:      "Failed calls to the remote catalog store.",
		}, []string{"operation"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.LatencyMS,
		m.OrdersCreated,
		m.StatusTransitions,
		m.PrintFailures,
		m.StoreErrors,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(route).Observe(float64(elapsed.Milliseconds()))
}

func (m *Metrics) OrderCreated() {
	m.OrdersCreated.Inc()
}

func (m *Metrics) StatusAdvanced(status string) {
	m.StatusTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) PrintFailed() {
	m.PrintFailures.Inc()
}

func (m *Metrics) StoreFailed(operation string) {
	m.StoreErrors.WithLabelValues(operation).Inc()
}
