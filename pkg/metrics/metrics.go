package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mockdb"

// Metrics holds the collectors for one server.
//
// The metrics used are:
//
//   - mockdb_requests_total (requests answered, labeled by method, source and status)
//   - mockdb_request_duration_seconds (request latency, labeled by method and source)
//   - mockdb_mounts (number of mounted documents)
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	mounts          prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Number of requests answered, labeled by method, source and status",
			},
			[]string{"method", "source", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Time spent answering requests, labeled by method and source",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "source"},
		),
		mounts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mounts",
			Help:      "Number of mounted documents",
		}),
	}
	m.registry.MustRegister(m.requestsTotal, m.requestDuration, m.mounts)
	return m
}

// ObserveRequest records one answered request.
func (m *Metrics) ObserveRequest(method, source string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, source, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, source).Observe(elapsed.Seconds())
}

// SetMounts sets the mounted document count.
func (m *Metrics) SetMounts(n int) {
	if m == nil {
		return
	}
	m.mounts.Set(float64(n))
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
