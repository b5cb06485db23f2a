package server

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nahidreza/folio/internal/content"
	"github.com/nahidreza/folio/internal/errors"
	"github.com/nahidreza/folio/internal/portfolio"
	"github.com/nahidreza/folio/pkg/fileutil"
	"github.com/nahidreza/folio/pkg/frontmatter"
)

// MetricsPath is where the Prometheus exposition is served.
const MetricsPath = "/metrics"

// Metrics holds the server's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	skippedEntries  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them, plus the Go and
// process collectors, on a fresh registry.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "folio_http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		skippedEntries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_skipped_entries_total",
				Help: "Entries left out of listings.",
			},
			[]string{"kind", "reason"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.requestCount,
		m.requestDuration,
		m.skippedEntries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering metrics")
		}
	}

	return m, nil
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware counts and times requests by chi route pattern. Scrapes of
// MetricsPath are not counted.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == MetricsPath {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routePattern(r)
		m.requestCount.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveSkip records an entry dropped from a listing. Its signature
// matches portfolio.Options.OnSkip.
func (m *Metrics) ObserveSkip(kind portfolio.Kind, _ string, reason error) {
	m.skippedEntries.WithLabelValues(string(kind), skipReason(reason)).Inc()
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, frontmatter.ErrInvalidFrontmatter):
		return "invalid_frontmatter"
	case errors.Is(err, content.ErrVanished):
		return "vanished"
	case errors.Is(err, fileutil.ErrFileTooLarge):
		return "too_large"
	default:
		return "other"
	}
}
