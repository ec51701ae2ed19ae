// Package metrics exports Prometheus metrics for rendering and serving.
//
// Metrics implements render.Observer, so it can be passed as the observer of
// a Renderer:
//
//	m := metrics.New(metrics.WithRegistry(reg))
//	r := render.New(render.Config{Observer: m})
//
// Metrics collected:
//   - htmldoom_render_cache_hits_total
//   - htmldoom_render_cache_misses_total
//   - htmldoom_render_cache_evictions_total
//   - htmldoom_requests_total{page,status}
//   - htmldoom_request_duration_seconds{page}
//   - htmldoom_page_bytes
//   - htmldoom_uploads_total{status}
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config configures the metrics.
type Config struct {
	// Namespace is the metrics namespace (default: "htmldoom").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: a new registry.
	Registry *prometheus.Registry
}

// Option configures the metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "htmldoom",
		Buckets:   prometheus.DefBuckets,
	}
}

// Metrics holds the collectors.
type Metrics struct {
	registry *prometheus.Registry

	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	cacheEvictions  prometheus.Counter
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	pageBytes       prometheus.Histogram
	uploadsTotal    *prometheus.CounterVec
}

// New registers the collectors and returns them.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		registry: config.Registry,

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "render_cache_hits_total",
			Help:        "Renders served from the render cache",
			ConstLabels: config.ConstLabels,
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "render_cache_misses_total",
			Help:        "Renders computed because the cache had no entry",
			ConstLabels: config.ConstLabels,
		}),

		cacheEvictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "render_cache_evictions_total",
			Help:        "Entries evicted from the render cache",
			ConstLabels: config.ConstLabels,
		}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "requests_total",
			Help:        "Page requests by page and status",
			ConstLabels: config.ConstLabels,
		}, []string{"page", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "request_duration_seconds",
			Help:        "Page request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"page"}),

		pageBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "page_bytes",
			Help:        "Size of served pages in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4MB
		}),

		uploadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "uploads_total",
			Help:        "Published pages by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),
	}
}

// CacheHit implements render.Observer.
func (m *Metrics) CacheHit() { m.cacheHits.Inc() }

// CacheMiss implements render.Observer.
func (m *Metrics) CacheMiss() { m.cacheMisses.Inc() }

// CacheEvict implements render.Observer.
func (m *Metrics) CacheEvict() { m.cacheEvictions.Inc() }

// ObserveRequest records a served page.
func (m *Metrics) ObserveRequest(page string, status int, d time.Duration, size int) {
	m.requestsTotal.WithLabelValues(page, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(page).Observe(d.Seconds())
	if size > 0 {
		m.pageBytes.Observe(float64(size))
	}
}

// ObserveUpload records a published page.
func (m *Metrics) ObserveUpload(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.uploadsTotal.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
