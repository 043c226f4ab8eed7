// ABOUTME: Prometheus implementation of the search pipeline metrics
// ABOUTME: Uses a private registry so tests and embedders never collide on the global one

package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "places_finder"

// Recorder implements the Metrics interface
type Recorder struct {
	registry *prometheus.Registry

	cacheLookups     *prometheus.CounterVec
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	detailFailures   prometheus.Counter
	pageDuration     *prometheus.HistogramVec
}

// NewRecorder creates a recorder with its own registry.
// Go runtime and process collectors are registered alongside the pipeline metrics.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "result_cache_lookups_total",
				Help:      "Result cache lookups by outcome",
			},
			[]string{"result"},
		),
		upstreamCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_calls_total",
				Help:      "Calls to the places API by operation and status",
			},
			[]string{"operation", "status"},
		),
		upstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_call_duration_seconds",
				Help:      "Duration of calls to the places API",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		detailFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "detail_lookup_failures_total",
				Help:      "Detail lookups that failed and were left unenriched",
			},
		),
		pageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "page_request_duration_seconds",
				Help:      "Duration of page requests by cache outcome",
				Buckets:   []float64{.005, .05, .25, 1, 2.5, 5, 10, 30},
			},
			[]string{"cached"},
		),
	}
}

// CacheLookup records a result cache hit or miss
func (r *Recorder) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

// UpstreamCall records one places API call
func (r *Recorder) UpstreamCall(operation, status string, duration time.Duration) {
	r.upstreamCalls.WithLabelValues(operation, status).Inc()
	r.upstreamDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// DetailLookupFailed records an absorbed detail lookup failure
func (r *Recorder) DetailLookupFailed() {
	r.detailFailures.Inc()
}

// PageFetched records a completed page request
func (r *Recorder) PageFetched(cached bool, duration time.Duration) {
	r.pageDuration.WithLabelValues(strconv.FormatBool(cached)).Observe(duration.Seconds())
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
