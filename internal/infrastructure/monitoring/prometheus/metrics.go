// Package prometheus registers and serves the engine's metrics.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every instrument the engine records.  It satisfies the
// analysis service's MetricsRecorder interface.
type Metrics struct {
	analysisTotal    *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	matchListSize    *prometheus.HistogramVec
	versionStoreOps  *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New registers all instruments on the given registerer (nil uses the
// default registry).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		analysisTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "greenlight",
			Name:      "analysis_total",
			Help:      "Completed concept analyses by verdict tier.",
		}, []string{"verdict"}),
		analysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "greenlight",
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of one full analysis pipeline run.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		matchListSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "greenlight",
			Name:      "match_list_size",
			Help:      "Entries returned per match list.",
			Buckets:   prometheus.LinearBuckets(0, 1, 11),
		}, []string{"list"}),
		versionStoreOps: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "greenlight",
			Name:      "version_store_op_duration_seconds",
			Help:      "Version store operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"op", "outcome"}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "greenlight",
			Name:      "analysis_cache_lookups_total",
			Help:      "Analysis cache lookups by outcome.",
		}, []string{"outcome"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "greenlight",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path, and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "greenlight",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// ObserveAnalysis records one completed pipeline run.
func (m *Metrics) ObserveAnalysis(d time.Duration, verdict string) {
	m.analysisTotal.WithLabelValues(verdict).Inc()
	m.analysisDuration.Observe(d.Seconds())
}

// ObserveMatchCounts records the three match list sizes.
func (m *Metrics) ObserveMatchCounts(buyers, producers, comparables int) {
	m.matchListSize.WithLabelValues("buyers").Observe(float64(buyers))
	m.matchListSize.WithLabelValues("producers").Observe(float64(producers))
	m.matchListSize.WithLabelValues("comparables").Observe(float64(comparables))
}

// CacheLookup records a cache hit or miss.
func (m *Metrics) CacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.cacheLookups.WithLabelValues(outcome).Inc()
}

// ObserveVersionStoreOp records a store operation.
func (m *Metrics) ObserveVersionStoreOp(op string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.versionStoreOps.WithLabelValues(op, outcome).Observe(d.Seconds())
}

// ObserveHTTP records one request.
func (m *Metrics) ObserveHTTP(method, path, status string, d time.Duration) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}
