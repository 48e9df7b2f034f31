package collector

import (
	"fmt"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	once sync.Once
	mc   *MetricsCollector
)

// MetricsCollector tracks scan activity for the web surface. The CLI path
// never initializes it; every caller treats the nil collector as a no-op.
type MetricsCollector struct {
	scansTotal    *prometheus.CounterVec // scans finished, labelled by verdict
	featureHits   *prometheus.CounterVec // triggered features, labelled by code
	fetchFailures prometheus.Counter     // page fetches that degraded to unavailable
	scanDuration  prometheus.Histogram   // end-to-end scan latency
}

func GetMetricsCollector() (*MetricsCollector, error) {
	if mc == nil {
		return nil, fmt.Errorf("MetricsCollector not initialized")
	}
	return mc, nil
}

// NewMetricsCollector registers the scan metrics once.
func NewMetricsCollector() *MetricsCollector {
	once.Do(func() {
		mc = &MetricsCollector{
			scansTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "scamurl_scans_total",
				Help: "Total number of completed scans by verdict.",
			}, []string{"verdict"}),
			featureHits: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "scamurl_feature_hits_total",
				Help: "Total number of triggered risk features by code.",
			}, []string{"code"}),
			fetchFailures: promauto.NewCounter(prometheus.CounterOpts{
				Name: "scamurl_fetch_failures_total",
				Help: "Total number of page fetches that returned no content.",
			}),
			scanDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "scamurl_scan_duration_seconds",
				Help:    "End-to-end scan duration.",
				Buckets: prometheus.DefBuckets,
			}),
		}
	})
	return mc
}

func (m *MetricsCollector) IncrementScans(verdict string) {
	if m == nil {
		return
	}
	m.scansTotal.WithLabelValues(verdict).Inc()
}

func (m *MetricsCollector) IncrementFeatureHit(code string) {
	if m == nil {
		return
	}
	m.featureHits.WithLabelValues(code).Inc()
}

func (m *MetricsCollector) IncrementFetchFailures() {
	if m == nil {
		return
	}
	m.fetchFailures.Inc()
}

func (m *MetricsCollector) ObserveScanDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.scanDuration.Observe(d.Seconds())
}

// ExposeWebMetrics mounts the prometheus handler on the web server.
func (m *MetricsCollector) ExposeWebMetrics(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	log.Info().Msg("Prometheus metrics exposed at /metrics")
}
