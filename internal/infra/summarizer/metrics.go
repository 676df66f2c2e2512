package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder defines the interface for recording external summary
// metrics. Abstracting the recorder keeps the adapters testable without a
// live Prometheus registry and reusable across providers.
type MetricsRecorder interface {
	// RecordWords records the word count of a returned summary.
	RecordWords(words int)

	// RecordRangeMiss increments the counter when a summary falls outside
	// the requested word range.
	RecordRangeMiss()

	// RecordCompliance records whether a summary landed inside the
	// requested word range.
	RecordCompliance(withinRange bool)

	// RecordDuration records the time taken for one provider call.
	RecordDuration(duration time.Duration)
}

// PrometheusMetrics implements MetricsRecorder using Prometheus metrics.
type PrometheusMetrics struct {
	wordsHistogram    prometheus.Histogram
	rangeMissCounter  prometheus.Counter
	complianceGauge   prometheus.Gauge
	durationHistogram prometheus.Histogram
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one if it doesn't exist
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateCounter gets an existing counter or creates a new one if it doesn't exist
func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

// getOrCreateGauge gets an existing gauge or creates a new one if it doesn't exist
func getOrCreateGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	g := prometheus.NewGauge(opts)
	if err := prometheus.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Gauge)
		}
		return promauto.NewGauge(opts)
	}
	return g
}

// NewPrometheusMetrics creates a new Prometheus-based metrics recorder.
// Uses a singleton to avoid duplicate metric registration in tests.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			wordsHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "external_summary_words",
				Help:    "Distribution of external summary lengths in words",
				Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600},
			}),
			rangeMissCounter: getOrCreateCounter(prometheus.CounterOpts{
				Name: "external_summary_range_miss_total",
				Help: "Total number of external summaries outside the requested word range",
			}),
			complianceGauge: getOrCreateGauge(prometheus.GaugeOpts{
				Name: "external_summary_range_compliance",
				Help: "Whether the last external summary was within the requested word range (0 or 1)",
			}),
			durationHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "external_summary_call_duration_seconds",
				Help:    "Time taken for one external model API call",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordWords implements MetricsRecorder.RecordWords
func (p *PrometheusMetrics) RecordWords(words int) {
	p.wordsHistogram.Observe(float64(words))
}

// RecordRangeMiss implements MetricsRecorder.RecordRangeMiss
func (p *PrometheusMetrics) RecordRangeMiss() {
	p.rangeMissCounter.Inc()
}

// RecordCompliance implements MetricsRecorder.RecordCompliance
func (p *PrometheusMetrics) RecordCompliance(withinRange bool) {
	if withinRange {
		p.complianceGauge.Set(1.0)
	} else {
		p.complianceGauge.Set(0.0)
	}
}

// RecordDuration implements MetricsRecorder.RecordDuration
func (p *PrometheusMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}
