package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	referenceEntriesDesc = prometheus.NewDesc(
		"symptomcheck_reference_entries",
		"Number of entries in the loaded reference data by kind",
		[]string{"kind"},
		nil,
	)

	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "symptomcheck_submissions_total",
			Help: "Total prediction submissions by outcome",
		},
		[]string{"outcome"},
	)

	inferenceDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "symptomcheck_inference_duration_seconds",
			Help:    "Time spent encoding and classifying one record",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		},
		[]string{"result"},
	)

	modelServerUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "symptomcheck_model_server_up",
			Help: "Whether the last model server health check succeeded (1) or failed (0)",
		},
	)
)

// ReferenceSizes holds the sizes of the immutable reference data.
type ReferenceSizes struct {
	Animals  int
	Symptoms int
	Advice   int
}

// ReferenceCollector is a custom Prometheus collector that reports the sizes
// of the reference data on each scrape.
type ReferenceCollector struct {
	sizes ReferenceSizes
}

// Describe sends the metric descriptor to the channel.
func (c *ReferenceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- referenceEntriesDesc
}

// Collect emits one gauge per kind of reference entry.
func (c *ReferenceCollector) Collect(ch chan<- prometheus.Metric) {
	for kind, n := range map[string]int{
		"animals":  c.sizes.Animals,
		"symptoms": c.sizes.Symptoms,
		"advice":   c.sizes.Advice,
	} {
		ch <- prometheus.MustNewConstMetric(referenceEntriesDesc, prometheus.GaugeValue, float64(n), kind)
	}
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup; later calls are no-ops.
func Init(sizes ReferenceSizes) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			&ReferenceCollector{sizes: sizes},
			submissionsTotal,
			inferenceDuration,
			modelServerUp,
		)
	})
}

// RecordSubmission counts a submission outcome.
func RecordSubmission(outcome string) {
	submissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveInference records the duration of one pipeline run.
func ObserveInference(d time.Duration, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	inferenceDuration.WithLabelValues(result).Observe(d.Seconds())
}

// SetModelServerUp records the result of a model server health check.
func SetModelServerUp(up bool) {
	if up {
		modelServerUp.Set(1)
		return
	}
	modelServerUp.Set(0)
}
