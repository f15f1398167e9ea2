// Package metrics provides Prometheus metrics for validation runs. A run is a
// short-lived batch job, so metrics are collected in a private registry and
// written out as a node-exporter textfile at the end.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "harvest_validator"

// Metrics holds all Prometheus metrics for one run.
type Metrics struct {
	Registry *prometheus.Registry

	FilesProcessed   prometheus.Counter
	FilesFailed      prometheus.Counter
	RecordsChecked   prometheus.Counter
	ImagesChecked    prometheus.Counter
	Violations       *prometheus.CounterVec
	CheckErrors      *prometheus.CounterVec
	CheckDuration    *prometheus.HistogramVec
	LastRunTimestamp prometheus.Gauge
}

// NewMetrics creates and registers all metrics in a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		FilesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_processed_total",
			Help:      "Total number of measurement files validated",
		}),
		FilesFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_failed_total",
			Help:      "Total number of measurement files that could not be read",
		}),
		RecordsChecked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_checked_total",
			Help:      "Total number of harvest measurements checked",
		}),
		ImagesChecked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "images_checked_total",
			Help:      "Total number of photo identifiers checked",
		}),
		Violations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "violations_total",
			Help:      "Flagged data points by rule",
		}, []string{"rule"}),
		CheckErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_errors_total",
			Help:      "Checks that failed to produce a report, by rule and error kind",
		}, []string{"rule", "kind"}),
		CheckDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "Time spent in each check",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"rule"}),
		LastRunTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the run finished",
		}),
	}
}

// ObserveCheck records the outcome of one check.
func (m *Metrics) ObserveCheck(rule string, violations int, errKind string, duration time.Duration) {
	m.CheckDuration.WithLabelValues(rule).Observe(duration.Seconds())
	if errKind != "" {
		m.CheckErrors.WithLabelValues(rule, errKind).Inc()
		return
	}
	m.Violations.WithLabelValues(rule).Add(float64(violations))
}

// MarkFinished stamps the run completion time.
func (m *Metrics) MarkFinished(at time.Time) {
	m.LastRunTimestamp.Set(float64(at.Unix()))
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
