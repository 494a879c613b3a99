package worker

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks aggregation job executions.
type Metrics struct {
	JobRunsTotal     *prometheus.CounterVec
	JobDuration      prometheus.Histogram
	SourcesProcessed prometheus.Counter
	VideosFetched    prometheus.Counter
	LastSuccess      prometheus.Gauge
}

// NewMetrics creates and registers the worker job metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		JobRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_job_runs_total",
			Help: "Total number of aggregation job runs by status",
		}, []string{"status"}),
		JobDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of aggregation job runs",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		SourcesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_sources_processed_total",
			Help: "Total number of sources processed across all job runs",
		}),
		VideosFetched: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_videos_fetched_total",
			Help: "Total number of videos fetched across all job runs",
		}),
		LastSuccess: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_last_success_timestamp",
			Help: "Unix timestamp of the last successful job run",
		}),
	}
}

// RecordRun records one aggregation job run.
func (m *Metrics) RecordRun(status string, duration time.Duration, sources, videos int) {
	m.JobRunsTotal.WithLabelValues(status).Inc()
	m.JobDuration.Observe(duration.Seconds())
	m.SourcesProcessed.Add(float64(sources))
	m.VideosFetched.Add(float64(videos))
	if status == "success" {
		m.LastSuccess.SetToCurrentTime()
	}
}
