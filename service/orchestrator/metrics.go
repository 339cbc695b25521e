package orchestrator

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics of the scheduler loop
type Metrics struct {
	runDuration        prometheus.Histogram
	batchesGenerated   prometheus.Counter
	prospectsSelected  prometheus.Counter
	campaignsSkipped   prometheus.Counter
	campaignsCompleted prometheus.Counter
	generationErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors to reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mailing",
			Subsystem: "scheduler",
			Name:      "run_duration_seconds",
			Help:      "Duration of one pass over the active campaigns",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		}),
		batchesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mailing",
			Subsystem: "scheduler",
			Name:      "batches_generated_total",
			Help:      "Number of batches generated",
		}),
		prospectsSelected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mailing",
			Subsystem: "scheduler",
			Name:      "prospects_selected_total",
			Help:      "Number of prospects in generated batches",
		}),
		campaignsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mailing",
			Subsystem: "scheduler",
			Name:      "campaigns_skipped_total",
			Help:      "Campaigns skipped because their next mailing week has not started",
		}),
		campaignsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mailing",
			Subsystem: "scheduler",
			Name:      "campaigns_completed_total",
			Help:      "Campaigns moved to completed",
		}),
		generationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mailing",
			Subsystem: "scheduler",
			Name:      "generation_errors_total",
			Help:      "Failed batch generations by error kind",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		m.runDuration,
		m.batchesGenerated,
		m.prospectsSelected,
		m.campaignsSkipped,
		m.campaignsCompleted,
		m.generationErrors,
	)
	return m
}
