// Package metrics instruments pipeline runs with Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder counts pipeline runs and stage failures. A nil Recorder is valid
// and records nothing, so tests can pass nil.
type Recorder struct {
	runs     *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewRecorder registers the pipeline collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "m2t_pipeline_runs_total",
			Help: "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "m2t_pipeline_stage_failures_total",
			Help: "Stage failures by stage and failure code.",
		}, []string{"stage", "code"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "m2t_pipeline_run_duration_seconds",
			Help:    "Wall time of full pipeline runs.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
		}),
	}
}

// ObserveSuccess records a successful run.
func (r *Recorder) ObserveSuccess(elapsed time.Duration) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues("success").Inc()
	r.duration.Observe(elapsed.Seconds())
}

// ObserveFailure records a failed run.
func (r *Recorder) ObserveFailure(stage, code string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues("failure").Inc()
	r.failures.WithLabelValues(stage, code).Inc()
	r.duration.Observe(elapsed.Seconds())
}
