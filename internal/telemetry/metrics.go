// Package telemetry registers the prometheus collectors for the evaluation
// pipeline. The CLI records into them and cmd/polard exposes them on
// /metrics.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// phaseEvaluations counts phase evaluations by result (ok, error).
	phaseEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vpf_phase_evaluations_total",
		Help: "Phase evaluations by result",
	}, []string{"result"})

	// phaseErrors counts failed evaluations by error kind.
	phaseErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vpf_phase_errors_total",
		Help: "Failed phase evaluations by error kind",
	}, []string{"kind"})

	// compressibilityWarnings counts corrections applied above the trusted Mach.
	compressibilityWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vpf_compressibility_warnings_total",
		Help: "Prandtl-Glauert corrections applied above the validity threshold",
	})

	// batchDuration tracks wall time of EvaluateAll.
	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vpf_batch_duration_seconds",
		Help:    "Batch evaluation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	// storedPolars tracks tables held by the evaluation server.
	storedPolars = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vpf_stored_polars",
		Help: "Polar tables held in memory by the evaluation server",
	})
)

// ObservePhase records one phase evaluation. kind is ignored on success.
func ObservePhase(ok bool, kind string) {
	if ok {
		phaseEvaluations.WithLabelValues("ok").Inc()
		return
	}
	phaseEvaluations.WithLabelValues("error").Inc()
	phaseErrors.WithLabelValues(kind).Inc()
}

// ObserveWarning records one compressibility warning.
func ObserveWarning() { compressibilityWarnings.Inc() }

// ObserveBatch records the duration of one batch.
func ObserveBatch(d time.Duration) { batchDuration.Observe(d.Seconds()) }

// SetStoredPolars sets the number of tables held by the server.
func SetStoredPolars(n int) { storedPolars.Set(float64(n)) }
