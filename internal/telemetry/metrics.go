// Package telemetry exposes Prometheus metrics for the tick pipeline.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all tickforge Prometheus metrics.
type Registry struct {
	reg *prometheus.Registry

	// Generation metrics
	TicksGenerated     *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	BatchSize          prometheus.Histogram

	// Feature pipeline metrics
	TicksProcessed     prometheus.Counter
	ProcessingDuration prometheus.Histogram

	// Risk metrics
	RiskEvaluations prometheus.Counter
	LimitBreaches   *prometheus.CounterVec

	// Stream state
	ActiveStreams prometheus.Gauge
}

// NewRegistry creates a registry with all pipeline metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),

		TicksGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickforge_ticks_generated_total",
				Help: "Total number of ticks generated by symbol",
			},
			[]string{"symbol"},
		),

		GenerationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tickforge_generation_duration_seconds",
				Help:    "Duration of single-tick generation",
				Buckets: []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 1e-3},
			},
		),

		BatchSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tickforge_batch_size",
				Help:    "Size of generated tick batches",
				Buckets: []float64{1, 8, 32, 128, 512, 2048, 8192},
			},
		),

		TicksProcessed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tickforge_ticks_processed_total",
				Help: "Total number of ticks run through feature extraction",
			},
		),

		ProcessingDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tickforge_processing_duration_seconds",
				Help:    "Duration of per-tick feature extraction",
				Buckets: []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 1e-3},
			},
		),

		RiskEvaluations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tickforge_risk_evaluations_total",
				Help: "Total number of risk metric evaluations",
			},
		),

		LimitBreaches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickforge_limit_breaches_total",
				Help: "Total number of risk limit breaches by symbol",
			},
			[]string{"symbol"},
		),

		ActiveStreams: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tickforge_active_streams",
				Help: "Number of currently running tick streams",
			},
		),
	}

	r.reg.MustRegister(
		r.TicksGenerated,
		r.GenerationDuration,
		r.BatchSize,
		r.TicksProcessed,
		r.ProcessingDuration,
		r.RiskEvaluations,
		r.LimitBreaches,
		r.ActiveStreams,
		collectors.NewGoCollector(),
	)

	return r
}

// Prometheus returns the underlying registry for scraping.
func (r *Registry) Prometheus() *prometheus.Registry { return r.reg }
