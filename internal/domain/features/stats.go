package features

import "sync/atomic"

// procCounters are the extractor's relaxed bookkeeping accumulators.
type procCounters struct {
	ticksProcessed atomic.Uint64
	timeNs         atomic.Uint64
	featureCalcs   atomic.Uint64
}

// ProcStats is a point-in-time snapshot of extractor throughput.
type ProcStats struct {
	TicksProcessed       uint64  `json:"ticks_processed"`
	FeatureCalculations  uint64  `json:"feature_calculations"`
	TicksPerSecond       uint64  `json:"ticks_per_second"`
	AvgProcessingTimeNs  uint64  `json:"avg_processing_time_ns"`
	ThroughputEfficiency float64 `json:"throughput_efficiency"`
}

// Stats derives throughput numbers from the raw counters; ratios report 0
// until work has been recorded.
func (e *Extractor) Stats() ProcStats {
	ticks := e.stats.ticksProcessed.Load()
	timeNs := e.stats.timeNs.Load()

	s := ProcStats{
		TicksProcessed:      ticks,
		FeatureCalculations: e.stats.featureCalcs.Load(),
	}
	if timeNs > 0 {
		s.TicksPerSecond = ticks * 1e9 / timeNs
	}
	if ticks > 0 {
		s.AvgProcessingTimeNs = timeNs / ticks
	}
	if s.AvgProcessingTimeNs > 0 {
		eff := (1000.0 / float64(s.AvgProcessingTimeNs)) * 100.0
		if eff > 100.0 {
			eff = 100.0
		}
		s.ThroughputEfficiency = eff
	}
	return s
}

// ResetCounters zeroes the bookkeeping accumulators.
func (e *Extractor) ResetCounters() {
	e.stats.ticksProcessed.Store(0)
	e.stats.timeNs.Store(0)
	e.stats.featureCalcs.Store(0)
}
