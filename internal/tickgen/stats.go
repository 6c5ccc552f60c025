package tickgen

import "sync/atomic"

// counters are the generator's relaxed performance accumulators. They are
// updated lock-free by the producing goroutine and safe to read from any
// goroutine; there is no ordering guarantee relative to tick content.
type counters struct {
	totalTicks atomic.Uint64
	timeNs     atomic.Uint64
}

// PerfStats is a point-in-time snapshot of generator throughput.
type PerfStats struct {
	TotalTicks           uint64  `json:"total_ticks"`
	AvgGenerationTimeNs  uint64  `json:"avg_generation_time_ns"`
	TicksPerSecond       uint64  `json:"ticks_per_second"`
	CPUEfficiencyPercent float64 `json:"cpu_efficiency_percent"`
}

// Stats derives throughput numbers from the raw counters. All ratios report
// 0 until at least one tick / one nanosecond is recorded.
func (g *Generator) Stats() PerfStats {
	totalTicks := g.stats.totalTicks.Load()
	totalTimeNs := g.stats.timeNs.Load()

	s := PerfStats{TotalTicks: totalTicks}
	if totalTicks > 0 {
		s.AvgGenerationTimeNs = totalTimeNs / totalTicks
	}
	if totalTimeNs > 0 {
		s.TicksPerSecond = totalTicks * 1e9 / totalTimeNs
	}
	if g.targetIntervalNs > 0 {
		s.CPUEfficiencyPercent = float64(s.AvgGenerationTimeNs) / float64(g.targetIntervalNs) * 100.0
	}
	return s
}

// ResetCounters zeroes both accumulators. Symbol and venue state are
// untouched.
func (g *Generator) ResetCounters() {
	g.stats.totalTicks.Store(0)
	g.stats.timeNs.Store(0)
}
