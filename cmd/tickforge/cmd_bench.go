package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark generator and feature-pipeline throughput",
		Long:  "Run the full pipeline unpaced for a fixed tick count and report throughput statistics.",
		RunE:  runBench,
	}

	cmd.Flags().Int("ticks", 1_000_000, "Number of ticks to push through the pipeline")
	cmd.Flags().Float64("position", 100, "Position size for risk evaluation")

	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	ticks, _ := cmd.Flags().GetInt("ticks")
	position, _ := cmd.Flags().GetFloat64("position")

	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log.Info().Str("run_id", runID).Int("ticks", ticks).Msg("bench starting")

	var breaches uint64
	start := time.Now()
	for i := 0; i < ticks; i++ {
		res, err := p.step(position)
		if err != nil {
			return err
		}
		if res.risk.LimitExceeded {
			breaches++
		}
	}
	elapsed := time.Since(start)

	gs := p.gen.Stats()
	ps := p.extractor.Stats()

	log.Info().
		Str("run_id", runID).
		Dur("elapsed", elapsed).
		Uint64("ticks", gs.TotalTicks).
		Uint64("gen_ticks_per_sec", gs.TicksPerSecond).
		Uint64("gen_avg_ns", gs.AvgGenerationTimeNs).
		Float64("cpu_efficiency_pct", gs.CPUEfficiencyPercent).
		Uint64("proc_ticks_per_sec", ps.TicksPerSecond).
		Uint64("proc_avg_ns", ps.AvgProcessingTimeNs).
		Uint64("feature_calcs", ps.FeatureCalculations).
		Uint64("breaches", breaches).
		Float64("pipeline_ticks_per_sec", float64(ticks)/elapsed.Seconds()).
		Msg("bench complete")

	return nil
}
