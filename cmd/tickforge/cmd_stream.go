package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	httpiface "github.com/tickforge/tickforge/internal/interfaces/http"
	"github.com/tickforge/tickforge/internal/telemetry"
)

func newStreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Run a live paced tick stream with Prometheus metrics",
		Long: `Continuously generate ticks at the configured rate, run each through
feature extraction and risk evaluation, and expose Prometheus metrics,
health, and stats endpoints while streaming.`,
		RunE: runStream,
	}

	cmd.Flags().Duration("duration", 0, "Stop after this long (0 = run until interrupted)")
	cmd.Flags().Float64("position", 100, "Position size for risk evaluation")
	cmd.Flags().String("metrics-addr", "", "Metrics listen address (overrides config)")
	cmd.Flags().Bool("quiet", false, "Suppress per-breach log lines")

	return cmd
}

func runStream(cmd *cobra.Command, args []string) error {
	duration, _ := cmd.Flags().GetDuration("duration")
	position, _ := cmd.Flags().GetFloat64("position")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	quiet, _ := cmd.Flags().GetBool("quiet")

	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}
	if metricsAddr == "" {
		metricsAddr = p.cfg.MetricsAddr
	}

	runID := uuid.NewString()
	registry := telemetry.NewRegistry()

	server := httpiface.NewServer(metricsAddr, registry, p)
	server.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("metrics server shutdown")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	tps := p.cfg.TargetTicksPerSecond
	limiter := rate.NewLimiter(rate.Limit(tps), int(tps/10+1))

	log.Info().
		Str("run_id", runID).
		Uint32("target_tps", tps).
		Int("symbols", p.gen.Universe().NumSymbols()).
		Int("venues", p.gen.Universe().NumVenues()).
		Str("metrics_addr", metricsAddr).
		Msg("stream starting")

	registry.ActiveStreams.Inc()
	defer registry.ActiveStreams.Dec()

	var breaches uint64
	for {
		if err := limiter.Wait(ctx); err != nil {
			break // context done: interrupt or duration elapsed
		}

		res, err := p.step(position)
		if err != nil {
			return err
		}

		symbol := p.symbolName(res.tick.SymbolID)
		registry.TicksGenerated.WithLabelValues(symbol).Inc()
		registry.GenerationDuration.Observe(res.genTime.Seconds())
		registry.TicksProcessed.Inc()
		registry.ProcessingDuration.Observe(res.procTime.Seconds())
		registry.RiskEvaluations.Inc()

		if res.risk.LimitExceeded {
			breaches++
			registry.LimitBreaches.WithLabelValues(symbol).Inc()
			if !quiet {
				log.Warn().
					Str("run_id", runID).
					Str("symbol", symbol).
					Float64("position_risk", res.risk.PositionRisk).
					Float64("volatility", res.features.Volatility5Min).
					Float64("price_change", res.features.PriceChange).
					Msg("risk limit breached")
			}
		}
	}

	gs := p.gen.Stats()
	ps := p.extractor.Stats()
	log.Info().
		Str("run_id", runID).
		Uint64("ticks", gs.TotalTicks).
		Uint64("gen_avg_ns", gs.AvgGenerationTimeNs).
		Uint64("proc_avg_ns", ps.AvgProcessingTimeNs).
		Uint64("breaches", breaches).
		Msg("stream stopped")

	return nil
}
