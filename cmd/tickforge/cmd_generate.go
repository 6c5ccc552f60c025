package main

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tickforge/tickforge/internal/domain/features"
	"github.com/tickforge/tickforge/internal/domain/risk"
	"github.com/tickforge/tickforge/internal/tickgen"
)

type generateRecord struct {
	Symbol   string               `json:"symbol"`
	Tick     tickgen.MarketTick   `json:"tick"`
	Features *features.MLFeatures `json:"features,omitempty"`
	Risk     *risk.Metrics        `json:"risk,omitempty"`
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of ticks as JSON lines",
		Long:  "Generate a paced batch of ticks and print them to stdout, optionally with derived features and risk metrics.",
		RunE:  runGenerate,
	}

	cmd.Flags().Int("count", 100, "Number of ticks to generate")
	cmd.Flags().Bool("features", false, "Derive and include ML features per tick")
	cmd.Flags().Float64("position", 100, "Position size for risk evaluation")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	withFeatures, _ := cmd.Flags().GetBool("features")
	position, _ := cmd.Flags().GetFloat64("position")

	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)

	if !withFeatures {
		batch, err := p.gen.GenerateBatch(count)
		if err != nil {
			return err
		}
		for _, tick := range batch {
			rec := generateRecord{Symbol: p.symbolName(tick.SymbolID), Tick: tick}
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}
	} else {
		for i := 0; i < count; i++ {
			res, err := p.step(position)
			if err != nil {
				return err
			}
			rec := generateRecord{
				Symbol:   p.symbolName(res.tick.SymbolID),
				Tick:     res.tick,
				Features: &res.features,
				Risk:     &res.risk,
			}
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}
	}

	stats := p.gen.Stats()
	log.Info().
		Uint64("ticks", stats.TotalTicks).
		Uint64("avg_ns", stats.AvgGenerationTimeNs).
		Uint64("ticks_per_sec", stats.TicksPerSecond).
		Msg("generation complete")

	return nil
}
