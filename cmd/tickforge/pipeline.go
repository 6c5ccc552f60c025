package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/tickforge/tickforge/internal/config"
	"github.com/tickforge/tickforge/internal/domain/features"
	"github.com/tickforge/tickforge/internal/domain/risk"
	"github.com/tickforge/tickforge/internal/tickgen"
)

// pipeline bundles the three stages every command drives: generator,
// feature extractor, risk estimator.
type pipeline struct {
	cfg       *config.Config
	gen       *tickgen.Generator
	extractor *features.Extractor
	estimator *risk.Estimator

	// rolling per-symbol history feeding the extractor window
	history map[uint32][]tickgen.MarketTick
}

const historyDepth = 10

func newPipeline(cmd *cobra.Command) (*pipeline, error) {
	configPath, _ := cmd.Flags().GetString("config")
	seed, _ := cmd.Flags().GetUint64("seed")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	gen := tickgen.NewSeeded(cfg.TargetTicksPerSecond, seed)
	gen.Initialize(cfg.UniverseConfig())

	return &pipeline{
		cfg:       cfg,
		gen:       gen,
		extractor: features.NewExtractor(),
		estimator: risk.NewEstimator(cfg.Limits),
		history:   make(map[uint32][]tickgen.MarketTick),
	}, nil
}

// stepResult is one tick's trip through the full pipeline, with stage
// timings for the metrics histograms.
type stepResult struct {
	tick     tickgen.MarketTick
	features features.MLFeatures
	risk     risk.Metrics
	genTime  time.Duration
	procTime time.Duration
}

// step generates one tick and runs it through feature extraction and risk
// evaluation against that symbol's trailing history.
func (p *pipeline) step(positionSize float64) (stepResult, error) {
	genStart := time.Now()
	tick, err := p.gen.Generate()
	if err != nil {
		return stepResult{}, err
	}
	genTime := time.Since(genStart)

	hist := p.history[tick.SymbolID]
	procStart := time.Now()
	f := p.extractor.Process(tick, hist)
	m := p.estimator.Evaluate(f, positionSize)
	procTime := time.Since(procStart)

	hist = append(hist, tick)
	if len(hist) > historyDepth {
		hist = hist[len(hist)-historyDepth:]
	}
	p.history[tick.SymbolID] = hist

	return stepResult{
		tick:     tick,
		features: f,
		risk:     m,
		genTime:  genTime,
		procTime: procTime,
	}, nil
}

// symbolName resolves a tick's symbol id for display.
func (p *pipeline) symbolName(id uint32) string {
	if int(id) < p.gen.Universe().NumSymbols() {
		return p.gen.Universe().Symbol(int(id)).Name
	}
	return "?"
}

// GeneratorStats implements the observability stats source.
func (p *pipeline) GeneratorStats() tickgen.PerfStats { return p.gen.Stats() }

// ProcessorStats implements the observability stats source.
func (p *pipeline) ProcessorStats() features.ProcStats { return p.extractor.Stats() }
