// Package tickgen synthesizes a stream of market ticks over a bounded
// instrument universe: weighted symbol selection, a price random walk with a
// hard floor, spread/size/venue synthesis, and paced batch emission.
//
// A Generator is a single logical stream. Generate, FillBatch, Initialize,
// and SetTargetFrequency are not internally synchronized against each other;
// callers sharing one instance across goroutines must serialize mutating
// calls. Stats reads are atomic-safe while a single producer writes.
package tickgen

import (
	"errors"
	"fmt"
	"time"

	"github.com/tickforge/tickforge/internal/fastrand"
	"github.com/tickforge/tickforge/internal/universe"
)

var (
	// ErrEmptyUniverse is returned when generating against a universe with
	// no symbols or no venues.
	ErrEmptyUniverse = errors.New("tickgen: universe has no symbols or venues")
	// ErrZeroWeight is returned when every symbol has activity weight 0, so
	// weighted selection has nothing to pick.
	ErrZeroWeight = errors.New("tickgen: total activity weight is zero")
	// ErrShortBuffer is returned by FillBatch when the destination cannot
	// hold the requested tick count.
	ErrShortBuffer = errors.New("tickgen: destination buffer shorter than requested count")
)

const defaultIntervalNs = int64(time.Millisecond)

// Generator owns the instrument universe and produces ticks from it.
type Generator struct {
	rng *fastrand.Source
	uni universe.Universe

	targetIntervalNs int64

	stats counters
}

// NewGenerator builds a generator seeded from the wall clock, targeting the
// given tick rate, over the default universe.
func NewGenerator(targetTicksPerSecond uint32) *Generator {
	return NewSeeded(targetTicksPerSecond, uint64(time.Now().UnixNano()))
}

// NewSeeded builds a generator with an explicit PRNG seed so the full tick
// stream is reproducible.
func NewSeeded(targetTicksPerSecond uint32, seed uint64) *Generator {
	g := &Generator{rng: fastrand.NewSource(seed)}
	g.SetTargetFrequency(targetTicksPerSecond)
	g.Initialize(universe.DefaultConfig())
	return g
}

// Initialize replaces the symbol and venue universe. Oversized inputs are
// silently truncated to capacity.
func (g *Generator) Initialize(cfg universe.Config) {
	g.uni.Initialize(cfg, g.rng)
}

// Universe exposes the generator's instrument universe for read access.
func (g *Generator) Universe() *universe.Universe { return &g.uni }

// SetTargetFrequency sets the nominal inter-tick interval from a tick rate.
// A zero rate falls back to 1ms.
func (g *Generator) SetTargetFrequency(ticksPerSecond uint32) {
	if ticksPerSecond == 0 {
		g.targetIntervalNs = defaultIntervalNs
		return
	}
	g.targetIntervalNs = int64(time.Second) / int64(ticksPerSecond)
}

// TargetInterval returns the nominal inter-tick interval.
func (g *Generator) TargetInterval() time.Duration {
	return time.Duration(g.targetIntervalNs)
}

// Generate synthesizes one tick: pick a symbol by activity weight, walk its
// price, synthesize spread/volume/venue, commit the new price, and emit.
func (g *Generator) Generate() (MarketTick, error) {
	start := time.Now()

	if g.uni.NumSymbols() == 0 || g.uni.NumVenues() == 0 {
		return MarketTick{}, ErrEmptyUniverse
	}
	totalWeight := g.uni.TotalWeight()
	if totalWeight == 0 {
		return MarketTick{}, ErrZeroWeight
	}

	// weighted selection: first cumulative boundary past the draw wins,
	// which breaks ties toward the lower index
	randomWeight, err := g.rng.UintRange(0, totalWeight-1)
	if err != nil {
		return MarketTick{}, fmt.Errorf("tickgen: weight draw: %w", err)
	}
	selected := 0
	var cumulative uint32
	for i := 0; i < g.uni.NumSymbols(); i++ {
		cumulative += g.uni.Symbol(i).TickMultiplier
		if randomWeight < cumulative {
			selected = i
			break
		}
	}
	sym := g.uni.Symbol(selected)

	// price random walk with trend bias and a hard floor
	delta := g.rng.Float64(-sym.Volatility*0.01, sym.Volatility*0.01)
	delta += sym.PriceTrend * 0.001

	newPrice := sym.CurrentPrice * (1.0 + delta)
	if newPrice < 0.01 {
		newPrice = 0.01
	}

	// expensive names quote wider
	spreadBps := g.rng.Float64(0.5, 3.0)
	if sym.CurrentPrice > 500.0 {
		spreadBps *= 2.0
	}

	spreadDollars := (spreadBps / 10000.0) * newPrice
	bidPrice := newPrice - spreadDollars*0.5
	askPrice := newPrice + spreadDollars*0.5

	volume, err := g.rng.UintRange(
		uint32(float64(sym.AvgVolume)*0.1),
		uint32(float64(sym.AvgVolume)*2.0),
	)
	if err != nil {
		return MarketTick{}, fmt.Errorf("tickgen: volume draw: %w", err)
	}

	venueIdx, err := g.rng.UintRange(0, uint32(g.uni.NumVenues()-1))
	if err != nil {
		return MarketTick{}, fmt.Errorf("tickgen: venue draw: %w", err)
	}

	bidSize, _ := g.rng.UintRange(100, 10000)
	askSize, _ := g.rng.UintRange(100, 10000)

	// the only mutation of shared symbol state per call
	sym.CurrentPrice = newPrice
	sym.LastUpdateNs = time.Now().UnixNano()

	tick := MarketTick{
		TimestampNs: sym.LastUpdateNs,
		SymbolID:    uint32(selected),
		BidPrice:    bidPrice,
		AskPrice:    askPrice,
		BidSize:     bidSize,
		AskSize:     askSize,
		LastPrice:   newPrice,
		Volume:      volume,
		VenueID:     uint8(venueIdx),
		SpreadBps:   spreadBps,
	}

	g.stats.totalTicks.Add(1)
	g.stats.timeNs.Add(uint64(time.Since(start).Nanoseconds()))

	return tick, nil
}

// GenerateBatch allocates and fills a batch of count ticks.
func (g *Generator) GenerateBatch(count int) ([]MarketTick, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: requested %d", ErrShortBuffer, count)
	}
	out := make([]MarketTick, count)
	if err := g.FillBatch(out, count); err != nil {
		return nil, err
	}
	return out, nil
}

// FillBatch fills dst with count ticks and rewrites every timestamp after
// the first to previous + target interval + jitter in [0, interval/10], so
// batch pacing is synthetic and independent of generation wall time.
func (g *Generator) FillBatch(dst []MarketTick, count int) error {
	if count <= 0 || len(dst) < count {
		return fmt.Errorf("%w: have %d, want %d", ErrShortBuffer, len(dst), count)
	}
	start := time.Now()

	for i := 0; i < count; i++ {
		tick, err := g.Generate()
		if err != nil {
			return err
		}
		dst[i] = tick

		if i > 0 {
			jitter, jerr := g.rng.UintRange(0, uint32(g.targetIntervalNs/10))
			if jerr != nil {
				return fmt.Errorf("tickgen: jitter draw: %w", jerr)
			}
			dst[i].TimestampNs = dst[i-1].TimestampNs + g.targetIntervalNs + int64(jitter)
		}
	}

	g.stats.timeNs.Add(uint64(time.Since(start).Nanoseconds()))
	return nil
}

// UpdateSymbolVolatility overrides one symbol's volatility coefficient.
func (g *Generator) UpdateSymbolVolatility(idx int, vol float64) error {
	if idx < 0 || idx >= g.uni.NumSymbols() {
		return fmt.Errorf("tickgen: symbol index %d out of range", idx)
	}
	g.uni.Symbol(idx).Volatility = vol
	return nil
}

// UpdateSymbolPrice overrides one symbol's current price.
func (g *Generator) UpdateSymbolPrice(idx int, price float64) error {
	if idx < 0 || idx >= g.uni.NumSymbols() {
		return fmt.Errorf("tickgen: symbol index %d out of range", idx)
	}
	g.uni.Symbol(idx).CurrentPrice = price
	return nil
}
