// Package features converts ticks plus a bounded trailing history into
// fixed ML feature vectors: momentum, rolling volatility, liquidity, and
// venue preference.
package features

import (
	"math"
	"time"

	"github.com/tickforge/tickforge/internal/tickgen"
)

// windowSize caps how much trailing history feeds the rolling stats.
const windowSize = 10

// momentumLookback is how far back inside the window the momentum baseline
// sits. Windows shorter than this leave momentum at zero.
const momentumLookback = 5

// featuresPerTick is the number of feature calculations charged to the
// bookkeeping counter per processed tick.
const featuresPerTick = 7

// Default feature values for the history-less path.
const (
	defaultVolumeRatio = 1.0
	baselineVolatility = 0.02
)

// MLFeatures is the derived per-tick feature vector. It is a plain value
// with no ownership relation to the tick beyond the copied timestamp.
type MLFeatures struct {
	PriceChange     float64 `json:"price_change"`
	VolumeRatio     float64 `json:"volume_ratio"`
	SpreadBps       float64 `json:"spread_bps"`
	Volatility5Min  float64 `json:"volatility_5min"`
	Momentum1Min    float64 `json:"momentum_1min"`
	LiquidityScore  float64 `json:"liquidity_score"`
	VenuePreference float64 `json:"venue_preference"`
	TimestampNs     int64   `json:"timestamp_ns"`
}

// Extractor computes feature vectors. It is stateless with respect to its
// inputs; the only shared state is the atomic bookkeeping counters, so
// concurrent Process calls are safe as long as each call's history slice is
// not mutated underneath it.
type Extractor struct {
	stats procCounters
}

// NewExtractor creates an extractor with zeroed counters.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Process derives the feature vector for one tick given its trailing
// history (oldest first). With one entry or less of history the rolling
// features take their documented defaults.
func (e *Extractor) Process(tick tickgen.MarketTick, history []tickgen.MarketTick) MLFeatures {
	start := time.Now()

	f := MLFeatures{
		TimestampNs:     tick.TimestampNs,
		SpreadBps:       tick.SpreadBps,
		LiquidityScore:  math.Log(float64(tick.BidSize) + float64(tick.AskSize) + 1),
		VenuePreference: float64(tick.VenueID) / 10.0,
	}

	if len(history) > 1 {
		window := history
		if len(window) > windowSize {
			window = window[len(window)-windowSize:]
		}

		var priceSum, volumeSum float64
		for _, h := range window {
			priceSum += h.LastPrice
			volumeSum += float64(h.Volume)
		}
		avgPrice := priceSum / float64(len(window))
		avgVolume := volumeSum / float64(len(window))

		// the generator's price floor makes a zero average unreachable in
		// practice, but a degenerate history must not produce non-finite
		// ratios
		if avgPrice != 0 {
			f.PriceChange = (tick.LastPrice - avgPrice) / avgPrice
		}
		f.VolumeRatio = float64(tick.Volume) / math.Max(avgVolume, 1.0)

		var varianceSum float64
		for _, h := range window {
			diff := h.LastPrice - avgPrice
			varianceSum += diff * diff
		}
		f.Volatility5Min = math.Sqrt(varianceSum / float64(len(window)))

		// momentum needs the full lookback inside the window, not merely a
		// non-empty history
		if len(window) >= momentumLookback {
			oldPrice := window[len(window)-momentumLookback].LastPrice
			if oldPrice != 0 {
				f.Momentum1Min = (tick.LastPrice - oldPrice) / oldPrice
			}
		}
	} else {
		f.PriceChange = 0
		f.VolumeRatio = defaultVolumeRatio
		f.Volatility5Min = baselineVolatility
		f.Momentum1Min = 0
	}

	e.stats.ticksProcessed.Add(1)
	e.stats.timeNs.Add(uint64(time.Since(start).Nanoseconds()))
	e.stats.featureCalcs.Add(featuresPerTick)

	return f
}

// ProcessBatch runs Process over each tick against the shared history. This
// is the scalar fallback for the batch kernel contract; an accelerated
// implementation must produce identical vectors.
func (e *Extractor) ProcessBatch(ticks []tickgen.MarketTick, history []tickgen.MarketTick) []MLFeatures {
	out := make([]MLFeatures, len(ticks))
	for i, tick := range ticks {
		out[i] = e.Process(tick, history)
	}
	return out
}
