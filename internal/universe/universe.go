// Package universe holds the static instrument and venue state the tick
// generator draws from: per-symbol price/volatility/weight state and the
// venue fee/latency table.
package universe

import (
	"github.com/tickforge/tickforge/internal/fastrand"
)

const (
	// MaxSymbols bounds the symbol table; extra entries are truncated.
	MaxSymbols = 64
	// MaxVenues bounds the venue table; extra entries are truncated.
	MaxVenues = 8
)

// VenueInfo describes one simulated trading destination. Immutable after
// initialization.
type VenueInfo struct {
	Name          string  `yaml:"name" json:"name"`
	MakerFee      float64 `yaml:"maker_fee" json:"maker_fee"`
	TakerFee      float64 `yaml:"taker_fee" json:"taker_fee"`
	Rebate        float64 `yaml:"rebate" json:"rebate"`
	BaseLatencyUs uint32  `yaml:"base_latency_us" json:"base_latency_us"`
	JitterRangeUs uint32  `yaml:"jitter_range_us" json:"jitter_range_us"`
}

// SymbolState is the mutable per-instrument state. It is owned by the tick
// generator; only the selected symbol's CurrentPrice and LastUpdateNs change
// per generated tick.
type SymbolState struct {
	Name           string
	CurrentPrice   float64
	Volatility     float64
	AvgVolume      uint32
	TickMultiplier uint32
	LastUpdateNs   int64
	PriceTrend     float64
}

// Config is the full initialization input: symbol names, venue table, and
// the positional base-price and activity-weight tables. Tables shorter than
// the symbol list fall back to defaults per entry.
type Config struct {
	Symbols         []string
	Venues          []VenueInfo
	BasePrices      []float64
	TickMultipliers []uint32
}

// Universe is the bounded symbol/venue store. Fixed capacity, never resized
// at runtime; re-initialization fully replaces prior state.
type Universe struct {
	symbols    [MaxSymbols]SymbolState
	venues     [MaxVenues]VenueInfo
	numSymbols int
	numVenues  int
}

// Initialize populates the universe from cfg, silently truncating oversized
// symbol and venue lists. Volatility, average volume, and trend bias are
// drawn from rng; base price and activity weight come from the positional
// tables with 100.0 / 3 fallbacks.
func (u *Universe) Initialize(cfg Config, rng *fastrand.Source) {
	u.numSymbols = len(cfg.Symbols)
	if u.numSymbols > MaxSymbols {
		u.numSymbols = MaxSymbols
	}
	u.numVenues = len(cfg.Venues)
	if u.numVenues > MaxVenues {
		u.numVenues = MaxVenues
	}

	for i := 0; i < u.numSymbols; i++ {
		basePrice := 100.0
		if i < len(cfg.BasePrices) {
			basePrice = cfg.BasePrices[i]
		}
		multiplier := uint32(3)
		if i < len(cfg.TickMultipliers) {
			multiplier = cfg.TickMultipliers[i]
		}
		// constant bounds, the draw cannot fail
		avgVolume, _ := rng.UintRange(10000, 100000)

		u.symbols[i] = SymbolState{
			Name:           cfg.Symbols[i],
			CurrentPrice:   basePrice,
			Volatility:     rng.Float64(0.15, 0.45),
			AvgVolume:      avgVolume,
			TickMultiplier: multiplier,
			LastUpdateNs:   0,
			PriceTrend:     rng.Float64(-0.02, 0.02),
		}
	}
	// clear anything left over from a previous, larger universe
	for i := u.numSymbols; i < MaxSymbols; i++ {
		u.symbols[i] = SymbolState{}
	}

	for i := 0; i < u.numVenues; i++ {
		u.venues[i] = cfg.Venues[i]
	}
	for i := u.numVenues; i < MaxVenues; i++ {
		u.venues[i] = VenueInfo{}
	}
}

// NumSymbols returns the initialized symbol count.
func (u *Universe) NumSymbols() int { return u.numSymbols }

// NumVenues returns the initialized venue count.
func (u *Universe) NumVenues() int { return u.numVenues }

// Symbol returns mutable per-symbol state. The caller owns mutation
// discipline; index must be < NumSymbols().
func (u *Universe) Symbol(i int) *SymbolState { return &u.symbols[i] }

// Venue returns the venue at index i; index must be < NumVenues().
func (u *Universe) Venue(i int) VenueInfo { return u.venues[i] }

// TotalWeight sums the activity weights of every initialized symbol.
func (u *Universe) TotalWeight() uint32 {
	var total uint32
	for i := 0; i < u.numSymbols; i++ {
		total += u.symbols[i].TickMultiplier
	}
	return total
}
