package tickgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickforge/tickforge/internal/universe"
)

func TestGenerate_TicksAreValid(t *testing.T) {
	gen := NewSeeded(1000, 12345)

	for i := 0; i < 10000; i++ {
		tick, err := gen.Generate()
		require.NoError(t, err)

		require.True(t, tick.Valid(), "tick %d: ask must exceed bid, bid must be positive", i)
		require.GreaterOrEqual(t, tick.LastPrice, 0.01, "tick %d: price floor violated", i)
		require.Less(t, int(tick.SymbolID), gen.Universe().NumSymbols())
		require.Less(t, int(tick.VenueID), gen.Universe().NumVenues())
		require.GreaterOrEqual(t, tick.BidSize, uint32(100))
		require.LessOrEqual(t, tick.BidSize, uint32(10000))
		require.GreaterOrEqual(t, tick.AskSize, uint32(100))
		require.LessOrEqual(t, tick.AskSize, uint32(10000))
		require.Greater(t, tick.SpreadBps, 0.0)
		require.NotZero(t, tick.TimestampNs)
	}
}

func TestGenerate_PriceFloorUnderCollapse(t *testing.T) {
	gen := NewSeeded(1000, 99)
	// force a symbol to the floor and keep walking it
	require.NoError(t, gen.UpdateSymbolPrice(0, 0.0100001))

	for i := 0; i < 5000; i++ {
		tick, err := gen.Generate()
		require.NoError(t, err)
		require.GreaterOrEqual(t, tick.LastPrice, 0.01)
	}
}

func TestGenerate_WeightedSelectionFrequency(t *testing.T) {
	gen := NewSeeded(1000, 7)
	gen.Initialize(universe.Config{
		Symbols:         []string{"LIGHT", "HEAVY"},
		Venues:          universe.DefaultVenues,
		TickMultipliers: []uint32{1, 9},
	})

	const draws = 50000
	counts := make([]int, 2)
	for i := 0; i < draws; i++ {
		tick, err := gen.Generate()
		require.NoError(t, err)
		counts[tick.SymbolID]++
	}

	heavyFrac := float64(counts[1]) / draws
	assert.InDelta(t, 0.9, heavyFrac, 0.02, "selection frequency should converge to weight share")
}

func TestGenerate_SymbolStateCommitted(t *testing.T) {
	gen := NewSeeded(1000, 3)

	tick, err := gen.Generate()
	require.NoError(t, err)

	sym := gen.Universe().Symbol(int(tick.SymbolID))
	assert.Equal(t, tick.LastPrice, sym.CurrentPrice, "selected symbol carries the new price")
	assert.Equal(t, tick.TimestampNs, sym.LastUpdateNs)
}

func TestGenerate_EmptyUniverse(t *testing.T) {
	gen := NewSeeded(1000, 3)
	gen.Initialize(universe.Config{})

	_, err := gen.Generate()
	assert.ErrorIs(t, err, ErrEmptyUniverse)
}

func TestGenerate_ZeroWeights(t *testing.T) {
	gen := NewSeeded(1000, 3)
	gen.Initialize(universe.Config{
		Symbols:         []string{"A"},
		Venues:          universe.DefaultVenues,
		TickMultipliers: []uint32{0},
	})

	_, err := gen.Generate()
	assert.ErrorIs(t, err, ErrZeroWeight)
}

func TestFillBatch_Pacing(t *testing.T) {
	gen := NewSeeded(1000, 11) // 1ms target interval
	interval := gen.TargetInterval().Nanoseconds()

	batch, err := gen.GenerateBatch(256)
	require.NoError(t, err)
	require.Len(t, batch, 256)

	for i := 1; i < len(batch); i++ {
		gap := batch[i].TimestampNs - batch[i-1].TimestampNs
		require.GreaterOrEqual(t, gap, interval, "gap %d below target interval", i)
		require.LessOrEqual(t, gap, interval+interval/10, "gap %d above interval + 10%% jitter", i)
	}
}

func TestFillBatch_ShortBuffer(t *testing.T) {
	gen := NewSeeded(1000, 11)

	err := gen.FillBatch(make([]MarketTick, 4), 8)
	assert.ErrorIs(t, err, ErrShortBuffer)

	err = gen.FillBatch(nil, 1)
	assert.ErrorIs(t, err, ErrShortBuffer)

	err = gen.FillBatch(make([]MarketTick, 4), 0)
	assert.ErrorIs(t, err, ErrShortBuffer, "zero-sized requests are invalid, not a silent no-op")
}

func TestGenerateBatch_InvalidCount(t *testing.T) {
	gen := NewSeeded(1000, 11)

	// invalid sizes must come back as errors, never a panic
	batch, err := gen.GenerateBatch(-1)
	assert.ErrorIs(t, err, ErrShortBuffer)
	assert.Nil(t, batch)

	batch, err = gen.GenerateBatch(0)
	assert.ErrorIs(t, err, ErrShortBuffer)
	assert.Nil(t, batch)
}

func TestSetTargetFrequency(t *testing.T) {
	gen := NewSeeded(0, 1)
	assert.Equal(t, time.Millisecond, gen.TargetInterval(), "zero rate falls back to 1ms")

	gen.SetTargetFrequency(200)
	assert.Equal(t, 5*time.Millisecond, gen.TargetInterval())
}

func TestStats_AccumulateAndReset(t *testing.T) {
	gen := NewSeeded(1000, 5)

	for i := 0; i < 100; i++ {
		_, err := gen.Generate()
		require.NoError(t, err)
	}

	s := gen.Stats()
	assert.Equal(t, uint64(100), s.TotalTicks)
	assert.NotZero(t, s.AvgGenerationTimeNs)
	assert.NotZero(t, s.TicksPerSecond)

	gen.ResetCounters()
	s = gen.Stats()
	assert.Zero(t, s.TotalTicks)
	assert.Zero(t, s.AvgGenerationTimeNs)
	assert.Zero(t, s.TicksPerSecond)
	assert.Zero(t, s.CPUEfficiencyPercent)

	// counters reset, universe untouched
	assert.Equal(t, len(universe.DefaultSymbols), gen.Universe().NumSymbols())
}

func TestStats_EmptyGenerator(t *testing.T) {
	gen := NewSeeded(1000, 5)
	s := gen.Stats()
	assert.Zero(t, s.TotalTicks)
	assert.Zero(t, s.AvgGenerationTimeNs)
	assert.Zero(t, s.TicksPerSecond)
}

func TestReproducibility_SameSeedSamePrices(t *testing.T) {
	a := NewSeeded(1000, 424242)
	b := NewSeeded(1000, 424242)

	for i := 0; i < 1000; i++ {
		ta, err := a.Generate()
		require.NoError(t, err)
		tb, err := b.Generate()
		require.NoError(t, err)

		// timestamps are wall clock; everything else must match exactly
		assert.Equal(t, ta.SymbolID, tb.SymbolID)
		assert.Equal(t, ta.LastPrice, tb.LastPrice)
		assert.Equal(t, ta.BidPrice, tb.BidPrice)
		assert.Equal(t, ta.AskPrice, tb.AskPrice)
		assert.Equal(t, ta.Volume, tb.Volume)
		assert.Equal(t, ta.VenueID, tb.VenueID)
		assert.Equal(t, ta.SpreadBps, tb.SpreadBps)
	}
}

func TestUpdateSymbolOverrides(t *testing.T) {
	gen := NewSeeded(1000, 5)

	require.NoError(t, gen.UpdateSymbolVolatility(0, 0.33))
	assert.Equal(t, 0.33, gen.Universe().Symbol(0).Volatility)

	require.NoError(t, gen.UpdateSymbolPrice(0, 250.0))
	assert.Equal(t, 250.0, gen.Universe().Symbol(0).CurrentPrice)

	assert.Error(t, gen.UpdateSymbolVolatility(-1, 0.2))
	assert.Error(t, gen.UpdateSymbolPrice(9999, 1.0))
}

func BenchmarkGenerate(b *testing.B) {
	gen := NewSeeded(1000, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}
