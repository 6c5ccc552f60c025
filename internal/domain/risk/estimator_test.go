package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickforge/tickforge/internal/domain/features"
)

func nominalFeatures() features.MLFeatures {
	return features.MLFeatures{
		PriceChange:    0.01,
		VolumeRatio:    1.0,
		SpreadBps:      2.0,
		Volatility5Min: 0.05,
		Momentum1Min:   0.0,
	}
}

func TestEvaluate_Formulas(t *testing.T) {
	f := nominalFeatures()

	m := Evaluate(f, 100)

	assert.InDelta(t, 100*0.05*1000.0, m.PositionRisk, 1e-9)
	assert.InDelta(t, 100*2.0*0.1, m.MarketImpactEstimate, 1e-9)
	assert.InDelta(t, 100*(2.0*0.5+0.5), m.ExecutionCostEstimate, 1e-9)
}

func TestEvaluate_NegativePositionUsesMagnitude(t *testing.T) {
	f := nominalFeatures()

	long := Evaluate(f, 100)
	short := Evaluate(f, -100)

	assert.Equal(t, long, short, "risk is direction-agnostic")
}

func TestEvaluate_LimitBreaches(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*features.MLFeatures)
		position float64
		breach   bool
	}{
		{
			name:     "nominal stays under limits",
			mutate:   func(*features.MLFeatures) {},
			position: 100,
			breach:   false,
		},
		{
			name:     "volatility above 0.10 trips alone",
			mutate:   func(f *features.MLFeatures) { f.Volatility5Min = 0.11 },
			position: 1, // keeps position risk far below 10000
			breach:   true,
		},
		{
			name:     "price change above 0.05 trips alone",
			mutate:   func(f *features.MLFeatures) { f.PriceChange = 0.06 },
			position: 1,
			breach:   true,
		},
		{
			name:     "negative price change uses magnitude",
			mutate:   func(f *features.MLFeatures) { f.PriceChange = -0.06 },
			position: 1,
			breach:   true,
		},
		{
			name:     "position risk above 10000 trips alone",
			mutate:   func(*features.MLFeatures) {},
			position: 300, // 300 * 0.05 * 1000 = 15000
			breach:   true,
		},
		{
			name:     "thresholds are strict inequalities",
			mutate:   func(f *features.MLFeatures) { f.Volatility5Min = 0.10; f.PriceChange = 0.05 },
			position: 1,
			breach:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := nominalFeatures()
			tc.mutate(&f)
			m := Evaluate(f, tc.position)
			assert.Equal(t, tc.breach, m.LimitExceeded)
		})
	}
}

func TestEstimator_CustomLimits(t *testing.T) {
	e := NewEstimator(Limits{MaxPositionRisk: 1.0, MaxPriceChange: 1.0, MaxVolatility: 1.0})
	m := e.Evaluate(nominalFeatures(), 100)
	assert.True(t, m.LimitExceeded, "tightened position-risk limit trips")
}

func TestEvaluate_ZeroPosition(t *testing.T) {
	m := Evaluate(nominalFeatures(), 0)
	assert.Zero(t, m.PositionRisk)
	assert.Zero(t, m.MarketImpactEstimate)
	assert.Zero(t, m.ExecutionCostEstimate)
	assert.False(t, m.LimitExceeded)
}
