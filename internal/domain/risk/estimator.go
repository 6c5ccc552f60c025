// Package risk turns a feature vector and a hypothetical position size into
// exposure, impact, and cost estimates plus a hard limit-breach flag.
package risk

import (
	"math"

	"github.com/tickforge/tickforge/internal/domain/features"
)

// Metrics is the derived risk estimate for one evaluation. It has no
// persisted identity; every call recomputes it.
type Metrics struct {
	PositionRisk          float64 `json:"position_risk"`
	MarketImpactEstimate  float64 `json:"market_impact_estimate"`
	ExecutionCostEstimate float64 `json:"execution_cost_estimate"`
	LimitExceeded         bool    `json:"limit_exceeded"`
}

// Limits are the breach thresholds. Any single threshold trips the flag;
// there is no graded severity.
type Limits struct {
	MaxPositionRisk float64 `yaml:"max_position_risk"`
	MaxPriceChange  float64 `yaml:"max_price_change"`
	MaxVolatility   float64 `yaml:"max_volatility"`
}

// DefaultLimits are the standard breach thresholds.
var DefaultLimits = Limits{
	MaxPositionRisk: 10000.0,
	MaxPriceChange:  0.05,
	MaxVolatility:   0.10,
}

// Estimator evaluates risk against a fixed set of limits. The zero value is
// not useful; construct with NewEstimator.
type Estimator struct {
	limits Limits
}

// NewEstimator builds an estimator with the given limits.
func NewEstimator(limits Limits) *Estimator {
	return &Estimator{limits: limits}
}

// Evaluate computes risk metrics for holding positionSize units given the
// current features. Pure function: no shared state, no side effects.
func (e *Estimator) Evaluate(f features.MLFeatures, positionSize float64) Metrics {
	size := math.Abs(positionSize)

	m := Metrics{
		PositionRisk:          size * f.Volatility5Min * 1000.0,
		MarketImpactEstimate:  size * f.SpreadBps * 0.1,
		ExecutionCostEstimate: size * (f.SpreadBps*0.5 + 0.5),
	}
	m.LimitExceeded = m.PositionRisk > e.limits.MaxPositionRisk ||
		math.Abs(f.PriceChange) > e.limits.MaxPriceChange ||
		f.Volatility5Min > e.limits.MaxVolatility

	return m
}

// Evaluate computes risk metrics against the default limits.
func Evaluate(f features.MLFeatures, positionSize float64) Metrics {
	return NewEstimator(DefaultLimits).Evaluate(f, positionSize)
}
