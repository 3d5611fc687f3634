package finmetrics

import (
	"math"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
)

// SimplePayback accumulates undiscounted flows year by year and returns
// the fractional year at which the running total first becomes
// non-negative. Within the breakeven year the position is linearly
// interpolated against the flow that caused the sign change.
func SimplePayback(flows []model.CashFlowItem) model.PaybackResult {
	return payback(netFloats(flows))
}

// DiscountedPayback runs the same algorithm over present-valued flows
func DiscountedPayback(flows []model.CashFlowItem, rate float64) model.PaybackResult {
	net := netFloats(flows)
	for year := range net {
		net[year] /= math.Pow(1+rate, float64(year))
	}
	return payback(net)
}

func payback(net []float64) model.PaybackResult {
	if len(net) == 0 {
		return model.PaybackResult{Never: true}
	}

	cumulative := 0.0
	for year, amount := range net {
		previous := cumulative
		cumulative += amount
		if cumulative < 0 {
			continue
		}
		if year == 0 || amount <= 0 {
			return model.PaybackResult{Years: float64(year)}
		}
		// previous is negative here; the fraction of the year needed to
		// cover it is -previous/amount.
		return model.PaybackResult{Years: float64(year-1) + (-previous)/amount}
	}
	return model.PaybackResult{Never: true}
}
