package finmetrics

import (
	"math"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// NPV discounts a cash flow series to present value at the given rate.
// Amounts stay in decimal; only the discount factors are computed in
// binary floating point.
func NPV(flows []model.CashFlowItem, rate float64) (decimal.Decimal, error) {
	if len(flows) == 0 {
		return decimal.Zero, goerr.Wrap(model.ErrEmptyCashFlows, "cannot compute NPV")
	}
	if rate <= -1 {
		return decimal.Zero, goerr.New("discount rate must be greater than -100%",
			goerr.V("rate", rate))
	}

	net := model.NetByYear(flows)
	var npv decimal.Decimal
	for year, amount := range net {
		if amount.IsZero() {
			continue
		}
		factor := decimal.NewFromFloat(math.Pow(1+rate, float64(year)))
		npv = npv.Add(amount.Div(factor))
	}
	return npv.Round(2), nil
}

// NPVWithTerminal extends NPV with a Gordon-growth terminal value: all but
// the final year are discounted normally, then the final year's net flow is
// treated as a growing perpetuity at the terminal growth rate, discounted
// back over the full horizon. Requires rate > growth.
func NPVWithTerminal(flows []model.CashFlowItem, rate, growth float64) (decimal.Decimal, error) {
	if len(flows) == 0 {
		return decimal.Zero, goerr.Wrap(model.ErrEmptyCashFlows, "cannot compute NPV")
	}
	if rate <= growth {
		return decimal.Zero, goerr.Wrap(model.ErrTerminalRate, "terminal value undefined",
			goerr.V("rate", rate), goerr.V("growth", growth))
	}
	if rate <= -1 {
		return decimal.Zero, goerr.New("discount rate must be greater than -100%",
			goerr.V("rate", rate))
	}

	net := model.NetByYear(flows)
	horizon := len(net) - 1

	var npv decimal.Decimal
	for year := 0; year < horizon; year++ {
		if net[year].IsZero() {
			continue
		}
		factor := decimal.NewFromFloat(math.Pow(1+rate, float64(year)))
		npv = npv.Add(net[year].Div(factor))
	}

	// Perpetuity value of the final flow, discounted over the horizon.
	terminal := net[horizon].
		Mul(decimal.NewFromFloat(1 + growth)).
		Div(decimal.NewFromFloat(rate - growth))
	discount := decimal.NewFromFloat(math.Pow(1+rate, float64(horizon)))
	npv = npv.Add(terminal.Div(discount))

	return npv.Round(2), nil
}

// netFloats collapses a series into per-year float64 net amounts for the
// iterative solvers, where rate precision dominates amount precision.
func netFloats(flows []model.CashFlowItem) []float64 {
	net := model.NetByYear(flows)
	out := make([]float64, len(net))
	for i, d := range net {
		out[i], _ = d.Float64()
	}
	return out
}

func npvFloat(net []float64, rate float64) float64 {
	var npv float64
	for year, amount := range net {
		npv += amount / math.Pow(1+rate, float64(year))
	}
	return npv
}
