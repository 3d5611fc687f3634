package finmetrics

import (
	"math"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
)

// IRROptions parameterizes the Newton-Raphson solver. The solver is a pure
// function of its inputs: no shared state survives a call.
type IRROptions struct {
	InitialGuess  float64
	MaxIterations int
	// Tolerance bounds both the NPV residual and the derivative guard
	Tolerance float64
	MinRate   float64
	MaxRate   float64
}

// DefaultIRROptions returns the standard solver parameters
func DefaultIRROptions() IRROptions {
	return IRROptions{
		InitialGuess:  0.10,
		MaxIterations: 1000,
		Tolerance:     1e-6,
		MinRate:       -0.99,
		MaxRate:       10.0,
	}
}

// IRR solves NPV(rate) = 0 by Newton-Raphson iteration. When the solver
// cannot converge, the result is reported unavailable; a bogus rate is
// never returned.
func IRR(flows []model.CashFlowItem, opts IRROptions) model.RateResult {
	if len(flows) == 0 {
		return model.RateResult{}
	}
	net := netFloats(flows)

	rate := opts.InitialGuess
	for i := 0; i < opts.MaxIterations; i++ {
		value := npvFloat(net, rate)
		if math.Abs(value) < opts.Tolerance {
			return model.RateResult{Rate: rate, Available: true}
		}

		derivative := npvDerivative(net, rate)
		if math.Abs(derivative) < opts.Tolerance {
			// Flat region: stepping would divide by a near-zero number.
			return model.RateResult{}
		}

		rate -= value / derivative
		if rate < opts.MinRate {
			rate = opts.MinRate
		} else if rate > opts.MaxRate {
			rate = opts.MaxRate
		}
	}

	if math.Abs(npvFloat(net, rate)) < opts.Tolerance {
		return model.RateResult{Rate: rate, Available: true}
	}
	return model.RateResult{}
}

func npvDerivative(net []float64, rate float64) float64 {
	var d float64
	for year, amount := range net {
		if year == 0 {
			continue
		}
		d -= float64(year) * amount / math.Pow(1+rate, float64(year+1))
	}
	return d
}

// MIRR computes the Modified IRR: negative flows are financed at the
// finance rate, positive flows reinvested at the reinvestment rate.
// Unavailable when there are no negative flows, no positive future value,
// or the horizon is zero.
func MIRR(flows []model.CashFlowItem, financeRate, reinvestRate float64) model.RateResult {
	if len(flows) == 0 {
		return model.RateResult{}
	}
	net := netFloats(flows)
	horizon := len(net) - 1
	if horizon == 0 {
		return model.RateResult{}
	}

	var presentNegative, futurePositive float64
	for year, amount := range net {
		switch {
		case amount < 0:
			presentNegative += amount / math.Pow(1+financeRate, float64(year))
		case amount > 0:
			futurePositive += amount * math.Pow(1+reinvestRate, float64(horizon-year))
		}
	}

	if presentNegative == 0 || futurePositive <= 0 {
		return model.RateResult{}
	}

	mirr := math.Pow(futurePositive/math.Abs(presentNegative), 1/float64(horizon)) - 1
	return model.RateResult{Rate: mirr, Available: true}
}
