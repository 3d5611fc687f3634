package model

import (
	"github.com/shopspring/decimal"
)

// RateResult is a solved rate that may be unavailable when the solver does
// not converge. An unavailable result carries no rate.
type RateResult struct {
	Rate      float64
	Available bool
}

// PaybackResult is a payback period in fractional years, or Never when the
// cumulative flow stays negative across the whole horizon.
type PaybackResult struct {
	Years float64
	Never bool
}

// InvestmentMetrics holds the capital-budgeting metrics of one analysis
type InvestmentMetrics struct {
	NPV               decimal.Decimal
	IRR               RateResult
	MIRR              RateResult
	SimplePayback     PaybackResult
	DiscountedPayback PaybackResult

	// ROIPercent is net benefit over cost, as a 0-100 style percentage
	ROIPercent              float64
	ProfitabilityIndex      float64
	EquivalentAnnualAnnuity decimal.Decimal
}
