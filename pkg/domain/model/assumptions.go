package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// FinancialAssumptions carries the rates and horizon used by every
// discounting computation. A result embeds a copy of the assumptions that
// produced it, so the instance must not be mutated after use.
type FinancialAssumptions struct {
	DiscountRate        float64
	RiskFreeRate        float64
	InflationRate       float64
	TaxRate             float64
	AnalysisPeriodYears int
	Currency            string
}

// DefaultAssumptions returns the process-wide default assumption set
func DefaultAssumptions() FinancialAssumptions {
	return FinancialAssumptions{
		DiscountRate:        0.08,
		RiskFreeRate:        0.03,
		InflationRate:       0.02,
		TaxRate:             0.25,
		AnalysisPeriodYears: 5,
		Currency:            "EUR",
	}
}

// Validate checks the assumption set before it is used
func (a *FinancialAssumptions) Validate() error {
	if a.DiscountRate <= -1 {
		return goerr.New("discount rate must be greater than -100%",
			goerr.V("discount_rate", a.DiscountRate))
	}
	if a.TaxRate < 0 || a.TaxRate >= 1 {
		return goerr.New("tax rate must be in [0,1)", goerr.V("tax_rate", a.TaxRate))
	}
	if a.AnalysisPeriodYears < 1 {
		return goerr.New("analysis period must be at least one year",
			goerr.V("years", a.AnalysisPeriodYears))
	}
	if a.Currency == "" {
		return goerr.New("currency code is required")
	}
	return nil
}
