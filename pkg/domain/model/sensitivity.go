package model

import (
	"github.com/shopspring/decimal"
)

// SweepPoint is one perturbation of a single variable and the NPV it yields
type SweepPoint struct {
	PercentChange float64
	NPV           decimal.Decimal
}

// VariableSweep is the full one-at-a-time sweep of one input variable
type VariableSweep struct {
	Variable string
	Points   []SweepPoint
	// Range is max(NPV) - min(NPV) over the sweep; the tornado ordering key
	Range decimal.Decimal
}

// Scenario is one named preset of simultaneous shifts and its NPV
type Scenario struct {
	Name              string
	BenefitShift      float64
	CostShift         float64
	DiscountRateShift float64
	NPV               decimal.Decimal
}

// SensitivityReport holds all sweeps in tornado order plus the scenarios
type SensitivityReport struct {
	// Sweeps are ordered by descending Range (tornado order)
	Sweeps    []VariableSweep
	Scenarios []Scenario
}
