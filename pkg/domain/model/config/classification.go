package config

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/shopspring/decimal"
)

// Revenue breakpoints for company size classification
var (
	SizeThresholdMedium   = decimal.NewFromInt(50_000_000)
	SizeThresholdLarge    = decimal.NewFromInt(500_000_000)
	SizeThresholdSystemic = decimal.NewFromInt(5_000_000_000)
)

// Risk profile breakpoints, applied to the base multiplier (the
// pre-size/profile form of the composite risk multiplier).
const (
	ProfileThresholdMedium   = 0.8
	ProfileThresholdHigh     = 1.2
	ProfileThresholdCritical = 1.6
)

var sizeMultipliers = map[types.CompanySizeClass]float64{
	types.SizeSmall:    0.8,
	types.SizeMedium:   1.0,
	types.SizeLarge:    1.25,
	types.SizeSystemic: 1.5,
}

var profileMultipliers = map[types.RiskProfileClass]float64{
	types.ProfileLow:      0.9,
	types.ProfileMedium:   1.0,
	types.ProfileHigh:     1.15,
	types.ProfileCritical: 1.3,
}

// ClassifySize derives the company size class from annual revenue
func ClassifySize(revenue decimal.Decimal) types.CompanySizeClass {
	switch {
	case revenue.GreaterThanOrEqual(SizeThresholdSystemic):
		return types.SizeSystemic
	case revenue.GreaterThanOrEqual(SizeThresholdLarge):
		return types.SizeLarge
	case revenue.GreaterThanOrEqual(SizeThresholdMedium):
		return types.SizeMedium
	default:
		return types.SizeSmall
	}
}

// ClassifyProfile derives the risk profile class from the base multiplier
func ClassifyProfile(baseMultiplier float64) types.RiskProfileClass {
	switch {
	case baseMultiplier >= ProfileThresholdCritical:
		return types.ProfileCritical
	case baseMultiplier >= ProfileThresholdHigh:
		return types.ProfileHigh
	case baseMultiplier >= ProfileThresholdMedium:
		return types.ProfileMedium
	default:
		return types.ProfileLow
	}
}

// SizeMultiplier returns the penalty multiplier for a size class
func SizeMultiplier(c types.CompanySizeClass) float64 {
	return sizeMultipliers[c]
}

// ProfileMultiplier returns the penalty multiplier for a profile class
func ProfileMultiplier(p types.RiskProfileClass) float64 {
	return profileMultipliers[p]
}
