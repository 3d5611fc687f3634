package config

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// PenaltyStructure defines the tiered penalty rules for one severity level.
// Structures are immutable process-wide constants; a nil bound means
// unbounded on that side.
type PenaltyStructure struct {
	BaseFine          decimal.Decimal
	RevenuePercentage decimal.Decimal
	MinFine           *decimal.Decimal
	MaxFine           *decimal.Decimal
	RepeatMultiplier  float64
	WillfulMultiplier float64
}

// PenaltyTable maps each severity level to its penalty structure
type PenaltyTable map[types.SeverityLevel]PenaltyStructure

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func amountPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultPenaltyTable returns the built-in severity tier table. Callers
// must treat the returned table as read-only.
func DefaultPenaltyTable() PenaltyTable {
	return PenaltyTable{
		types.SeverityMinor: {
			BaseFine:          amount(25_000),
			RevenuePercentage: decimal.NewFromFloat(0.0005),
			MinFine:           amountPtr(10_000),
			MaxFine:           amountPtr(250_000),
			RepeatMultiplier:  1.5,
			WillfulMultiplier: 2.0,
		},
		types.SeverityModerate: {
			BaseFine:          amount(100_000),
			RevenuePercentage: decimal.NewFromFloat(0.002),
			MinFine:           amountPtr(50_000),
			MaxFine:           amountPtr(2_000_000),
			RepeatMultiplier:  1.5,
			WillfulMultiplier: 2.0,
		},
		types.SeverityMajor: {
			BaseFine:          amount(500_000),
			RevenuePercentage: decimal.NewFromFloat(0.01),
			MinFine:           amountPtr(100_000),
			MaxFine:           amountPtr(10_000_000),
			RepeatMultiplier:  2.0,
			WillfulMultiplier: 2.5,
		},
		types.SeverityCritical: {
			BaseFine:          amount(1_000_000),
			RevenuePercentage: decimal.NewFromFloat(0.02),
			MinFine:           amountPtr(250_000),
			MaxFine:           amountPtr(50_000_000),
			RepeatMultiplier:  2.0,
			WillfulMultiplier: 3.0,
		},
	}
}

// Validate checks that the table covers every severity level with sane values
func (t PenaltyTable) Validate() error {
	for _, level := range types.AllSeverityLevels() {
		s, ok := t[level]
		if !ok {
			return goerr.New("penalty table missing severity level",
				goerr.V("severity", level))
		}
		if s.BaseFine.IsNegative() {
			return goerr.New("base fine must not be negative",
				goerr.V("severity", level))
		}
		if s.RevenuePercentage.IsNegative() {
			return goerr.New("revenue percentage must not be negative",
				goerr.V("severity", level))
		}
		if s.MinFine != nil && s.MaxFine != nil && s.MinFine.GreaterThan(*s.MaxFine) {
			return goerr.New("min fine exceeds max fine", goerr.V("severity", level))
		}
		if s.RepeatMultiplier < 1 || s.WillfulMultiplier < 1 {
			return goerr.New("structural multipliers must be at least 1",
				goerr.V("severity", level))
		}
	}
	return nil
}

// OverallCapFraction is the default cumulative penalty cap as a fraction
// of annual revenue.
const OverallCapFraction = 0.02
