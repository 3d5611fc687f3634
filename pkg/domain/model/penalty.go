package model

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/shopspring/decimal"
)

// AppliedMultiplier records one multiplier applied during penalty
// calculation, labeled for the audit trail.
type AppliedMultiplier struct {
	Label      string
	Multiplier float64
}

// PenaltyBreakdown is the full audit record of a single violation's penalty
// calculation. Every intermediate value is preserved.
type PenaltyBreakdown struct {
	Type              types.ViolationType
	Severity          types.SeverityLevel
	BaseFine          decimal.Decimal
	PercentagePenalty decimal.Decimal
	// PreMultiplier is max(base fine, percentage penalty) after the
	// structural min/max clamp.
	PreMultiplier      decimal.Decimal
	Multipliers        []AppliedMultiplier
	PostMultiplier     decimal.Decimal
	CapDoubled         bool
	FinalAmount        decimal.Decimal
	PercentOfRevenue   float64
}

// CumulativePenalty aggregates the penalties of a set of violations under
// an overall revenue-percentage cap.
type CumulativePenalty struct {
	Breakdowns  []*PenaltyBreakdown
	UncappedSum decimal.Decimal
	Cap         decimal.Decimal
	CapFraction float64
	CappedTotal decimal.Decimal
	CapApplied  bool
	CapSavings  decimal.Decimal
}
