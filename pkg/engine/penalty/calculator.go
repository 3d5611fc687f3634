package penalty

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model/config"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// Calculator maps a single violation plus company revenue to a monetary
// penalty using the tiered severity table.
type Calculator struct {
	table config.PenaltyTable
}

// NewCalculator creates a Calculator backed by the given penalty table
func NewCalculator(table config.PenaltyTable) (*Calculator, error) {
	if err := table.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid penalty table")
	}
	return &Calculator{table: table}, nil
}

// Calculate computes the penalty for one violation record. The returned
// breakdown preserves every intermediate value for the audit trail.
func (c *Calculator) Calculate(rec model.ViolationRecord, revenue decimal.Decimal) (*model.PenaltyBreakdown, error) {
	if !revenue.IsPositive() {
		return nil, goerr.Wrap(model.ErrInvalidRevenue, "cannot calculate penalty",
			goerr.V("revenue", revenue))
	}
	if err := rec.Validate(); err != nil {
		return nil, goerr.Wrap(err, "cannot calculate penalty")
	}

	severity := rec.Severity()
	structure := c.table[severity]

	percentage := revenue.Mul(structure.RevenuePercentage)
	base := decimal.Max(structure.BaseFine, percentage)
	base = clamp(base, structure.MinFine, structure.MaxFine)

	final := base
	var applied []model.AppliedMultiplier
	apply := func(label string, m float64) {
		final = final.Mul(decimal.NewFromFloat(m))
		applied = append(applied, model.AppliedMultiplier{Label: label, Multiplier: m})
	}
	if rec.IsRepeat {
		apply("repeat", structure.RepeatMultiplier)
	}
	if rec.IsWillful {
		apply("willful", structure.WillfulMultiplier)
	}
	for _, f := range rec.CustomFactors {
		apply(f.Label, f.Multiplier)
	}
	postMultiplier := final

	// The cap is re-applied after multipliers. Egregious violations
	// (critical and repeat or willful) are clamped against a doubled cap.
	capDoubled := false
	if structure.MaxFine != nil {
		limit := *structure.MaxFine
		if severity == types.SeverityCritical && (rec.IsRepeat || rec.IsWillful) {
			limit = limit.Mul(decimal.NewFromInt(2))
			capDoubled = true
		}
		final = decimal.Min(final, limit)
	}

	pctOfRevenue, _ := final.Div(revenue).Mul(decimal.NewFromInt(100)).Float64()

	return &model.PenaltyBreakdown{
		Type:              rec.Type,
		Severity:          severity,
		BaseFine:          structure.BaseFine,
		PercentagePenalty: percentage,
		PreMultiplier:     base,
		Multipliers:       applied,
		PostMultiplier:    postMultiplier,
		CapDoubled:        capDoubled,
		FinalAmount:       final,
		PercentOfRevenue:  pctOfRevenue,
	}, nil
}

func clamp(v decimal.Decimal, min, max *decimal.Decimal) decimal.Decimal {
	if min != nil && v.LessThan(*min) {
		return *min
	}
	if max != nil && v.GreaterThan(*max) {
		return *max
	}
	return v
}
