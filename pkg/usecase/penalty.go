package usecase

import (
	"context"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model/config"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/penalty"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/riskadj"
	"github.com/enricoaquilina/dora-finrisk/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// PenaltyAssessment is the combined exposure picture: the capped penalty
// aggregate, and when risk factors were supplied, the risk-adjusted total.
type PenaltyAssessment struct {
	Penalty        *model.CumulativePenalty
	RiskAdjustment *model.RiskAdjustment

	// AdjustedTotal is the capped total scaled by the total risk
	// multiplier; equal to the capped total when no factors were supplied.
	AdjustedTotal decimal.Decimal
}

// AssessInput describes one penalty exposure assessment
type AssessInput struct {
	Violations    []model.ViolationRecord
	AnnualRevenue decimal.Decimal

	// RiskFactors enables risk-adjusted exposure when present
	RiskFactors *model.RiskFactors

	// CapFraction defaults to the regulatory overall cap when zero
	CapFraction float64
}

type PenaltyUseCase struct {
	aggregator *penalty.Aggregator
	risk       *riskadj.Engine
}

func NewPenaltyUseCase(aggregator *penalty.Aggregator, risk *riskadj.Engine) *PenaltyUseCase {
	return &PenaltyUseCase{
		aggregator: aggregator,
		risk:       risk,
	}
}

// Assess computes the capped penalty aggregate and, when risk factors are
// supplied, scales the capped total by the composite risk multiplier.
func (uc *PenaltyUseCase) Assess(ctx context.Context, in AssessInput) (*PenaltyAssessment, error) {
	capFraction := in.CapFraction
	if capFraction == 0 {
		capFraction = config.OverallCapFraction
	}

	aggregate, err := uc.aggregator.Aggregate(in.Violations, in.AnnualRevenue, capFraction)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to aggregate penalties")
	}

	assessment := &PenaltyAssessment{
		Penalty:       aggregate,
		AdjustedTotal: aggregate.CappedTotal,
	}

	if in.RiskFactors != nil {
		adjustment, err := uc.risk.Adjust(*in.RiskFactors, in.AnnualRevenue)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to compute risk adjustment")
		}
		assessment.RiskAdjustment = adjustment
		assessment.AdjustedTotal = aggregate.CappedTotal.
			Mul(decimal.NewFromFloat(adjustment.TotalMultiplier)).Round(2)
	}

	logging.From(ctx).Info("penalty exposure assessed",
		"violations", len(in.Violations),
		"capped_total", aggregate.CappedTotal.String(),
		"cap_applied", aggregate.CapApplied,
		"risk_adjusted", in.RiskFactors != nil,
	)

	return assessment, nil
}
