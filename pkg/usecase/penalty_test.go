package usecase_test

import (
	"context"
	"testing"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/enricoaquilina/dora-finrisk/pkg/usecase"
	"github.com/m-mizutani/gt"
	"github.com/shopspring/decimal"
)

func TestAssessCriticalViolation(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	// A 500M company with one critical gap lands exactly on the 2% overall
	// cap: a 10M exposure.
	assessment, err := uc.Penalty.Assess(ctx, usecase.AssessInput{
		Violations: []model.ViolationRecord{
			{Type: types.ViolationResilienceTesting},
		},
		AnnualRevenue: decimal.NewFromInt(500_000_000),
	})
	gt.NoError(t, err).Required()

	gt.Array(t, assessment.Penalty.Breakdowns).Length(1)
	gt.Bool(t, assessment.Penalty.CappedTotal.Equal(decimal.NewFromInt(10_000_000))).True()
	gt.Value(t, assessment.RiskAdjustment).Nil()
	gt.Bool(t, assessment.AdjustedTotal.Equal(assessment.Penalty.CappedTotal)).True()
}

func TestAssessWithRiskFactors(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	// A flawless posture scores a composite of zero, so the total
	// multiplier is 0.5 (base) x 1.25 (large size) x 0.9 (low profile).
	factors := &model.RiskFactors{
		ComplianceHistory: 1,
		ProcessMaturity:   1,
		BoardOversight:    1,
		PolicyCoverage:    1,
	}

	assessment, err := uc.Penalty.Assess(ctx, usecase.AssessInput{
		Violations: []model.ViolationRecord{
			{Type: types.ViolationResilienceTesting},
		},
		AnnualRevenue: decimal.NewFromInt(500_000_000),
		RiskFactors:   factors,
	})
	gt.NoError(t, err).Required()

	gt.Value(t, assessment.RiskAdjustment).NotNil()
	gt.Value(t, assessment.RiskAdjustment.CompositeScore).Equal(0.0)
	gt.Bool(t, assessment.AdjustedTotal.LessThan(assessment.Penalty.CappedTotal)).True()

	expected := decimal.NewFromInt(10_000_000).
		Mul(decimal.NewFromFloat(assessment.RiskAdjustment.TotalMultiplier)).Round(2)
	gt.Bool(t, assessment.AdjustedTotal.Equal(expected)).True()
}

func TestAssessEmptyViolations(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	assessment, err := uc.Penalty.Assess(ctx, usecase.AssessInput{
		AnnualRevenue: decimal.NewFromInt(100_000_000),
	})
	gt.NoError(t, err).Required()
	gt.Array(t, assessment.Penalty.Breakdowns).Length(0)
	gt.Bool(t, assessment.AdjustedTotal.IsZero()).True()
}

func TestAssessRejectsBadInput(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	_, err := uc.Penalty.Assess(ctx, usecase.AssessInput{
		AnnualRevenue: decimal.Zero,
	})
	gt.Error(t, err)

	bad := &model.RiskFactors{ThreatLandscape: 1.5}
	_, err = uc.Penalty.Assess(ctx, usecase.AssessInput{
		AnnualRevenue: decimal.NewFromInt(100_000_000),
		RiskFactors:   bad,
	})
	gt.Error(t, err)
}
