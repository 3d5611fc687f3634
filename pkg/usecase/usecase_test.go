package usecase_test

import (
	"context"
	"testing"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model/config"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/cashflow"
	"github.com/enricoaquilina/dora-finrisk/pkg/repository/memory"
	"github.com/enricoaquilina/dora-finrisk/pkg/usecase"
	"github.com/m-mizutani/gt"
	"github.com/shopspring/decimal"
)

func newUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	uc, err := usecase.New(memory.New())
	gt.NoError(t, err).Required()
	return uc
}

// referenceInput is the worked example used throughout the engine tests:
// a 396,900 implementation against a 10M avoidable penalty plus 50,000 in
// annual savings, discounted at 8% over five years.
func referenceInput() usecase.AnalysisInput {
	trials := config.DefaultTrialConfig()
	trials.Trials = 500
	trials.Seed = 42

	return usecase.AnalysisInput{
		TotalBenefit:  decimal.NewFromInt(10_000_000),
		TotalCost:     decimal.NewFromFloat(396_900),
		AnnualSavings: decimal.NewFromInt(50_000),
		Assumptions:   model.DefaultAssumptions(),
		Spread:        cashflow.SpreadEven,
		Trials:        trials,
	}
}

func TestAnalyzeReferenceCase(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	result, err := uc.ROI.Analyze(ctx, referenceInput())
	gt.NoError(t, err).Required()

	gt.Bool(t, result.Metrics.NPV.Equal(decimal.RequireFromString("7728909.91"))).True()
	gt.Bool(t, result.TotalBenefit.Equal(decimal.NewFromInt(10_250_000))).True()
	gt.Bool(t, result.TotalCost.Equal(decimal.NewFromFloat(496_125))).True()

	// A positive NPV at 8% implies the IRR clears 8%, which in turn implies
	// payback lands inside the five year horizon.
	gt.Bool(t, result.Metrics.NPV.IsPositive()).True()
	gt.Bool(t, result.Metrics.IRR.Available).True()
	gt.Bool(t, result.Metrics.IRR.Rate > 0.08).True()
	gt.Bool(t, result.Metrics.SimplePayback.Never).False()
	gt.Bool(t, result.Metrics.SimplePayback.Years < 5).True()

	gt.Bool(t, result.Metrics.ROIPercent > 1900 && result.Metrics.ROIPercent < 2000).True()
	gt.Bool(t, result.Metrics.ProfitabilityIndex > 1).True()
	gt.Bool(t, result.Metrics.EquivalentAnnualAnnuity.IsPositive()).True()

	gt.Value(t, result.Recommendation).Equal(types.StronglyRecommended)

	// Sensitivity and simulation run by default.
	gt.Value(t, result.Sensitivity).NotNil()
	gt.Array(t, result.Sensitivity.Sweeps).Length(3)
	gt.Array(t, result.Sensitivity.Scenarios).Length(3)
	gt.Value(t, result.Simulation).NotNil()
	gt.Value(t, result.Simulation.Trials).Equal(500)

	// The result is stored and retrievable.
	stored, err := uc.ROI.Get(ctx, result.ID)
	gt.NoError(t, err).Required()
	gt.Bool(t, stored.Metrics.NPV.Equal(result.Metrics.NPV)).True()
}

func TestAnalyzeSkipsOptionalStages(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	in := referenceInput()
	in.SkipSensitivity = true
	in.SkipSimulation = true

	result, err := uc.ROI.Analyze(ctx, in)
	gt.NoError(t, err).Required()
	gt.Value(t, result.Sensitivity).Nil()
	gt.Value(t, result.Simulation).Nil()

	// Without a simulation the probability bound is skipped; the verdict
	// still resolves from ROI and payback alone.
	gt.Value(t, result.Recommendation).Equal(types.StronglyRecommended)
}

func TestAnalyzeRejectsBadAssumptions(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	in := referenceInput()
	in.Assumptions.AnalysisPeriodYears = 0

	_, err := uc.ROI.Analyze(ctx, in)
	gt.Error(t, err)

	// Nothing is stored on a validation failure.
	results, err := uc.ROI.List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, results).Length(0)
}

func TestAnalyzeMarginalVerdict(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	in := referenceInput()
	in.SkipSimulation = true
	in.SkipSensitivity = true
	in.TotalBenefit = decimal.NewFromInt(700_000)
	in.AnnualSavings = decimal.Zero

	// Net benefit about 41% of cost, payback past three years: marginal.
	result, err := uc.ROI.Analyze(ctx, in)
	gt.NoError(t, err).Required()
	gt.Value(t, result.Recommendation).Equal(types.Marginal)
}

func TestAnalyzeNotRecommended(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	in := referenceInput()
	in.SkipSimulation = true
	in.SkipSensitivity = true
	in.TotalBenefit = decimal.NewFromInt(100_000)
	in.AnnualSavings = decimal.Zero

	result, err := uc.ROI.Analyze(ctx, in)
	gt.NoError(t, err).Required()
	gt.Value(t, result.Recommendation).Equal(types.NotRecommended)
	gt.Bool(t, result.Metrics.NPV.IsNegative()).True()
}

func TestListAndDelete(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	in := referenceInput()
	in.SkipSimulation = true
	in.SkipSensitivity = true

	first, err := uc.ROI.Analyze(ctx, in)
	gt.NoError(t, err).Required()
	second, err := uc.ROI.Analyze(ctx, in)
	gt.NoError(t, err).Required()

	results, err := uc.ROI.List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, results).Length(2)

	gt.NoError(t, uc.ROI.Delete(ctx, first.ID))
	results, err = uc.ROI.List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, results).Length(1)
	gt.Value(t, results[0].ID).Equal(second.ID)
}
