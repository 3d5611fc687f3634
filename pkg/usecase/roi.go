package usecase

import (
	"context"
	"math"
	"time"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/interfaces"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model/config"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/cashflow"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/finmetrics"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/montecarlo"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/sensitivity"
	"github.com/enricoaquilina/dora-finrisk/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// AnalysisInput is the full input of one ROI analysis. Benefit and cost are
// horizon totals; the projector expands them into the year-indexed series.
type AnalysisInput struct {
	TotalBenefit  decimal.Decimal
	TotalCost     decimal.Decimal
	AnnualSavings decimal.Decimal

	Assumptions model.FinancialAssumptions

	Spread        cashflow.SpreadMode
	AvoidanceYear int

	// Zero-valued configs fall back to the built-in defaults
	Sweeps    config.SweepConfig
	Scenarios config.ScenarioConfig
	Trials    config.TrialConfig

	SkipSensitivity bool
	SkipSimulation  bool

	// Penalty context carried into the result when the analysis was driven
	// by a prior exposure assessment
	Penalty        *model.CumulativePenalty
	RiskAdjustment *model.RiskAdjustment
}

type ROIUseCase struct {
	repo        interfaces.Repository
	projector   *cashflow.Projector
	sensitivity *sensitivity.Engine
	simulation  *montecarlo.Engine
	thresholds  config.RecommendationThresholds
}

func NewROIUseCase(repo interfaces.Repository, projector *cashflow.Projector, sens *sensitivity.Engine, sim *montecarlo.Engine, thresholds config.RecommendationThresholds) *ROIUseCase {
	return &ROIUseCase{
		repo:        repo,
		projector:   projector,
		sensitivity: sens,
		simulation:  sim,
		thresholds:  thresholds,
	}
}

// Analyze runs the full pipeline: projection, capital-budgeting metrics,
// sensitivity sweeps, Monte Carlo simulation, and the verdict mapping. The
// assembled result is stored before it is returned.
func (uc *ROIUseCase) Analyze(ctx context.Context, in AnalysisInput) (*model.ROIResult, error) {
	if err := in.Assumptions.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid financial assumptions")
	}

	projection := cashflow.Projection{
		TotalBenefit:  in.TotalBenefit,
		TotalCost:     in.TotalCost,
		HorizonYears:  in.Assumptions.AnalysisPeriodYears,
		AnnualSavings: in.AnnualSavings,
		Spread:        in.Spread,
		AvoidanceYear: in.AvoidanceYear,
	}
	flows, err := uc.projector.Project(ctx, projection)
	if err != nil {
		return nil, goerr.Wrap(err, "cash flow projection failed")
	}

	rate := in.Assumptions.DiscountRate
	metrics, err := uc.computeMetrics(flows, in.Assumptions)
	if err != nil {
		return nil, err
	}

	result := &model.ROIResult{
		ID: types.NewAnalysisID(),
		TotalBenefit: model.TotalByCategory(flows, types.FlowPenaltyAvoidance).
			Add(model.TotalByCategory(flows, types.FlowCostSavings)),
		TotalCost: model.TotalByCategory(flows, types.FlowImplementationCost).
			Add(model.TotalByCategory(flows, types.FlowMaintenanceCost)),
		CashFlows:      flows,
		Assumptions:    in.Assumptions,
		Metrics:        *metrics,
		Penalty:        in.Penalty,
		RiskAdjustment: in.RiskAdjustment,
		CreatedAt:      time.Now().UTC(),
	}

	if !in.SkipSensitivity {
		sweeps := in.Sweeps
		if len(sweeps.Ranges) == 0 {
			sweeps = config.DefaultSweepConfig()
		}
		scenarios := in.Scenarios
		if len(scenarios.Shifts) == 0 {
			scenarios = config.DefaultScenarioConfig()
		}
		report, err := uc.sensitivity.Run(ctx,
			sensitivity.BaseCase{Projection: projection, DiscountRate: rate},
			sweeps, scenarios)
		if err != nil {
			return nil, goerr.Wrap(err, "sensitivity analysis failed")
		}
		result.Sensitivity = report
	}

	if !in.SkipSimulation {
		trials := in.Trials
		if trials.Trials == 0 {
			seed := trials.Seed
			trials = config.DefaultTrialConfig()
			trials.Seed = seed
		}
		dist, err := uc.simulation.Run(ctx, projection, rate, trials)
		if err != nil {
			return nil, goerr.Wrap(err, "simulation failed")
		}
		result.Simulation = dist
	}

	result.Recommendation = uc.recommend(result)

	if err := uc.repo.Analysis().Create(ctx, result); err != nil {
		return nil, goerr.Wrap(err, "failed to store analysis result")
	}

	logging.From(ctx).Info("analysis complete",
		"id", result.ID.String(),
		"npv", result.Metrics.NPV.String(),
		"recommendation", string(result.Recommendation),
	)

	return result, nil
}

func (uc *ROIUseCase) computeMetrics(flows []model.CashFlowItem, assumptions model.FinancialAssumptions) (*model.InvestmentMetrics, error) {
	rate := assumptions.DiscountRate

	npv, err := finmetrics.NPV(flows, rate)
	if err != nil {
		return nil, goerr.Wrap(err, "NPV computation failed")
	}

	metrics := &model.InvestmentMetrics{
		NPV:               npv,
		IRR:               finmetrics.IRR(flows, finmetrics.DefaultIRROptions()),
		MIRR:              finmetrics.MIRR(flows, rate, assumptions.RiskFreeRate),
		SimplePayback:     finmetrics.SimplePayback(flows),
		DiscountedPayback: finmetrics.DiscountedPayback(flows, rate),
	}

	inflows := model.TotalByCategory(flows, types.FlowPenaltyAvoidance).
		Add(model.TotalByCategory(flows, types.FlowCostSavings))
	outflows := model.TotalByCategory(flows, types.FlowImplementationCost).
		Add(model.TotalByCategory(flows, types.FlowMaintenanceCost))

	// The projector guarantees a positive cost via the minimum floor, so
	// the ratios below are always defined.
	costF, _ := outflows.Float64()
	netF, _ := inflows.Sub(outflows).Float64()
	npvF, _ := npv.Float64()

	metrics.ROIPercent = netF / costF * 100
	metrics.ProfitabilityIndex = (npvF + costF) / costF
	metrics.EquivalentAnnualAnnuity = annualize(npv, rate, assumptions.AnalysisPeriodYears)

	return metrics, nil
}

// annualize spreads an NPV into the equivalent constant annual amount over
// n years at the given rate. At a zero rate this degenerates to NPV/n.
func annualize(npv decimal.Decimal, rate float64, years int) decimal.Decimal {
	if years < 1 {
		return decimal.Zero
	}
	if rate == 0 {
		return npv.DivRound(decimal.NewFromInt(int64(years)), 2)
	}
	compound := math.Pow(1+rate, float64(years))
	factor := rate * compound / (compound - 1)
	return npv.Mul(decimal.NewFromFloat(factor)).Round(2)
}

func (uc *ROIUseCase) recommend(result *model.ROIResult) types.Recommendation {
	var payback *float64
	if !result.Metrics.SimplePayback.Never {
		payback = &result.Metrics.SimplePayback.Years
	}
	var probPositive *float64
	if result.Simulation != nil {
		probPositive = &result.Simulation.ProbPositiveNPV
	}
	return uc.thresholds.Evaluate(result.Metrics.ROIPercent, payback, probPositive)
}

// Simulate runs only the Monte Carlo stage against the input, without
// storing anything. Used when the caller wants the distribution alone.
func (uc *ROIUseCase) Simulate(ctx context.Context, in AnalysisInput) (*model.Distribution, error) {
	if err := in.Assumptions.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid financial assumptions")
	}

	projection := cashflow.Projection{
		TotalBenefit:  in.TotalBenefit,
		TotalCost:     in.TotalCost,
		HorizonYears:  in.Assumptions.AnalysisPeriodYears,
		AnnualSavings: in.AnnualSavings,
		Spread:        in.Spread,
		AvoidanceYear: in.AvoidanceYear,
	}

	trials := in.Trials
	if trials.Trials == 0 {
		seed := trials.Seed
		trials = config.DefaultTrialConfig()
		trials.Seed = seed
	}
	dist, err := uc.simulation.Run(ctx, projection, in.Assumptions.DiscountRate, trials)
	if err != nil {
		return nil, goerr.Wrap(err, "simulation failed")
	}
	return dist, nil
}

// Get retrieves a stored analysis result by ID
func (uc *ROIUseCase) Get(ctx context.Context, id types.AnalysisID) (*model.ROIResult, error) {
	result, err := uc.repo.Analysis().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get analysis result")
	}
	return result, nil
}

// List retrieves all stored analysis results, newest first
func (uc *ROIUseCase) List(ctx context.Context) ([]*model.ROIResult, error) {
	results, err := uc.repo.Analysis().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list analysis results")
	}
	return results, nil
}

// Delete removes a stored analysis result
func (uc *ROIUseCase) Delete(ctx context.Context, id types.AnalysisID) error {
	if err := uc.repo.Analysis().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete analysis result")
	}
	return nil
}
