package sensitivity

import (
	"context"
	"sort"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model/config"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/cashflow"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/finmetrics"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// BaseCase is the unperturbed analysis input: the projection that builds
// the cash flow series plus the discount rate applied to it.
type BaseCase struct {
	Projection   cashflow.Projection
	DiscountRate float64
}

// Engine perturbs named input variables one at a time, records the
// resulting NPV, and ranks variables by impact range. Every evaluation is
// a fresh projection and discounting pass; nothing is shared between
// sweep points.
type Engine struct {
	projector *cashflow.Projector
}

// New creates a sensitivity engine
func New(projector *cashflow.Projector) *Engine {
	return &Engine{projector: projector}
}

// Run executes all configured sweeps and scenario presets
func (e *Engine) Run(ctx context.Context, base BaseCase, sweeps config.SweepConfig, scenarios config.ScenarioConfig) (*model.SensitivityReport, error) {
	if err := sweeps.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid sweep config")
	}

	report := &model.SensitivityReport{}

	// Deterministic variable order regardless of map iteration.
	names := make([]string, 0, len(sweeps.Ranges))
	for name := range sweeps.Ranges {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sweep, err := e.sweepVariable(ctx, base, name, sweeps.Ranges[name], sweeps.Points)
		if err != nil {
			return nil, goerr.Wrap(err, "sweep failed", goerr.V("variable", name))
		}
		report.Sweeps = append(report.Sweeps, *sweep)
	}

	// Tornado order: widest NPV range first. Ties keep name order.
	sort.SliceStable(report.Sweeps, func(i, j int) bool {
		return report.Sweeps[i].Range.GreaterThan(report.Sweeps[j].Range)
	})

	for _, shift := range scenarios.Shifts {
		npv, err := e.evaluate(ctx, base, shift.BenefitShift, shift.CostShift, shift.DiscountRateShift)
		if err != nil {
			return nil, goerr.Wrap(err, "scenario failed", goerr.V("scenario", shift.Name))
		}
		report.Scenarios = append(report.Scenarios, model.Scenario{
			Name:              shift.Name,
			BenefitShift:      shift.BenefitShift,
			CostShift:         shift.CostShift,
			DiscountRateShift: shift.DiscountRateShift,
			NPV:               npv,
		})
	}

	return report, nil
}

func (e *Engine) sweepVariable(ctx context.Context, base BaseCase, name string, r config.SweepRange, points int) (*model.VariableSweep, error) {
	sweep := &model.VariableSweep{Variable: name}

	step := (r.MaxPercent - r.MinPercent) / float64(points-1)
	var minNPV, maxNPV decimal.Decimal
	for i := 0; i < points; i++ {
		pct := r.MinPercent + step*float64(i)
		fraction := pct / 100

		var benefitShift, costShift, rateShift float64
		switch name {
		case config.VariableBenefits:
			benefitShift = fraction
		case config.VariableCosts:
			costShift = fraction
		case config.VariableDiscountRate:
			// Rate perturbation is relative to the base rate.
			rateShift = base.DiscountRate * fraction
		default:
			return nil, goerr.New("unknown sweep variable", goerr.V("variable", name))
		}

		npv, err := e.evaluate(ctx, base, benefitShift, costShift, rateShift)
		if err != nil {
			return nil, err
		}
		sweep.Points = append(sweep.Points, model.SweepPoint{PercentChange: pct, NPV: npv})

		if i == 0 {
			minNPV, maxNPV = npv, npv
			continue
		}
		if npv.LessThan(minNPV) {
			minNPV = npv
		}
		if npv.GreaterThan(maxNPV) {
			maxNPV = npv
		}
	}

	sweep.Range = maxNPV.Sub(minNPV)
	return sweep, nil
}

// evaluate recomputes NPV under the given simultaneous shifts. Benefit and
// cost shifts are fractions of the base values; the rate shift is additive.
func (e *Engine) evaluate(ctx context.Context, base BaseCase, benefitShift, costShift, rateShift float64) (decimal.Decimal, error) {
	in := base.Projection
	in.TotalBenefit = in.TotalBenefit.Mul(decimal.NewFromFloat(1 + benefitShift))
	in.AnnualSavings = in.AnnualSavings.Mul(decimal.NewFromFloat(1 + benefitShift))
	in.TotalCost = in.TotalCost.Mul(decimal.NewFromFloat(1 + costShift))

	flows, err := e.projector.Project(ctx, in)
	if err != nil {
		return decimal.Zero, goerr.Wrap(err, "projection failed")
	}

	return finmetrics.NPV(flows, base.DiscountRate+rateShift)
}
