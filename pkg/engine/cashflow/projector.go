package cashflow

import (
	"context"
	"fmt"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/enricoaquilina/dora-finrisk/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// Allocation pattern constants. These must stay fixed across runs so that
// projections remain comparable with prior analyses.
const (
	// UpfrontCostFraction of total cost lands in year 0
	UpfrontCostFraction = 0.75
	// MaintenanceFraction of total cost recurs every operating year
	MaintenanceFraction = 0.05
)

// MinimumCost substitutes a zero or negative implementation cost so that
// downstream ratio metrics never divide by zero.
var MinimumCost = decimal.NewFromInt(10_000)

// SpreadMode selects how the total benefit is distributed across years
type SpreadMode string

const (
	// SpreadEven distributes the benefit evenly over all operating years
	SpreadEven SpreadMode = "even"
	// SpreadAvoidanceYear concentrates the benefit into one designated
	// year, modeling a penalty avoided at a known supervisory deadline
	SpreadAvoidanceYear SpreadMode = "avoidance_year"
)

// Projection is the input to the cash flow projector
type Projection struct {
	// TotalBenefit is tagged penalty_avoidance in the output series
	TotalBenefit decimal.Decimal
	TotalCost    decimal.Decimal
	HorizonYears int

	// AnnualSavings is an optional recurring cost_savings inflow
	AnnualSavings decimal.Decimal

	Spread SpreadMode
	// AvoidanceYear is the landing year for SpreadAvoidanceYear; defaults
	// to year 1 when zero
	AvoidanceYear int
}

// Confidence levels per flow category
const (
	confidenceUpfront     = 0.95
	confidenceSpreadCost  = 0.9
	confidenceMaintenance = 0.85
	confidenceSavings     = 0.7
	confidenceAvoidance   = 0.6
)

// Projector expands totals into a year-indexed cash flow series following
// the fixed allocation pattern.
type Projector struct{}

// New creates a cash flow projector
func New() *Projector {
	return &Projector{}
}

// Project builds the ordered cash flow series. Per-category sums reconcile
// exactly with the input totals: even splits are rounded to cents and the
// final year absorbs the remainder.
func (p *Projector) Project(ctx context.Context, in Projection) ([]model.CashFlowItem, error) {
	if in.HorizonYears < 1 {
		return nil, goerr.Wrap(model.ErrInvalidHorizon, "cannot project cash flows",
			goerr.V("horizon_years", in.HorizonYears))
	}
	if in.TotalBenefit.IsNegative() {
		return nil, goerr.New("total benefit must not be negative",
			goerr.V("total_benefit", in.TotalBenefit))
	}
	if in.AnnualSavings.IsNegative() {
		return nil, goerr.New("annual savings must not be negative",
			goerr.V("annual_savings", in.AnnualSavings))
	}

	cost := in.TotalCost
	if !cost.IsPositive() {
		logging.From(ctx).Warn("implementation cost not positive, substituting minimum floor",
			"total_cost", in.TotalCost.String(), "floor", MinimumCost.String())
		cost = MinimumCost
	}

	spread := in.Spread
	if spread == "" {
		spread = SpreadEven
	}
	avoidanceYear := in.AvoidanceYear
	if avoidanceYear == 0 {
		avoidanceYear = 1
	}
	switch spread {
	case SpreadEven:
	case SpreadAvoidanceYear:
		if avoidanceYear < 1 || avoidanceYear > in.HorizonYears {
			return nil, goerr.New("avoidance year outside horizon",
				goerr.V("avoidance_year", avoidanceYear),
				goerr.V("horizon_years", in.HorizonYears))
		}
	default:
		return nil, goerr.New("unknown benefit spread mode", goerr.V("spread", spread))
	}

	horizon := in.HorizonYears
	upfront := cost.Mul(decimal.NewFromFloat(UpfrontCostFraction)).Round(2)
	remaining := cost.Sub(upfront)
	maintenance := cost.Mul(decimal.NewFromFloat(MaintenanceFraction)).Round(2)

	flows := []model.CashFlowItem{{
		Year:        0,
		Amount:      upfront.Neg(),
		Category:    types.FlowImplementationCost,
		Confidence:  confidenceUpfront,
		Description: "upfront implementation cost",
	}}

	costPerYear := remaining.DivRound(decimal.NewFromInt(int64(horizon)), 2)
	benefitPerYear := in.TotalBenefit.DivRound(decimal.NewFromInt(int64(horizon)), 2)

	for year := 1; year <= horizon; year++ {
		last := year == horizon

		yearCost := costPerYear
		if last {
			yearCost = remaining.Sub(costPerYear.Mul(decimal.NewFromInt(int64(horizon - 1))))
		}
		flows = append(flows, model.CashFlowItem{
			Year:        year,
			Amount:      yearCost.Neg(),
			Category:    types.FlowImplementationCost,
			Confidence:  confidenceSpreadCost,
			Description: fmt.Sprintf("implementation cost year %d", year),
		})

		flows = append(flows, model.CashFlowItem{
			Year:        year,
			Amount:      maintenance.Neg(),
			Category:    types.FlowMaintenanceCost,
			Confidence:  confidenceMaintenance,
			Description: fmt.Sprintf("ongoing maintenance year %d", year),
		})

		if !in.AnnualSavings.IsZero() {
			flows = append(flows, model.CashFlowItem{
				Year:        year,
				Amount:      in.AnnualSavings,
				Category:    types.FlowCostSavings,
				Confidence:  confidenceSavings,
				Description: fmt.Sprintf("operational savings year %d", year),
			})
		}

		switch spread {
		case SpreadEven:
			yearBenefit := benefitPerYear
			if last {
				yearBenefit = in.TotalBenefit.Sub(benefitPerYear.Mul(decimal.NewFromInt(int64(horizon - 1))))
			}
			if !yearBenefit.IsZero() {
				flows = append(flows, model.CashFlowItem{
					Year:        year,
					Amount:      yearBenefit,
					Category:    types.FlowPenaltyAvoidance,
					Confidence:  confidenceAvoidance,
					Description: fmt.Sprintf("penalty avoidance year %d", year),
				})
			}
		case SpreadAvoidanceYear:
			if year == avoidanceYear && !in.TotalBenefit.IsZero() {
				flows = append(flows, model.CashFlowItem{
					Year:        year,
					Amount:      in.TotalBenefit,
					Category:    types.FlowPenaltyAvoidance,
					Confidence:  confidenceAvoidance,
					Description: fmt.Sprintf("penalty avoidance year %d", year),
				})
			}
		}
	}

	return flows, nil
}
