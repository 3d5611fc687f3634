package cashflow_test

import (
	"context"
	"testing"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/cashflow"
	"github.com/m-mizutani/gt"
	"github.com/shopspring/decimal"
)

func TestProjectEvenSpread(t *testing.T) {
	p := cashflow.New()
	ctx := context.Background()

	flows, err := p.Project(ctx, cashflow.Projection{
		TotalBenefit:  decimal.NewFromInt(10_000_000),
		TotalCost:     decimal.NewFromFloat(396_900),
		HorizonYears:  5,
		AnnualSavings: decimal.NewFromInt(50_000),
		Spread:        cashflow.SpreadEven,
	})
	gt.NoError(t, err).Required()

	// Year 0 carries 75% of cost as a single outflow.
	gt.Value(t, flows[0].Year).Equal(0)
	gt.Value(t, flows[0].Category).Equal(types.FlowImplementationCost)
	gt.Bool(t, flows[0].Amount.Equal(decimal.NewFromFloat(-297_675))).True()

	// Category sums reconcile exactly with the inputs.
	gt.Bool(t, model.TotalByCategory(flows, types.FlowImplementationCost).
		Equal(decimal.NewFromFloat(396_900))).True()
	gt.Bool(t, model.TotalByCategory(flows, types.FlowPenaltyAvoidance).
		Equal(decimal.NewFromInt(10_000_000))).True()
	gt.Bool(t, model.TotalByCategory(flows, types.FlowCostSavings).
		Equal(decimal.NewFromInt(250_000))).True()

	// Maintenance recurs at 5% of cost per operating year.
	maintenance := model.TotalByCategory(flows, types.FlowMaintenanceCost)
	gt.Bool(t, maintenance.Equal(decimal.NewFromFloat(99_225))).True()

	// Flows are ordered by year, and every operating year has inflows.
	net := model.NetByYear(flows)
	gt.Array(t, net).Length(6)
	for year := 1; year <= 5; year++ {
		gt.Bool(t, net[year].IsPositive()).True()
	}
}

func TestProjectAvoidanceYear(t *testing.T) {
	p := cashflow.New()
	ctx := context.Background()

	flows, err := p.Project(ctx, cashflow.Projection{
		TotalBenefit:  decimal.NewFromInt(5_000_000),
		TotalCost:     decimal.NewFromInt(400_000),
		HorizonYears:  4,
		Spread:        cashflow.SpreadAvoidanceYear,
		AvoidanceYear: 2,
	})
	gt.NoError(t, err).Required()

	for _, f := range flows {
		if f.Category == types.FlowPenaltyAvoidance {
			gt.Value(t, f.Year).Equal(2)
			gt.Bool(t, f.Amount.Equal(decimal.NewFromInt(5_000_000))).True()
		}
	}
	gt.Bool(t, model.TotalByCategory(flows, types.FlowPenaltyAvoidance).
		Equal(decimal.NewFromInt(5_000_000))).True()
}

func TestProjectRoundingRemainder(t *testing.T) {
	p := cashflow.New()
	ctx := context.Background()

	// 100,000 * 25% = 25,000 over 3 years does not divide evenly in cents;
	// the final year absorbs the remainder.
	flows, err := p.Project(ctx, cashflow.Projection{
		TotalBenefit: decimal.NewFromInt(1_000_000),
		TotalCost:    decimal.NewFromInt(100_000),
		HorizonYears: 3,
		Spread:       cashflow.SpreadEven,
	})
	gt.NoError(t, err).Required()

	gt.Bool(t, model.TotalByCategory(flows, types.FlowImplementationCost).
		Equal(decimal.NewFromInt(100_000))).True()
	gt.Bool(t, model.TotalByCategory(flows, types.FlowPenaltyAvoidance).
		Equal(decimal.NewFromInt(1_000_000))).True()
}

func TestProjectCostFloor(t *testing.T) {
	p := cashflow.New()
	ctx := context.Background()

	flows, err := p.Project(ctx, cashflow.Projection{
		TotalBenefit: decimal.NewFromInt(100_000),
		TotalCost:    decimal.Zero,
		HorizonYears: 2,
	})
	gt.NoError(t, err).Required()

	// Zero cost is substituted with the documented 10k floor.
	gt.Bool(t, model.TotalByCategory(flows, types.FlowImplementationCost).
		Equal(cashflow.MinimumCost)).True()
}

func TestProjectValidation(t *testing.T) {
	p := cashflow.New()
	ctx := context.Background()

	_, err := p.Project(ctx, cashflow.Projection{
		TotalBenefit: decimal.NewFromInt(1),
		TotalCost:    decimal.NewFromInt(1),
		HorizonYears: 0,
	})
	gt.Error(t, err)

	_, err = p.Project(ctx, cashflow.Projection{
		TotalBenefit:  decimal.NewFromInt(1),
		TotalCost:     decimal.NewFromInt(1),
		HorizonYears:  3,
		Spread:        cashflow.SpreadAvoidanceYear,
		AvoidanceYear: 5,
	})
	gt.Error(t, err)

	_, err = p.Project(ctx, cashflow.Projection{
		TotalBenefit: decimal.NewFromInt(-1),
		TotalCost:    decimal.NewFromInt(1),
		HorizonYears: 3,
	})
	gt.Error(t, err)
}
