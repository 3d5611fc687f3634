package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/enricoaquilina/dora-finrisk/pkg/usecase"
	"github.com/enricoaquilina/dora-finrisk/pkg/utils/safe"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func renderJSON(ctx context.Context, w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode result")
	}
	safe.Write(ctx, w, append(data, '\n'))
	return nil
}

func coloredVerdict(rec types.Recommendation) string {
	switch rec {
	case types.StronglyRecommended:
		return color.New(color.FgGreen, color.Bold).Sprint(string(rec))
	case types.Recommended:
		return color.New(color.FgGreen).Sprint(string(rec))
	case types.Marginal:
		return color.New(color.FgYellow).Sprint(string(rec))
	default:
		return color.New(color.FgRed).Sprint(string(rec))
	}
}

func renderResult(ctx context.Context, w io.Writer, result *model.ROIResult, format string) error {
	switch format {
	case outputJSON:
		return renderJSON(ctx, w, result)
	case outputTable, "":
	default:
		return goerr.New("unknown output format", goerr.V("format", format))
	}

	currency := result.Assumptions.Currency
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Analysis ID:\t%s\n", result.ID)
	fmt.Fprintf(tw, "Total benefit:\t%s %s\n", result.TotalBenefit.StringFixed(2), currency)
	fmt.Fprintf(tw, "Total cost:\t%s %s\n", result.TotalCost.StringFixed(2), currency)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "NPV:\t%s %s\n", result.Metrics.NPV.StringFixed(2), currency)
	fmt.Fprintf(tw, "IRR:\t%s\n", rateString(result.Metrics.IRR))
	fmt.Fprintf(tw, "MIRR:\t%s\n", rateString(result.Metrics.MIRR))
	fmt.Fprintf(tw, "Simple payback:\t%s\n", paybackString(result.Metrics.SimplePayback))
	fmt.Fprintf(tw, "Discounted payback:\t%s\n", paybackString(result.Metrics.DiscountedPayback))
	fmt.Fprintf(tw, "ROI:\t%.1f%%\n", result.Metrics.ROIPercent)
	fmt.Fprintf(tw, "Profitability index:\t%.2f\n", result.Metrics.ProfitabilityIndex)
	fmt.Fprintf(tw, "Equivalent annual annuity:\t%s %s\n",
		result.Metrics.EquivalentAnnualAnnuity.StringFixed(2), currency)

	if result.Sensitivity != nil && len(result.Sensitivity.Sweeps) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Sensitivity (tornado order):")
		for _, sweep := range result.Sensitivity.Sweeps {
			fmt.Fprintf(tw, "  %s\tNPV range %s %s\n",
				sweep.Variable, sweep.Range.StringFixed(2), currency)
		}
		for _, scenario := range result.Sensitivity.Scenarios {
			fmt.Fprintf(tw, "  scenario %s\tNPV %s %s\n",
				scenario.Name, scenario.NPV.StringFixed(2), currency)
		}
	}

	if result.Simulation != nil {
		fmt.Fprintln(tw)
		writeDistribution(tw, result.Simulation, currency)
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Recommendation:\t%s\n", coloredVerdict(result.Recommendation))

	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write result")
	}
	return nil
}

func renderAssessment(ctx context.Context, w io.Writer, assessment *usecase.PenaltyAssessment, format string) error {
	switch format {
	case outputJSON:
		return renderJSON(ctx, w, assessment)
	case outputTable, "":
	default:
		return goerr.New("unknown output format", goerr.V("format", format))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, b := range assessment.Penalty.Breakdowns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t(%.3f%% of revenue)\n",
			b.Type, b.Severity, b.FinalAmount.StringFixed(2), b.PercentOfRevenue)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Uncapped sum:\t%s\n", assessment.Penalty.UncappedSum.StringFixed(2))
	fmt.Fprintf(tw, "Overall cap (%.1f%% of revenue):\t%s\n",
		assessment.Penalty.CapFraction*100, assessment.Penalty.Cap.StringFixed(2))
	fmt.Fprintf(tw, "Capped total:\t%s\n", assessment.Penalty.CappedTotal.StringFixed(2))
	if assessment.Penalty.CapApplied {
		fmt.Fprintf(tw, "Cap savings:\t%s\n", assessment.Penalty.CapSavings.StringFixed(2))
	}

	if adj := assessment.RiskAdjustment; adj != nil {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "Composite risk score:\t%.3f\n", adj.CompositeScore)
		fmt.Fprintf(tw, "Size class:\t%s (x%.2f)\n", adj.SizeClass, adj.SizeMultiplier)
		fmt.Fprintf(tw, "Risk profile:\t%s (x%.2f)\n", adj.ProfileClass, adj.ProfileMultiplier)
		fmt.Fprintf(tw, "Total multiplier:\t%.4f\n", adj.TotalMultiplier)
		fmt.Fprintf(tw, "Risk-adjusted exposure:\t%s\n", assessment.AdjustedTotal.StringFixed(2))
	}

	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write assessment")
	}
	return nil
}

func renderDistribution(ctx context.Context, w io.Writer, dist *model.Distribution, format string) error {
	switch format {
	case outputJSON:
		return renderJSON(ctx, w, dist)
	case outputTable, "":
	default:
		return goerr.New("unknown output format", goerr.V("format", format))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeDistribution(tw, dist, "")
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write distribution")
	}
	return nil
}

func writeDistribution(w io.Writer, dist *model.Distribution, currency string) {
	fmt.Fprintf(w, "Simulation:\t%d trials (seed %d)\n", dist.Trials, dist.Seed)
	fmt.Fprintf(w, "  mean NPV:\t%.2f %s\n", dist.Mean, currency)
	fmt.Fprintf(w, "  std dev:\t%.2f\n", dist.StdDev)
	fmt.Fprintf(w, "  min / max:\t%.2f / %.2f\n", dist.Min, dist.Max)
	for _, p := range []int{5, 25, 50, 75, 95} {
		fmt.Fprintf(w, "  P%d:\t%.2f\n", p, dist.Percentiles[p])
	}
	fmt.Fprintf(w, "  P(NPV>0):\t%.1f%%\n", dist.ProbPositiveNPV*100)
	fmt.Fprintf(w, "  VaR (5%%):\t%.2f\n", dist.ValueAtRisk5)
	fmt.Fprintf(w, "  expected shortfall:\t%.2f\n", dist.ExpectedShortfall)
}

func rateString(r model.RateResult) string {
	if !r.Available {
		return "n/a (no convergence)"
	}
	return fmt.Sprintf("%.2f%%", r.Rate*100)
}

func paybackString(p model.PaybackResult) string {
	if p.Never {
		return "never within horizon"
	}
	return fmt.Sprintf("%.2f years", p.Years)
}
