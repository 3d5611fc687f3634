package penalty

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// Aggregator combines per-violation penalties into a capped total. The
// capped total never exceeds revenue times the cap fraction, regardless of
// how many violations are supplied.
type Aggregator struct {
	calculator *Calculator
}

// NewAggregator creates an Aggregator sharing the given Calculator
func NewAggregator(calculator *Calculator) *Aggregator {
	return &Aggregator{calculator: calculator}
}

// Aggregate computes each record's penalty independently, sums them, and
// applies the overall revenue-percentage cap. An empty record list yields a
// zero total, not an error.
func (a *Aggregator) Aggregate(recs []model.ViolationRecord, revenue decimal.Decimal, capFraction float64) (*model.CumulativePenalty, error) {
	if !revenue.IsPositive() {
		return nil, goerr.Wrap(model.ErrInvalidRevenue, "cannot aggregate penalties",
			goerr.V("revenue", revenue))
	}
	if capFraction <= 0 {
		return nil, goerr.New("overall cap fraction must be positive",
			goerr.V("cap_fraction", capFraction))
	}

	capAmount := revenue.Mul(decimal.NewFromFloat(capFraction))

	result := &model.CumulativePenalty{
		Cap:         capAmount,
		CapFraction: capFraction,
	}

	for i, rec := range recs {
		breakdown, err := a.calculator.Calculate(rec, revenue)
		if err != nil {
			return nil, goerr.Wrap(err, "penalty calculation failed",
				goerr.V("index", i), goerr.V("type", rec.Type))
		}
		result.Breakdowns = append(result.Breakdowns, breakdown)
		result.UncappedSum = result.UncappedSum.Add(breakdown.FinalAmount)
	}

	result.CappedTotal = decimal.Min(result.UncappedSum, capAmount)
	result.CapApplied = result.UncappedSum.GreaterThan(capAmount)
	result.CapSavings = result.UncappedSum.Sub(result.CappedTotal)

	return result, nil
}
