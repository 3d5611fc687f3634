package model

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/shopspring/decimal"
)

// CashFlowItem is one signed flow in a year-indexed series. Year 0 is the
// initiation period. Outflows are negative.
type CashFlowItem struct {
	Year        int
	Amount      decimal.Decimal
	Category    types.CashFlowCategory
	Confidence  float64
	Description string
}

// NetByYear sums a series into per-year net amounts, indexed 0..maxYear
func NetByYear(flows []CashFlowItem) []decimal.Decimal {
	maxYear := 0
	for _, f := range flows {
		if f.Year > maxYear {
			maxYear = f.Year
		}
	}
	net := make([]decimal.Decimal, maxYear+1)
	for _, f := range flows {
		net[f.Year] = net[f.Year].Add(f.Amount)
	}
	return net
}

// TotalByCategory sums the absolute amounts of all flows in one category
func TotalByCategory(flows []CashFlowItem, category types.CashFlowCategory) decimal.Decimal {
	var total decimal.Decimal
	for _, f := range flows {
		if f.Category == category {
			total = total.Add(f.Amount.Abs())
		}
	}
	return total
}
