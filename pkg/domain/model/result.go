package model

import (
	"time"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/shopspring/decimal"
)

// ROIResult is the terminal artifact of a full analysis. It is immutable
// after construction and records the assumptions that produced it.
type ROIResult struct {
	ID types.AnalysisID

	TotalBenefit decimal.Decimal
	TotalCost    decimal.Decimal

	CashFlows   []CashFlowItem
	Assumptions FinancialAssumptions

	Metrics     InvestmentMetrics
	Sensitivity *SensitivityReport
	Simulation  *Distribution

	Penalty        *CumulativePenalty
	RiskAdjustment *RiskAdjustment

	Recommendation types.Recommendation
	CreatedAt      time.Time
}
