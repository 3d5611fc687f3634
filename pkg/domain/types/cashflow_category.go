package types

import "fmt"

// CashFlowCategory tags a cash flow item by its origin
type CashFlowCategory string

const (
	FlowImplementationCost CashFlowCategory = "implementation_cost"
	FlowMaintenanceCost    CashFlowCategory = "maintenance_cost"
	FlowCostSavings        CashFlowCategory = "cost_savings"
	FlowPenaltyAvoidance   CashFlowCategory = "penalty_avoidance"
)

// AllCashFlowCategories returns all valid cash flow categories
func AllCashFlowCategories() []CashFlowCategory {
	return []CashFlowCategory{
		FlowImplementationCost,
		FlowMaintenanceCost,
		FlowCostSavings,
		FlowPenaltyAvoidance,
	}
}

// IsValid checks if the cash flow category is valid
func (c CashFlowCategory) IsValid() bool {
	switch c {
	case FlowImplementationCost,
		FlowMaintenanceCost,
		FlowCostSavings,
		FlowPenaltyAvoidance:
		return true
	default:
		return false
	}
}

// IsCost reports whether the category represents an outflow
func (c CashFlowCategory) IsCost() bool {
	return c == FlowImplementationCost || c == FlowMaintenanceCost
}

// String returns the string representation of the cash flow category
func (c CashFlowCategory) String() string {
	return string(c)
}

// ParseCashFlowCategory parses a string into a CashFlowCategory
func ParseCashFlowCategory(s string) (CashFlowCategory, error) {
	category := CashFlowCategory(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid cash flow category: %s", s)
	}
	return category, nil
}
