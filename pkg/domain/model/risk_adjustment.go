package model

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
)

// RiskAdjustment is the breakdown of the composite risk multiplier
type RiskAdjustment struct {
	ComplianceScore  float64
	OperationalScore float64
	GovernanceScore  float64
	ExternalScore    float64
	CompositeScore   float64

	// BaseMultiplier = 0.5 + composite * 1.5, before classification scaling
	BaseMultiplier float64

	SizeClass         types.CompanySizeClass
	SizeMultiplier    float64
	ProfileClass      types.RiskProfileClass
	ProfileMultiplier float64

	TotalMultiplier float64
}
