package riskadj

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model/config"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// Category weights for the composite risk score
const (
	weightCompliance  = 0.4
	weightOperational = 0.3
	weightGovernance  = 0.2
	weightExternal    = 0.1
)

// Engine derives a composite risk multiplier from qualitative risk factors
// and the company's size and risk-profile classifications. All mappings are
// deterministic pure functions.
type Engine struct{}

// New creates a risk adjustment engine
func New() *Engine {
	return &Engine{}
}

// Adjust computes the full multiplier breakdown. Factors outside [0,1] are
// rejected before any computation.
func (e *Engine) Adjust(factors model.RiskFactors, revenue decimal.Decimal) (*model.RiskAdjustment, error) {
	if !revenue.IsPositive() {
		return nil, goerr.Wrap(model.ErrInvalidRevenue, "cannot compute risk adjustment",
			goerr.V("revenue", revenue))
	}
	if err := factors.Validate(); err != nil {
		return nil, goerr.Wrap(model.ErrRiskFactorRange, err.Error())
	}

	// Each category score is a fixed linear combination oriented so that
	// worse qualitative inputs increase the score. Fields measuring
	// strength (history, maturity, oversight, coverage) enter as
	// complements.
	compliance := 0.5*(1-factors.ComplianceHistory) +
		0.3*factors.IncidentFrequency +
		0.2*factors.RegulatoryAttention

	operational := 0.4*factors.OperationalComplexity +
		0.35*(1-factors.ProcessMaturity) +
		0.25*factors.ChangeFrequency

	governance := 0.6*(1-factors.BoardOversight) +
		0.4*(1-factors.PolicyCoverage)

	external := 0.6*factors.ThreatLandscape +
		0.4*factors.VendorDependency

	composite := weightCompliance*compliance +
		weightOperational*operational +
		weightGovernance*governance +
		weightExternal*external

	base := 0.5 + composite*1.5

	sizeClass := config.ClassifySize(revenue)
	profileClass := config.ClassifyProfile(base)
	sizeMult := config.SizeMultiplier(sizeClass)
	profileMult := config.ProfileMultiplier(profileClass)

	return &model.RiskAdjustment{
		ComplianceScore:   compliance,
		OperationalScore:  operational,
		GovernanceScore:   governance,
		ExternalScore:     external,
		CompositeScore:    composite,
		BaseMultiplier:    base,
		SizeClass:         sizeClass,
		SizeMultiplier:    sizeMult,
		ProfileClass:      profileClass,
		ProfileMultiplier: profileMult,
		TotalMultiplier:   base * sizeMult * profileMult,
	}, nil
}
