package riskadj_test

import (
	"math"
	"testing"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/riskadj"
	"github.com/m-mizutani/gt"
	"github.com/shopspring/decimal"
)

// bestCase is a spotless profile: every strength factor at 1, every
// exposure factor at 0.
func bestCase() model.RiskFactors {
	return model.RiskFactors{
		ComplianceHistory: 1,
		ProcessMaturity:   1,
		BoardOversight:    1,
		PolicyCoverage:    1,
	}
}

func worstCase() model.RiskFactors {
	return model.RiskFactors{
		IncidentFrequency:     1,
		RegulatoryAttention:   1,
		OperationalComplexity: 1,
		ChangeFrequency:       1,
		ThreatLandscape:       1,
		VendorDependency:      1,
	}
}

func TestAdjustBounds(t *testing.T) {
	engine := riskadj.New()
	revenue := decimal.NewFromInt(100_000_000)

	best, err := engine.Adjust(bestCase(), revenue)
	gt.NoError(t, err).Required()
	gt.Value(t, best.CompositeScore).Equal(0.0)
	gt.Value(t, best.BaseMultiplier).Equal(0.5)
	gt.Value(t, best.ProfileClass).Equal(types.ProfileLow)

	worst, err := engine.Adjust(worstCase(), revenue)
	gt.NoError(t, err).Required()
	if math.Abs(worst.CompositeScore-1.0) > 1e-9 {
		t.Errorf("worst composite = %v, want 1.0", worst.CompositeScore)
	}
	if math.Abs(worst.BaseMultiplier-2.0) > 1e-9 {
		t.Errorf("worst base multiplier = %v, want 2.0", worst.BaseMultiplier)
	}
	gt.Value(t, worst.ProfileClass).Equal(types.ProfileCritical)

	gt.Bool(t, worst.TotalMultiplier > best.TotalMultiplier).True()
}

func TestAdjustCategoryWeights(t *testing.T) {
	engine := riskadj.New()
	revenue := decimal.NewFromInt(10_000_000) // small: size multiplier 0.8

	// Only the compliance category maximally bad.
	f := bestCase()
	f.ComplianceHistory = 0
	f.IncidentFrequency = 1
	f.RegulatoryAttention = 1

	adj, err := engine.Adjust(f, revenue)
	gt.NoError(t, err).Required()

	gt.Value(t, adj.ComplianceScore).Equal(1.0)
	gt.Value(t, adj.GovernanceScore).Equal(0.0)
	// composite = 0.4 * 1.0
	gt.Value(t, adj.CompositeScore).Equal(0.4)
	gt.Value(t, adj.SizeClass).Equal(types.SizeSmall)
	gt.Value(t, adj.SizeMultiplier).Equal(0.8)
}

// Raising any single worse-risk input must never lower the total multiplier.
func TestAdjustMonotonicity(t *testing.T) {
	engine := riskadj.New()
	revenue := decimal.NewFromInt(750_000_000)

	mid := model.RiskFactors{
		ComplianceHistory:     0.5,
		IncidentFrequency:     0.5,
		RegulatoryAttention:   0.5,
		OperationalComplexity: 0.5,
		ProcessMaturity:       0.5,
		ChangeFrequency:       0.5,
		BoardOversight:        0.5,
		PolicyCoverage:        0.5,
		ThreatLandscape:       0.5,
		VendorDependency:      0.5,
	}

	base, err := engine.Adjust(mid, revenue)
	gt.NoError(t, err).Required()

	worsen := []func(*model.RiskFactors){
		func(f *model.RiskFactors) { f.ComplianceHistory = 0.2 },
		func(f *model.RiskFactors) { f.IncidentFrequency = 0.9 },
		func(f *model.RiskFactors) { f.RegulatoryAttention = 0.9 },
		func(f *model.RiskFactors) { f.OperationalComplexity = 0.9 },
		func(f *model.RiskFactors) { f.ProcessMaturity = 0.2 },
		func(f *model.RiskFactors) { f.ChangeFrequency = 0.9 },
		func(f *model.RiskFactors) { f.BoardOversight = 0.2 },
		func(f *model.RiskFactors) { f.PolicyCoverage = 0.2 },
		func(f *model.RiskFactors) { f.ThreatLandscape = 0.9 },
		func(f *model.RiskFactors) { f.VendorDependency = 0.9 },
	}

	for i, w := range worsen {
		f := mid
		w(&f)
		adj, err := engine.Adjust(f, revenue)
		gt.NoError(t, err).Required()
		if adj.TotalMultiplier < base.TotalMultiplier {
			t.Errorf("worsening factor %d lowered multiplier: %v < %v",
				i, adj.TotalMultiplier, base.TotalMultiplier)
		}
	}
}

func TestAdjustRejectsOutOfRange(t *testing.T) {
	engine := riskadj.New()
	revenue := decimal.NewFromInt(1_000_000)

	f := bestCase()
	f.ThreatLandscape = 1.5
	_, err := engine.Adjust(f, revenue)
	gt.Error(t, err)

	_, err = engine.Adjust(bestCase(), decimal.Zero)
	gt.Error(t, err)
}
