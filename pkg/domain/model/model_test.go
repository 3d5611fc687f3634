package model_test

import (
	"testing"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/m-mizutani/gt"
	"github.com/shopspring/decimal"
)

func TestViolationRecordSeverity(t *testing.T) {
	rec := &model.ViolationRecord{Type: types.ViolationResilienceTesting}
	gt.Value(t, rec.Severity()).Equal(types.SeverityCritical)

	override := types.SeverityMinor
	rec = &model.ViolationRecord{
		Type:             types.ViolationResilienceTesting,
		SeverityOverride: &override,
	}
	gt.Value(t, rec.Severity()).Equal(types.SeverityMinor)
}

func TestViolationRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     model.ViolationRecord
		wantErr bool
	}{
		{
			name: "valid record",
			rec:  model.ViolationRecord{Type: types.ViolationIncidentReporting},
		},
		{
			name:    "unknown type",
			rec:     model.ViolationRecord{Type: "phishing"},
			wantErr: true,
		},
		{
			name:    "empty type",
			rec:     model.ViolationRecord{},
			wantErr: true,
		},
		{
			name: "custom factor without label",
			rec: model.ViolationRecord{
				Type:          types.ViolationIncidentReporting,
				CustomFactors: []model.CustomFactor{{Multiplier: 1.2}},
			},
			wantErr: true,
		},
		{
			name: "non-positive custom multiplier",
			rec: model.ViolationRecord{
				Type:          types.ViolationIncidentReporting,
				CustomFactors: []model.CustomFactor{{Label: "cooperation", Multiplier: 0}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestRiskFactorsValidate(t *testing.T) {
	f := model.RiskFactors{
		ComplianceHistory: 0.8,
		ProcessMaturity:   0.6,
		BoardOversight:    1.0,
	}
	gt.NoError(t, f.Validate())

	// Out-of-range values are rejected, not clamped.
	f.IncidentFrequency = 1.01
	gt.Error(t, f.Validate())

	f.IncidentFrequency = 0.5
	f.ThreatLandscape = -0.1
	gt.Error(t, f.Validate())
}

func TestFinancialAssumptions(t *testing.T) {
	a := model.DefaultAssumptions()
	gt.NoError(t, a.Validate())
	gt.Value(t, a.DiscountRate).Equal(0.08)
	gt.Value(t, a.AnalysisPeriodYears).Equal(5)

	a.AnalysisPeriodYears = 0
	gt.Error(t, a.Validate())

	a = model.DefaultAssumptions()
	a.TaxRate = 1.0
	gt.Error(t, a.Validate())
}

func TestNetByYear(t *testing.T) {
	flows := []model.CashFlowItem{
		{Year: 0, Amount: decimal.NewFromInt(-100), Category: types.FlowImplementationCost},
		{Year: 1, Amount: decimal.NewFromInt(-10), Category: types.FlowMaintenanceCost},
		{Year: 1, Amount: decimal.NewFromInt(40), Category: types.FlowCostSavings},
		{Year: 2, Amount: decimal.NewFromInt(40), Category: types.FlowCostSavings},
	}

	net := model.NetByYear(flows)
	gt.Array(t, net).Length(3)
	gt.Bool(t, net[0].Equal(decimal.NewFromInt(-100))).True()
	gt.Bool(t, net[1].Equal(decimal.NewFromInt(30))).True()
	gt.Bool(t, net[2].Equal(decimal.NewFromInt(40))).True()

	costs := model.TotalByCategory(flows, types.FlowImplementationCost)
	gt.Bool(t, costs.Equal(decimal.NewFromInt(100))).True()
}
