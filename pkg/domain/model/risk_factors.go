package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// RiskFactors is a vector of qualitative risk attributes, each a fraction
// in [0,1]. Higher values mean worse risk except for the fields documented
// as complements (history, maturity, oversight, coverage), which the
// adjustment engine inverts.
//
// Out-of-range values are rejected, never clamped.
type RiskFactors struct {
	// Compliance history category
	ComplianceHistory   float64 // 1.0 = spotless record
	IncidentFrequency   float64
	RegulatoryAttention float64

	// Operational category
	OperationalComplexity float64
	ProcessMaturity       float64 // 1.0 = fully mature
	ChangeFrequency       float64

	// Governance category
	BoardOversight float64 // 1.0 = strong oversight
	PolicyCoverage float64 // 1.0 = complete coverage

	// External category
	ThreatLandscape  float64
	VendorDependency float64
}

type namedFactor struct {
	name  string
	value float64
}

func (f *RiskFactors) fields() []namedFactor {
	return []namedFactor{
		{"compliance_history", f.ComplianceHistory},
		{"incident_frequency", f.IncidentFrequency},
		{"regulatory_attention", f.RegulatoryAttention},
		{"operational_complexity", f.OperationalComplexity},
		{"process_maturity", f.ProcessMaturity},
		{"change_frequency", f.ChangeFrequency},
		{"board_oversight", f.BoardOversight},
		{"policy_coverage", f.PolicyCoverage},
		{"threat_landscape", f.ThreatLandscape},
		{"vendor_dependency", f.VendorDependency},
	}
}

// Validate rejects any factor outside [0,1]
func (f *RiskFactors) Validate() error {
	for _, nf := range f.fields() {
		if nf.value < 0 || nf.value > 1 {
			return goerr.New("risk factor out of range [0,1]",
				goerr.V("factor", nf.name), goerr.V("value", nf.value))
		}
	}
	return nil
}
