package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// ViolationType represents a category of regulatory compliance violation.
// The set is closed: unknown tags are a validation error, never a default.
type ViolationType string

const (
	ViolationGovernanceFailure     ViolationType = "ict_governance_failure"
	ViolationRiskFrameworkGap      ViolationType = "risk_management_framework_gap"
	ViolationIncidentReporting     ViolationType = "incident_reporting_violation"
	ViolationResilienceTesting     ViolationType = "resilience_testing_missing"
	ViolationThirdPartyRisk        ViolationType = "third_party_risk_failure"
	ViolationConcentrationRisk     ViolationType = "concentration_risk_unmanaged"
	ViolationThreatIntelSharing    ViolationType = "threat_intel_sharing_gap"
	ViolationBusinessContinuityGap ViolationType = "business_continuity_gap"
)

// AllViolationTypes returns all valid violation types
func AllViolationTypes() []ViolationType {
	return []ViolationType{
		ViolationGovernanceFailure,
		ViolationRiskFrameworkGap,
		ViolationIncidentReporting,
		ViolationResilienceTesting,
		ViolationThirdPartyRisk,
		ViolationConcentrationRisk,
		ViolationThreatIntelSharing,
		ViolationBusinessContinuityGap,
	}
}

// defaultSeverities maps each violation type to the severity applied when
// the caller supplies no override.
var defaultSeverities = map[ViolationType]SeverityLevel{
	ViolationGovernanceFailure:     SeverityMajor,
	ViolationRiskFrameworkGap:      SeverityCritical,
	ViolationIncidentReporting:     SeverityMajor,
	ViolationResilienceTesting:     SeverityCritical,
	ViolationThirdPartyRisk:        SeverityMajor,
	ViolationConcentrationRisk:     SeverityModerate,
	ViolationThreatIntelSharing:    SeverityMinor,
	ViolationBusinessContinuityGap: SeverityMajor,
}

// IsValid checks if the violation type is valid
func (v ViolationType) IsValid() bool {
	_, ok := defaultSeverities[v]
	return ok
}

// DefaultSeverity returns the severity level used when no override is given
func (v ViolationType) DefaultSeverity() SeverityLevel {
	return defaultSeverities[v]
}

// Validate checks if the violation type belongs to the closed set
func (v ViolationType) Validate() error {
	if v == "" {
		return goerr.New("violation type cannot be empty")
	}
	if !v.IsValid() {
		return goerr.New("unknown violation type", goerr.V("type", v))
	}
	return nil
}

// String returns the string representation of the violation type
func (v ViolationType) String() string {
	return string(v)
}
