package model

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// CustomFactor is a named multiplier applied on top of the structural
// penalty multipliers. Factors are applied in the order they are supplied.
type CustomFactor struct {
	Label      string
	Multiplier float64
}

// ViolationRecord describes a single assessed compliance gap. Records are
// immutable and consumed once per calculation.
type ViolationRecord struct {
	Type             types.ViolationType
	SeverityOverride *types.SeverityLevel
	IsRepeat         bool
	IsWillful        bool
	CustomFactors    []CustomFactor
}

// Severity resolves the effective severity: the override when present,
// otherwise the violation type's default.
func (v *ViolationRecord) Severity() types.SeverityLevel {
	if v.SeverityOverride != nil {
		return *v.SeverityOverride
	}
	return v.Type.DefaultSeverity()
}

// Validate checks the record before any penalty computation
func (v *ViolationRecord) Validate() error {
	if err := v.Type.Validate(); err != nil {
		return goerr.Wrap(ErrUnknownViolationType, err.Error(), goerr.V("type", v.Type))
	}
	if v.SeverityOverride != nil && !v.SeverityOverride.IsValid() {
		return goerr.New("invalid severity override",
			goerr.V("severity", *v.SeverityOverride), goerr.V("type", v.Type))
	}
	for i, f := range v.CustomFactors {
		if f.Label == "" {
			return goerr.New("custom factor label is required", goerr.V("index", i))
		}
		if f.Multiplier <= 0 {
			return goerr.New("custom factor multiplier must be positive",
				goerr.V("label", f.Label), goerr.V("multiplier", f.Multiplier))
		}
	}
	return nil
}
