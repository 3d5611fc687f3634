package config

import (
	"os"

	"github.com/enricoaquilina/dora-finrisk/pkg/domain/model"
	domainConfig "github.com/enricoaquilina/dora-finrisk/pkg/domain/model/config"
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/enricoaquilina/dora-finrisk/pkg/engine/cashflow"
	"github.com/enricoaquilina/dora-finrisk/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// AnalysisFile is the TOML description of one ROI analysis
type AnalysisFile struct {
	Investment  Investment   `toml:"investment"`
	Assumptions *Assumptions `toml:"assumptions"`
	Simulation  *Simulation  `toml:"simulation"`
	Sensitivity *Sensitivity `toml:"sensitivity"`
}

// Investment holds the benefit and cost totals of the analyzed measure
type Investment struct {
	TotalBenefit  float64 `toml:"total_benefit"`
	TotalCost     float64 `toml:"total_cost"`
	AnnualSavings float64 `toml:"annual_savings"`
	Spread        string  `toml:"spread"`
	AvoidanceYear int     `toml:"avoidance_year"`
}

// Validate checks the investment section
func (i *Investment) Validate() error {
	if i.TotalBenefit < 0 {
		return goerr.Wrap(ErrInvalidConfig, "total_benefit must not be negative",
			goerr.V("total_benefit", i.TotalBenefit))
	}
	if i.AnnualSavings < 0 {
		return goerr.Wrap(ErrInvalidConfig, "annual_savings must not be negative",
			goerr.V("annual_savings", i.AnnualSavings))
	}
	switch cashflow.SpreadMode(i.Spread) {
	case cashflow.SpreadEven, cashflow.SpreadAvoidanceYear, "":
	default:
		return goerr.Wrap(ErrInvalidConfig, "unknown benefit spread mode",
			goerr.V("spread", i.Spread))
	}
	return nil
}

// Assumptions overrides the default financial assumptions. All fields are
// required when the section is present.
type Assumptions struct {
	DiscountRate        float64 `toml:"discount_rate"`
	RiskFreeRate        float64 `toml:"risk_free_rate"`
	InflationRate       float64 `toml:"inflation_rate"`
	TaxRate             float64 `toml:"tax_rate"`
	AnalysisPeriodYears int     `toml:"analysis_period_years"`
	Currency            string  `toml:"currency"`
}

// Simulation overrides the default Monte Carlo parameters. Zero fields keep
// their defaults.
type Simulation struct {
	Trials       int     `toml:"trials"`
	Seed         int64   `toml:"seed"`
	Workers      int     `toml:"workers"`
	BenefitSigma float64 `toml:"benefit_sigma"`
	CostSigma    float64 `toml:"cost_sigma"`
	RateSigma    float64 `toml:"rate_sigma"`
	Skip         bool    `toml:"skip"`
}

// Sensitivity overrides the default sweep parameters
type Sensitivity struct {
	MinPercent float64 `toml:"min_percent"`
	MaxPercent float64 `toml:"max_percent"`
	Points     int     `toml:"points"`
	Skip       bool    `toml:"skip"`
}

// Validate checks the whole analysis input
func (a *AnalysisFile) Validate() error {
	if err := a.Investment.Validate(); err != nil {
		return err
	}
	if a.Assumptions != nil {
		assumptions := a.Assumptions.toModel()
		if err := assumptions.Validate(); err != nil {
			return goerr.Wrap(err, "invalid assumptions section")
		}
	}
	return nil
}

func (a *Assumptions) toModel() model.FinancialAssumptions {
	return model.FinancialAssumptions{
		DiscountRate:        a.DiscountRate,
		RiskFreeRate:        a.RiskFreeRate,
		InflationRate:       a.InflationRate,
		TaxRate:             a.TaxRate,
		AnalysisPeriodYears: a.AnalysisPeriodYears,
		Currency:            a.Currency,
	}
}

// ToAnalysisInput converts the file into the use case input, filling
// defaults for absent sections.
func (a *AnalysisFile) ToAnalysisInput() usecase.AnalysisInput {
	in := usecase.AnalysisInput{
		TotalBenefit:  decimal.NewFromFloat(a.Investment.TotalBenefit),
		TotalCost:     decimal.NewFromFloat(a.Investment.TotalCost),
		AnnualSavings: decimal.NewFromFloat(a.Investment.AnnualSavings),
		Assumptions:   model.DefaultAssumptions(),
		Spread:        cashflow.SpreadMode(a.Investment.Spread),
		AvoidanceYear: a.Investment.AvoidanceYear,
	}

	if a.Assumptions != nil {
		in.Assumptions = a.Assumptions.toModel()
	}

	trials := domainConfig.DefaultTrialConfig()
	if a.Simulation != nil {
		if a.Simulation.Trials > 0 {
			trials.Trials = a.Simulation.Trials
		}
		if a.Simulation.Workers > 0 {
			trials.Workers = a.Simulation.Workers
		}
		if a.Simulation.BenefitSigma > 0 {
			trials.BenefitSigma = a.Simulation.BenefitSigma
		}
		if a.Simulation.CostSigma > 0 {
			trials.CostSigma = a.Simulation.CostSigma
		}
		if a.Simulation.RateSigma > 0 {
			trials.RateSigma = a.Simulation.RateSigma
		}
		trials.Seed = a.Simulation.Seed
		in.SkipSimulation = a.Simulation.Skip
	}
	in.Trials = trials

	if a.Sensitivity != nil {
		in.SkipSensitivity = a.Sensitivity.Skip
		sweeps := domainConfig.DefaultSweepConfig()
		if a.Sensitivity.Points > 0 {
			sweeps.Points = a.Sensitivity.Points
		}
		if a.Sensitivity.MinPercent != 0 || a.Sensitivity.MaxPercent != 0 {
			r := domainConfig.SweepRange{
				MinPercent: a.Sensitivity.MinPercent,
				MaxPercent: a.Sensitivity.MaxPercent,
			}
			for name := range sweeps.Ranges {
				sweeps.Ranges[name] = r
			}
		}
		in.Sweeps = sweeps
	}

	return in
}

// LoadAnalysisFile loads and validates an analysis input from a TOML file
func LoadAnalysisFile(path string) (*AnalysisFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read analysis input", goerr.V(InputPathKey, path))
	}

	var file AnalysisFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML input", goerr.V(InputPathKey, path))
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "analysis input validation failed", goerr.V(InputPathKey, path))
	}

	return &file, nil
}

// ViolationsFile is the TOML description of a penalty exposure assessment
type ViolationsFile struct {
	AnnualRevenue float64             `toml:"annual_revenue"`
	CapFraction   float64             `toml:"cap_fraction"`
	Violations    []Violation         `toml:"violation"`
	RiskFactors   *RiskFactorsSection `toml:"risk_factors"`
}

// Violation is one assessed compliance gap
type Violation struct {
	Type     string   `toml:"type"`
	Severity string   `toml:"severity"`
	Repeat   bool     `toml:"repeat"`
	Willful  bool     `toml:"willful"`
	Factors  []Factor `toml:"factor"`
}

// Factor is one named custom multiplier
type Factor struct {
	Label      string  `toml:"label"`
	Multiplier float64 `toml:"multiplier"`
}

// RiskFactorsSection mirrors model.RiskFactors in TOML form
type RiskFactorsSection struct {
	ComplianceHistory     float64 `toml:"compliance_history"`
	IncidentFrequency     float64 `toml:"incident_frequency"`
	RegulatoryAttention   float64 `toml:"regulatory_attention"`
	OperationalComplexity float64 `toml:"operational_complexity"`
	ProcessMaturity       float64 `toml:"process_maturity"`
	ChangeFrequency       float64 `toml:"change_frequency"`
	BoardOversight        float64 `toml:"board_oversight"`
	PolicyCoverage        float64 `toml:"policy_coverage"`
	ThreatLandscape       float64 `toml:"threat_landscape"`
	VendorDependency      float64 `toml:"vendor_dependency"`
}

func (r *RiskFactorsSection) toModel() model.RiskFactors {
	return model.RiskFactors{
		ComplianceHistory:     r.ComplianceHistory,
		IncidentFrequency:     r.IncidentFrequency,
		RegulatoryAttention:   r.RegulatoryAttention,
		OperationalComplexity: r.OperationalComplexity,
		ProcessMaturity:       r.ProcessMaturity,
		ChangeFrequency:       r.ChangeFrequency,
		BoardOversight:        r.BoardOversight,
		PolicyCoverage:        r.PolicyCoverage,
		ThreatLandscape:       r.ThreatLandscape,
		VendorDependency:      r.VendorDependency,
	}
}

// Validate checks the violations input. Record-level semantics are checked
// again by the calculation engines; this pass surfaces file problems with
// their position in the file.
func (v *ViolationsFile) Validate() error {
	if v.AnnualRevenue <= 0 {
		return goerr.Wrap(ErrInvalidConfig, "annual_revenue must be positive",
			goerr.V("annual_revenue", v.AnnualRevenue))
	}
	if v.CapFraction < 0 {
		return goerr.Wrap(ErrInvalidConfig, "cap_fraction must not be negative",
			goerr.V("cap_fraction", v.CapFraction))
	}
	for i, viol := range v.Violations {
		if err := types.ViolationType(viol.Type).Validate(); err != nil {
			return goerr.Wrap(err, "invalid violation type", goerr.V(ViolationIndexKey, i))
		}
		if viol.Severity != "" {
			if _, err := types.ParseSeverityLevel(viol.Severity); err != nil {
				return goerr.Wrap(ErrInvalidConfig, err.Error(), goerr.V(ViolationIndexKey, i))
			}
		}
	}
	if v.RiskFactors != nil {
		factors := v.RiskFactors.toModel()
		if err := factors.Validate(); err != nil {
			return goerr.Wrap(err, "invalid risk_factors section")
		}
	}
	return nil
}

// ToAssessInput converts the file into the use case input
func (v *ViolationsFile) ToAssessInput() usecase.AssessInput {
	in := usecase.AssessInput{
		AnnualRevenue: decimal.NewFromFloat(v.AnnualRevenue),
		CapFraction:   v.CapFraction,
	}

	for _, viol := range v.Violations {
		rec := model.ViolationRecord{
			Type:      types.ViolationType(viol.Type),
			IsRepeat:  viol.Repeat,
			IsWillful: viol.Willful,
		}
		if viol.Severity != "" {
			severity := types.SeverityLevel(viol.Severity)
			rec.SeverityOverride = &severity
		}
		for _, f := range viol.Factors {
			rec.CustomFactors = append(rec.CustomFactors, model.CustomFactor{
				Label:      f.Label,
				Multiplier: f.Multiplier,
			})
		}
		in.Violations = append(in.Violations, rec)
	}

	if v.RiskFactors != nil {
		factors := v.RiskFactors.toModel()
		in.RiskFactors = &factors
	}

	return in
}

// LoadViolationsFile loads and validates a violations input from a TOML file
func LoadViolationsFile(path string) (*ViolationsFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read violations input", goerr.V(InputPathKey, path))
	}

	var file ViolationsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML input", goerr.V(InputPathKey, path))
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "violations input validation failed", goerr.V(InputPathKey, path))
	}

	return &file, nil
}
