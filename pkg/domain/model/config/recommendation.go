package config

import (
	"github.com/enricoaquilina/dora-finrisk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RecommendationRule is one threshold row: an analysis qualifies for the
// verdict when every bound it sets is met.
type RecommendationRule struct {
	Verdict         types.Recommendation
	MinROIPercent   float64
	MaxPaybackYears float64 // 0 = no payback requirement
	MinProbPositive float64
}

// RecommendationThresholds is an ordered rule list, best verdict first.
// The first matching rule wins; the final fallback is not_recommended.
type RecommendationThresholds struct {
	Rules []RecommendationRule
}

// DefaultRecommendationThresholds returns the built-in verdict thresholds
func DefaultRecommendationThresholds() RecommendationThresholds {
	return RecommendationThresholds{
		Rules: []RecommendationRule{
			{
				Verdict:         types.StronglyRecommended,
				MinROIPercent:   200,
				MaxPaybackYears: 2,
				MinProbPositive: 0.9,
			},
			{
				Verdict:         types.Recommended,
				MinROIPercent:   100,
				MaxPaybackYears: 3,
				MinProbPositive: 0.75,
			},
			{
				Verdict:         types.Marginal,
				MinROIPercent:   25,
				MinProbPositive: 0.5,
			},
		},
	}
}

// Validate checks the rule ordering and bounds
func (t *RecommendationThresholds) Validate() error {
	for i, r := range t.Rules {
		if !r.Verdict.IsValid() {
			return goerr.New("invalid recommendation verdict", goerr.V("index", i))
		}
		if r.MinProbPositive < 0 || r.MinProbPositive > 1 {
			return goerr.New("probability threshold must be in [0,1]",
				goerr.V("verdict", r.Verdict), goerr.V("value", r.MinProbPositive))
		}
		if r.MaxPaybackYears < 0 {
			return goerr.New("payback threshold must not be negative",
				goerr.V("verdict", r.Verdict))
		}
	}
	return nil
}

// Evaluate maps the metric triple to a verdict. Payback and probability
// bounds are skipped when the corresponding input is unavailable (payback
// never reached, simulation not run).
func (t *RecommendationThresholds) Evaluate(roiPercent float64, payback *float64, probPositive *float64) types.Recommendation {
	for _, r := range t.Rules {
		if roiPercent < r.MinROIPercent {
			continue
		}
		if r.MaxPaybackYears > 0 {
			if payback == nil || *payback > r.MaxPaybackYears {
				continue
			}
		}
		if r.MinProbPositive > 0 && probPositive != nil && *probPositive < r.MinProbPositive {
			continue
		}
		return r.Verdict
	}
	return types.NotRecommended
}
