package types

// Recommendation is the qualitative verdict on an investment analysis
type Recommendation string

const (
	StronglyRecommended Recommendation = "strongly_recommended"
	Recommended         Recommendation = "recommended"
	Marginal            Recommendation = "marginal"
	NotRecommended      Recommendation = "not_recommended"
)

// AllRecommendations returns all valid recommendations, best first
func AllRecommendations() []Recommendation {
	return []Recommendation{
		StronglyRecommended,
		Recommended,
		Marginal,
		NotRecommended,
	}
}

// IsValid checks if the recommendation is valid
func (r Recommendation) IsValid() bool {
	switch r {
	case StronglyRecommended, Recommended, Marginal, NotRecommended:
		return true
	default:
		return false
	}
}

// String returns the string representation of the recommendation
func (r Recommendation) String() string {
	return string(r)
}
