package types

// CompanySizeClass classifies an entity by annual revenue. It is derived,
// never supplied as input.
type CompanySizeClass string

const (
	SizeSmall    CompanySizeClass = "small"
	SizeMedium   CompanySizeClass = "medium"
	SizeLarge    CompanySizeClass = "large"
	SizeSystemic CompanySizeClass = "systemic"
)

// AllCompanySizeClasses returns all valid size classes in ascending order
func AllCompanySizeClasses() []CompanySizeClass {
	return []CompanySizeClass{
		SizeSmall,
		SizeMedium,
		SizeLarge,
		SizeSystemic,
	}
}

// IsValid checks if the size class is valid
func (c CompanySizeClass) IsValid() bool {
	switch c {
	case SizeSmall, SizeMedium, SizeLarge, SizeSystemic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the size class
func (c CompanySizeClass) String() string {
	return string(c)
}

// RiskProfileClass classifies an entity by its composite risk multiplier.
// It is derived, never supplied as input.
type RiskProfileClass string

const (
	ProfileLow      RiskProfileClass = "low"
	ProfileMedium   RiskProfileClass = "medium"
	ProfileHigh     RiskProfileClass = "high"
	ProfileCritical RiskProfileClass = "critical"
)

// AllRiskProfileClasses returns all valid profile classes in ascending order
func AllRiskProfileClasses() []RiskProfileClass {
	return []RiskProfileClass{
		ProfileLow,
		ProfileMedium,
		ProfileHigh,
		ProfileCritical,
	}
}

// IsValid checks if the profile class is valid
func (p RiskProfileClass) IsValid() bool {
	switch p {
	case ProfileLow, ProfileMedium, ProfileHigh, ProfileCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the profile class
func (p RiskProfileClass) String() string {
	return string(p)
}
