package types

import "fmt"

// SeverityLevel represents the severity tier of a compliance violation.
// Tiers are ordered: minor < moderate < major < critical.
type SeverityLevel string

const (
	SeverityMinor    SeverityLevel = "minor"
	SeverityModerate SeverityLevel = "moderate"
	SeverityMajor    SeverityLevel = "major"
	SeverityCritical SeverityLevel = "critical"
)

// AllSeverityLevels returns all valid severity levels in ascending order
func AllSeverityLevels() []SeverityLevel {
	return []SeverityLevel{
		SeverityMinor,
		SeverityModerate,
		SeverityMajor,
		SeverityCritical,
	}
}

// IsValid checks if the severity level is valid
func (s SeverityLevel) IsValid() bool {
	switch s {
	case SeverityMinor,
		SeverityModerate,
		SeverityMajor,
		SeverityCritical:
		return true
	default:
		return false
	}
}

// Rank returns the ordinal position of the severity level, starting at 0
// for minor. Invalid levels rank below minor.
func (s SeverityLevel) Rank() int {
	switch s {
	case SeverityMinor:
		return 0
	case SeverityModerate:
		return 1
	case SeverityMajor:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// String returns the string representation of the severity level
func (s SeverityLevel) String() string {
	return string(s)
}

// ParseSeverityLevel parses a string into a SeverityLevel
func ParseSeverityLevel(s string) (SeverityLevel, error) {
	level := SeverityLevel(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid severity level: %s", s)
	}
	return level, nil
}
