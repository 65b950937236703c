package valueobject

import "fmt"

// RiskLevel is an immutable value object representing the severity of a
// risk factor, category, or overall assessment. Levels are totally
// ordered: No Risk < Low < Medium < High.
type RiskLevel struct {
	value string
	rank  int
}

var (
	RiskLevelNoRisk = RiskLevel{value: "No Risk", rank: 0}
	RiskLevelLow    = RiskLevel{value: "Low", rank: 1}
	RiskLevelMedium = RiskLevel{value: "Medium", rank: 2}
	RiskLevelHigh   = RiskLevel{value: "High", rank: 3}
)

// RiskLevelFromString reconstructs a RiskLevel from its string representation.
func RiskLevelFromString(s string) (RiskLevel, error) {
	switch s {
	case "No Risk":
		return RiskLevelNoRisk, nil
	case "Low":
		return RiskLevelLow, nil
	case "Medium":
		return RiskLevelMedium, nil
	case "High":
		return RiskLevelHigh, nil
	default:
		return RiskLevel{}, fmt.Errorf("invalid risk level: %s", s)
	}
}

// RiskLevelFromScore derives the appropriate RiskLevel from a numeric
// point score. The cutoffs are the single source of truth for the
// score-to-level mapping used by all evaluators:
// >=75 High, >=50 Medium, >=25 Low, otherwise No Risk.
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= 75:
		return RiskLevelHigh
	case score >= 50:
		return RiskLevelMedium
	case score >= 25:
		return RiskLevelLow
	default:
		return RiskLevelNoRisk
	}
}

// String returns the string representation.
func (r RiskLevel) String() string {
	return r.value
}

// Rank returns the position in the severity ordering (No Risk=0 .. High=3).
func (r RiskLevel) Rank() int {
	return r.rank
}

// AtLeast reports whether r is as severe as other or more so.
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return r.rank >= other.rank
}

// Max returns the more severe of r and other.
func (r RiskLevel) Max(other RiskLevel) RiskLevel {
	if other.rank > r.rank {
		return other
	}
	return r
}

// IsZero returns true if the RiskLevel has not been set.
func (r RiskLevel) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RiskLevel.
func (r RiskLevel) Equal(other RiskLevel) bool {
	return r.value == other.value
}
