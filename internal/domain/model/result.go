package model

import (
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
)

// RiskFactor is one evaluated concern, e.g. "Building Age" or
// "Missing Sprinkler System".
type RiskFactor struct {
	Name        string
	Level       valueobject.RiskLevel
	Description string
}

// RiskCategory groups related risk factors. Its level is always
// derived as the maximum of its factors' levels; a category with no
// factors is No Risk.
type RiskCategory struct {
	Name    string
	Level   valueobject.RiskLevel
	Factors []RiskFactor
}

// NewRiskCategory builds a category with its level derived from the
// given factors.
func NewRiskCategory(name string, factors []RiskFactor) RiskCategory {
	level := valueobject.RiskLevelNoRisk
	for _, f := range factors {
		level = level.Max(f.Level)
	}
	return RiskCategory{
		Name:    name,
		Level:   level,
		Factors: factors,
	}
}

// AssessmentResult is the complete outcome of one assessment. The
// overall level is the maximum across categories: a single High factor
// anywhere makes the whole assessment High.
type AssessmentResult struct {
	OverallLevel    valueobject.RiskLevel
	Categories      []RiskCategory
	Recommendations []string
}

// NewAssessmentResult builds a result with the overall level derived
// from the category levels.
func NewAssessmentResult(categories []RiskCategory, recommendations []string) AssessmentResult {
	overall := valueobject.RiskLevelNoRisk
	for _, c := range categories {
		overall = overall.Max(c.Level)
	}
	return AssessmentResult{
		OverallLevel:    overall,
		Categories:      categories,
		Recommendations: recommendations,
	}
}
