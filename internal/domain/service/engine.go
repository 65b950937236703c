package service

import (
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
)

// Engine is the rule-based risk assessment engine. It runs a fixed
// ordered chain of category evaluators over validated property
// attributes and aggregates their factors into categories, an overall
// level, and recommendations. Assess is pure and deterministic: no
// I/O, no clock, no randomness, safe for concurrent use.
type Engine struct {
	evaluators []CategoryEvaluator
}

// NewEngine creates an Engine with the default category chain:
// Structural & Age, Occupancy Density, Safety Features, Liability
// Risks, Location Factors. Output ordering follows this chain.
func NewEngine() *Engine {
	return &Engine{
		evaluators: []CategoryEvaluator{
			NewStructuralEvaluator(),
			NewOccupancyEvaluator(),
			NewSafetyEvaluator(),
			NewLiabilityEvaluator(),
			NewLocationEvaluator(),
		},
	}
}

// Assess evaluates all categories and derives the category levels,
// the overall level, and the recommendation list. Category levels are
// the maximum of their factors' levels; the overall level is the
// maximum across categories. One recommendation is emitted per factor
// at Medium or above, in traversal order, without deduplication.
func (e *Engine) Assess(attrs model.PropertyAttributes) model.AssessmentResult {
	categories := make([]model.RiskCategory, 0, len(e.evaluators))
	recommendations := make([]string, 0)

	for _, evaluator := range e.evaluators {
		evaluation := evaluator.Evaluate(attrs)
		if evaluation.Skip {
			continue
		}

		factors := make([]model.RiskFactor, 0, len(evaluation.Factors))
		for _, ef := range evaluation.Factors {
			factors = append(factors, ef.Factor)
			if ef.Factor.Level.AtLeast(valueobject.RiskLevelMedium) && ef.Recommendation != "" {
				recommendations = append(recommendations, ef.Recommendation)
			}
		}

		categories = append(categories, model.NewRiskCategory(evaluation.Name, factors))
	}

	return model.NewAssessmentResult(categories, recommendations)
}
