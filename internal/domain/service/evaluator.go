package service

import (
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
)

// EvaluatedFactor couples a risk factor with the mitigation the engine
// recommends when the factor lands at Medium or above. Factors below
// Medium never surface their recommendation.
type EvaluatedFactor struct {
	Factor         model.RiskFactor
	Recommendation string
}

// CategoryEvaluation is the outcome of one category evaluator. Skip
// marks a category that does not apply to the property at all (today
// only Location Factors, when no location was supplied).
type CategoryEvaluation struct {
	Name    string
	Factors []EvaluatedFactor
	Skip    bool
}

// CategoryEvaluator evaluates one risk category for a property.
// Implementations must be pure: same attributes, same factors, no I/O.
type CategoryEvaluator interface {
	Evaluate(attrs model.PropertyAttributes) CategoryEvaluation
}
