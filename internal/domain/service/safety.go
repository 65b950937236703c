package service

import (
	"fmt"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
)

// CategorySafety is the Safety Features category name.
const CategorySafety = "Safety Features"

// SafetyEvaluator emits one factor per missing catalog feature, at
// the feature's protective weight. A property with the full catalog
// installed gets a single affirmative No Risk factor.
type SafetyEvaluator struct{}

// NewSafetyEvaluator creates a SafetyEvaluator.
func NewSafetyEvaluator() *SafetyEvaluator {
	return &SafetyEvaluator{}
}

// Evaluate implements CategoryEvaluator.
func (e *SafetyEvaluator) Evaluate(attrs model.PropertyAttributes) CategoryEvaluation {
	missing := attrs.MissingFeatures()
	if len(missing) == 0 {
		return CategoryEvaluation{
			Name: CategorySafety,
			Factors: []EvaluatedFactor{
				{
					Factor: model.RiskFactor{
						Name:        "Full Safety Coverage",
						Level:       valueobject.RiskLevelNoRisk,
						Description: "All catalog safety features are installed.",
					},
				},
			},
		}
	}

	factors := make([]EvaluatedFactor, 0, len(missing))
	for _, f := range missing {
		factors = append(factors, EvaluatedFactor{
			Factor: model.RiskFactor{
				Name:        fmt.Sprintf("Missing %s", f),
				Level:       f.MissingWeight(),
				Description: missingDescription(f),
			},
			Recommendation: fmt.Sprintf("Install %s to reduce risk.", f),
		})
	}

	return CategoryEvaluation{Name: CategorySafety, Factors: factors}
}

func missingDescription(f valueobject.SafetyFeature) string {
	if f.IsLifeSafety() {
		return fmt.Sprintf("The property lacks %s, a life safety system expected in multi-family housing.", f)
	}
	return fmt.Sprintf("The property lacks %s, reducing protection for residents and the structure.", f)
}
