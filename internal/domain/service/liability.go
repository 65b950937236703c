package service

import (
	"fmt"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
)

// CategoryLiability is the Liability Risks category name.
const CategoryLiability = "Liability Risks"

// codeComplianceAgeYears is the age at which a building is assumed to
// predate at least one major building or fire code revision.
const codeComplianceAgeYears = 30

// LiabilityEvaluator derives tenant-safety and compliance exposure
// from age and missing safety features. It introduces no data beyond
// what the other categories already see; it reframes it as liability.
type LiabilityEvaluator struct{}

// NewLiabilityEvaluator creates a LiabilityEvaluator.
func NewLiabilityEvaluator() *LiabilityEvaluator {
	return &LiabilityEvaluator{}
}

// Evaluate implements CategoryEvaluator.
func (e *LiabilityEvaluator) Evaluate(attrs model.PropertyAttributes) CategoryEvaluation {
	factors := make([]EvaluatedFactor, 0, 3)

	if attrs.AgeYears() >= codeComplianceAgeYears {
		factors = append(factors, EvaluatedFactor{
			Factor: model.RiskFactor{
				Name:        "Code Compliance",
				Level:       valueobject.RiskLevelMedium,
				Description: fmt.Sprintf("A %d-year-old building may predate current building and fire codes; grandfathered systems raise compliance exposure.", attrs.AgeYears()),
			},
			Recommendation: "Conduct a building code compliance audit and remediate grandfathered deficiencies.",
		})
	}

	if missingLifeSafety(attrs) {
		factors = append(factors, EvaluatedFactor{
			Factor: model.RiskFactor{
				Name:        "Tenant Life Safety",
				Level:       valueobject.RiskLevelMedium,
				Description: "Absent life safety systems increase the likelihood and severity of tenant injury claims.",
			},
			Recommendation: "Review premises liability coverage and document a life-safety remediation plan.",
		})
	}

	if !attrs.HasFeature(valueobject.FeatureSecuredAccess) && !attrs.HasFeature(valueobject.FeatureGatedEntry) {
		factors = append(factors, EvaluatedFactor{
			Factor: model.RiskFactor{
				Name:        "Premises Security",
				Level:       valueobject.RiskLevelMedium,
				Description: "With neither secured access nor gated entry, the property is exposed to negligent security claims.",
			},
			Recommendation: "Adopt controlled access procedures and review premises security liability exposure.",
		})
	}

	return CategoryEvaluation{Name: CategoryLiability, Factors: factors}
}

func missingLifeSafety(attrs model.PropertyAttributes) bool {
	for _, f := range attrs.MissingFeatures() {
		if f.IsLifeSafety() {
			return true
		}
	}
	return false
}
