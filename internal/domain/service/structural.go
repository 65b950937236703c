package service

import (
	"fmt"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
)

// CategoryStructural is the Structural & Age category name.
const CategoryStructural = "Structural & Age"

// agePoints buckets property age onto the point scale. The buckets
// are monotonic: <10 -> 0, 10-29 -> 25, 30-59 -> 50, >=60 -> 75.
func agePoints(ageYears int) int {
	switch {
	case ageYears >= 60:
		return 75
	case ageYears >= 30:
		return 50
	case ageYears >= 10:
		return 25
	default:
		return 0
	}
}

// StructuralEvaluator scores building age and construction type
// jointly. The construction factor carries the age points plus the
// material surcharge, so Wood Frame lands exactly one level above
// Concrete or Steel Frame for a building of equal age.
type StructuralEvaluator struct{}

// NewStructuralEvaluator creates a StructuralEvaluator.
func NewStructuralEvaluator() *StructuralEvaluator {
	return &StructuralEvaluator{}
}

// Evaluate implements CategoryEvaluator.
func (e *StructuralEvaluator) Evaluate(attrs model.PropertyAttributes) CategoryEvaluation {
	points := agePoints(attrs.AgeYears())
	factors := []EvaluatedFactor{
		{
			Factor: model.RiskFactor{
				Name:        "Building Age",
				Level:       valueobject.RiskLevelFromScore(points),
				Description: ageDescription(attrs.AgeYears()),
			},
			Recommendation: "Schedule a structural inspection covering electrical, plumbing, and roofing systems.",
		},
	}

	// Zero-surcharge materials contribute no factor of their own; the
	// age factor already tells the whole story for them.
	if surcharge := attrs.ConstructionType().RiskPoints(); surcharge > 0 {
		factors = append(factors, EvaluatedFactor{
			Factor: model.RiskFactor{
				Name:        "Construction Type",
				Level:       valueobject.RiskLevelFromScore(points + surcharge),
				Description: constructionDescription(attrs.ConstructionType(), attrs.AgeYears()),
			},
			Recommendation: constructionRecommendation(attrs.ConstructionType()),
		})
	}

	return CategoryEvaluation{Name: CategoryStructural, Factors: factors}
}

func ageDescription(ageYears int) string {
	switch {
	case ageYears >= 60:
		return fmt.Sprintf("At %d years the building likely predates modern electrical, plumbing, and seismic standards.", ageYears)
	case ageYears >= 30:
		return fmt.Sprintf("At %d years the building's electrical, plumbing, and structural systems are approaching end of service life.", ageYears)
	case ageYears >= 10:
		return fmt.Sprintf("At %d years the building has moderate maintenance needs typical of its age.", ageYears)
	default:
		return fmt.Sprintf("At %d years the building is recent construction with few expected structural issues.", ageYears)
	}
}

func constructionDescription(ct valueobject.ConstructionType, ageYears int) string {
	switch ct {
	case valueobject.ConstructionWoodFrame:
		return fmt.Sprintf("Wood frame construction compounds fire and pest exposure for a %d-year-old building.", ageYears)
	case valueobject.ConstructionBrick:
		return fmt.Sprintf("Brick construction resists fire well but mortar joints deteriorate with age (%d years).", ageYears)
	case valueobject.ConstructionMixedMaterials:
		return fmt.Sprintf("Mixed materials carry uneven fire and durability characteristics across a %d-year-old structure.", ageYears)
	default:
		return fmt.Sprintf("%s construction offers strong fire resistance and durability.", ct)
	}
}

func constructionRecommendation(ct valueobject.ConstructionType) string {
	switch ct {
	case valueobject.ConstructionWoodFrame:
		return "Commission a fire protection engineering review of the wood framing."
	case valueobject.ConstructionBrick:
		return "Inspect exterior masonry and mortar joints for deterioration."
	default:
		return "Survey the transitions between construction materials for moisture and fire separation issues."
	}
}
