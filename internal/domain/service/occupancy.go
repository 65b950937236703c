package service

import (
	"fmt"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
)

// CategoryOccupancy is the Occupancy Density category name.
const CategoryOccupancy = "Occupancy Density"

// OccupancyEvaluator scores concentration-of-loss exposure from the
// unit count. Buckets are monotonic: 2-10 Low, 11-50 Medium, >50 High.
type OccupancyEvaluator struct{}

// NewOccupancyEvaluator creates an OccupancyEvaluator.
func NewOccupancyEvaluator() *OccupancyEvaluator {
	return &OccupancyEvaluator{}
}

// Evaluate implements CategoryEvaluator.
func (e *OccupancyEvaluator) Evaluate(attrs model.PropertyAttributes) CategoryEvaluation {
	units := attrs.UnitCount()

	var level valueobject.RiskLevel
	var recommendation string
	switch {
	case units > 50:
		level = valueobject.RiskLevelHigh
		recommendation = "Engage professional property management and review concentration-of-loss coverage limits."
	case units > 10:
		level = valueobject.RiskLevelMedium
		recommendation = "Develop and post emergency evacuation plans and conduct periodic fire drills for residents."
	default:
		level = valueobject.RiskLevelLow
	}

	return CategoryEvaluation{
		Name: CategoryOccupancy,
		Factors: []EvaluatedFactor{
			{
				Factor: model.RiskFactor{
					Name:        "Unit Count",
					Level:       level,
					Description: fmt.Sprintf("%d units concentrate tenant exposure and loss potential in a single structure.", units),
				},
				Recommendation: recommendation,
			},
		},
	}
}
