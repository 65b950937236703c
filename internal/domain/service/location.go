package service

import (
	"fmt"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
)

// CategoryLocation is the Location Factors category name.
const CategoryLocation = "Location Factors"

// LocationEvaluator emits a single advisory factor when a location
// was supplied. There is no geospatial risk table in scope, so the
// factor never rises above Low and never fabricates hazard data; when
// no location is given the category is skipped entirely.
type LocationEvaluator struct{}

// NewLocationEvaluator creates a LocationEvaluator.
func NewLocationEvaluator() *LocationEvaluator {
	return &LocationEvaluator{}
}

// Evaluate implements CategoryEvaluator.
func (e *LocationEvaluator) Evaluate(attrs model.PropertyAttributes) CategoryEvaluation {
	if attrs.Location() == "" {
		return CategoryEvaluation{Name: CategoryLocation, Skip: true}
	}

	return CategoryEvaluation{
		Name: CategoryLocation,
		Factors: []EvaluatedFactor{
			{
				Factor: model.RiskFactor{
					Name:        "Location Review",
					Level:       valueobject.RiskLevelLow,
					Description: fmt.Sprintf("Location-specific hazards for %q were not evaluated; obtain local flood, seismic, and crime data before binding coverage.", attrs.Location()),
				},
			},
		},
	}
}
