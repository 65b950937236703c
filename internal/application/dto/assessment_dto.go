package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
)

// AssessPropertyRequest is the input DTO for the AssessProperty use
// case. Field names follow the wire contract of the submitting form.
type AssessPropertyRequest struct {
	PropertyAge      int      `json:"propertyAge" validate:"gte=0"`
	NumberOfUnits    int      `json:"numberOfUnits" validate:"gte=2"`
	ConstructionType string   `json:"constructionType" validate:"required"`
	SafetyFeatures   []string `json:"safetyFeatures"`
	Location         string   `json:"location,omitempty"`
}

// RiskFactorDTO is one evaluated concern on the wire. The factor name
// travels in the "category" field for compatibility with existing
// consumers.
type RiskFactorDTO struct {
	Category    string `json:"category"`
	RiskLevel   string `json:"risk_level"`
	Description string `json:"description"`
}

// RiskCategoryDTO is one named factor grouping with its derived level.
type RiskCategoryDTO struct {
	CategoryName      string          `json:"category_name"`
	CategoryRiskLevel string          `json:"category_risk_level"`
	RiskFactors       []RiskFactorDTO `json:"risk_factors"`
}

// AssessmentResponse is the output DTO returned after an assessment.
type AssessmentResponse struct {
	ID               uuid.UUID         `json:"id"`
	OverallRiskLevel string            `json:"overall_risk_level"`
	Categories       []RiskCategoryDTO `json:"categories"`
	Recommendations  []string          `json:"recommendations"`
	AssessedAt       time.Time         `json:"assessed_at"`
}

// FromModel maps the domain aggregate to the response DTO.
func FromModel(a *model.PropertyAssessment) AssessmentResponse {
	result := a.Result()

	categories := make([]RiskCategoryDTO, 0, len(result.Categories))
	for _, c := range result.Categories {
		factors := make([]RiskFactorDTO, 0, len(c.Factors))
		for _, f := range c.Factors {
			factors = append(factors, RiskFactorDTO{
				Category:    f.Name,
				RiskLevel:   f.Level.String(),
				Description: f.Description,
			})
		}
		categories = append(categories, RiskCategoryDTO{
			CategoryName:      c.Name,
			CategoryRiskLevel: c.Level.String(),
			RiskFactors:       factors,
		})
	}

	return AssessmentResponse{
		ID:               a.ID(),
		OverallRiskLevel: result.OverallLevel.String(),
		Categories:       categories,
		Recommendations:  result.Recommendations,
		AssessedAt:       a.AssessedAt(),
	}
}
