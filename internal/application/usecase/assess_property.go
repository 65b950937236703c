package usecase

import (
	"context"
	"fmt"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/application/dto"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/port"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/service"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
)

// AssessProperty is the use case for assessing a multi-family
// property. It owns the translation from wire values into domain
// value objects; the engine only ever sees validated attributes.
type AssessProperty struct {
	engine    *service.Engine
	publisher port.EventPublisher
}

// NewAssessProperty creates a new AssessProperty use case.
func NewAssessProperty(engine *service.Engine, publisher port.EventPublisher) *AssessProperty {
	return &AssessProperty{
		engine:    engine,
		publisher: publisher,
	}
}

// Execute validates the request, runs the risk engine, publishes the
// resulting domain events, and returns the assessment response. The
// only error paths are a *model.ValidationError for bad input and a
// publishing failure.
func (uc *AssessProperty) Execute(ctx context.Context, req dto.AssessPropertyRequest) (dto.AssessmentResponse, error) {
	attrs, err := uc.parseAttributes(req)
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	assessment := model.NewPropertyAssessment(attrs)
	assessment.Apply(uc.engine.Assess(attrs))

	if evts := assessment.ClearEvents(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			return dto.AssessmentResponse{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	return dto.FromModel(assessment), nil
}

// parseAttributes maps wire strings onto closed domain enumerations
// and runs the attribute invariants. All validation happens here,
// before any factor evaluation.
func (uc *AssessProperty) parseAttributes(req dto.AssessPropertyRequest) (model.PropertyAttributes, error) {
	constructionType, err := valueobject.ConstructionTypeFromString(req.ConstructionType)
	if err != nil {
		return model.PropertyAttributes{}, model.NewValidationError("construction_type", "unrecognized value %q", req.ConstructionType)
	}

	features := make([]valueobject.SafetyFeature, 0, len(req.SafetyFeatures))
	for _, raw := range req.SafetyFeatures {
		feature, err := valueobject.SafetyFeatureFromString(raw)
		if err != nil {
			return model.PropertyAttributes{}, model.NewValidationError("safety_features", "unrecognized feature %q", raw)
		}
		features = append(features, feature)
	}

	return model.NewPropertyAttributes(
		req.PropertyAge,
		req.NumberOfUnits,
		constructionType,
		features,
		req.Location,
	)
}
