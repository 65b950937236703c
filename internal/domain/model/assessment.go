package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/event"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
	"github.com/Beckdotan/BuildingsRiskAssesment/pkg/events"
)

// PropertyAssessment is the aggregate root for a single assessment
// request. It is constructed fresh per request, carries no cross
// request state, and is discarded once the response is returned.
type PropertyAssessment struct {
	events.EventCollector

	id         uuid.UUID
	attributes PropertyAttributes
	result     AssessmentResult
	createdAt  time.Time
	assessedAt time.Time
}

// NewPropertyAssessment creates an assessment for already validated
// property attributes. The assessment starts without a result; call
// Apply once the engine has produced one.
func NewPropertyAssessment(attributes PropertyAttributes) *PropertyAssessment {
	return &PropertyAssessment{
		id:         uuid.New(),
		attributes: attributes,
		createdAt:  time.Now().UTC(),
	}
}

// Apply attaches the engine's result to the aggregate and records the
// corresponding domain events.
func (a *PropertyAssessment) Apply(result AssessmentResult) {
	a.result = result
	a.assessedAt = time.Now().UTC()

	a.Record(event.NewAssessmentCompleted(
		a.id,
		result.OverallLevel.String(),
		len(result.Categories),
		len(result.Recommendations),
		a.assessedAt,
	))

	if result.OverallLevel.AtLeast(valueobject.RiskLevelHigh) {
		a.Record(event.NewHighRiskDetected(
			a.id,
			highFactorNames(result),
			a.assessedAt,
		))
	}
}

// highFactorNames lists the names of the factors at the High level, in
// traversal order.
func highFactorNames(result AssessmentResult) []string {
	names := make([]string, 0)
	for _, c := range result.Categories {
		for _, f := range c.Factors {
			if f.Level.AtLeast(valueobject.RiskLevelHigh) {
				names = append(names, f.Name)
			}
		}
	}
	return names
}

// ID returns the assessment identifier.
func (a *PropertyAssessment) ID() uuid.UUID { return a.id }

// Attributes returns the assessed property attributes.
func (a *PropertyAssessment) Attributes() PropertyAttributes { return a.attributes }

// Result returns the attached assessment result.
func (a *PropertyAssessment) Result() AssessmentResult { return a.result }

// CreatedAt returns the aggregate creation time.
func (a *PropertyAssessment) CreatedAt() time.Time { return a.createdAt }

// AssessedAt returns the time the result was applied.
func (a *PropertyAssessment) AssessedAt() time.Time { return a.assessedAt }
