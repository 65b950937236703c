package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Beckdotan/BuildingsRiskAssesment/pkg/events"
)

const AggregateTypeAssessment = "PropertyAssessment"

const (
	// EventTypeAssessmentCompleted is emitted for every completed
	// property risk assessment.
	EventTypeAssessmentCompleted = "property.assessment.completed"

	// EventTypeHighRiskDetected is emitted when the overall risk level
	// of an assessment is High.
	EventTypeHighRiskDetected = "property.high_risk.detected"
)

// AssessmentCompleted is published when a property risk assessment has
// been produced.
type AssessmentCompleted struct {
	events.BaseEvent
	AssessmentID        uuid.UUID `json:"assessment_id"`
	OverallRiskLevel    string    `json:"overall_risk_level"`
	CategoryCount       int       `json:"category_count"`
	RecommendationCount int       `json:"recommendation_count"`
	AssessedAt          time.Time `json:"assessed_at"`
}

// NewAssessmentCompleted creates an AssessmentCompleted domain event.
func NewAssessmentCompleted(assessmentID uuid.UUID, overallRiskLevel string, categoryCount, recommendationCount int, assessedAt time.Time) AssessmentCompleted {
	payload, _ := json.Marshal(struct {
		AssessmentID        uuid.UUID `json:"assessment_id"`
		OverallRiskLevel    string    `json:"overall_risk_level"`
		CategoryCount       int       `json:"category_count"`
		RecommendationCount int       `json:"recommendation_count"`
		AssessedAt          time.Time `json:"assessed_at"`
	}{assessmentID, overallRiskLevel, categoryCount, recommendationCount, assessedAt})

	return AssessmentCompleted{
		BaseEvent:           events.NewBaseEvent(EventTypeAssessmentCompleted, assessmentID, AggregateTypeAssessment, payload),
		AssessmentID:        assessmentID,
		OverallRiskLevel:    overallRiskLevel,
		CategoryCount:       categoryCount,
		RecommendationCount: recommendationCount,
		AssessedAt:          assessedAt,
	}
}

// HighRiskDetected is published when an assessment lands at the High
// overall level, so downstream underwriting systems can flag the
// property for manual review.
type HighRiskDetected struct {
	events.BaseEvent
	AssessmentID uuid.UUID `json:"assessment_id"`
	HighFactors  []string  `json:"high_factors"`
	DetectedAt   time.Time `json:"detected_at"`
}

// NewHighRiskDetected creates a HighRiskDetected domain event.
func NewHighRiskDetected(assessmentID uuid.UUID, highFactors []string, detectedAt time.Time) HighRiskDetected {
	payload, _ := json.Marshal(struct {
		AssessmentID uuid.UUID `json:"assessment_id"`
		HighFactors  []string  `json:"high_factors"`
		DetectedAt   time.Time `json:"detected_at"`
	}{assessmentID, highFactors, detectedAt})

	return HighRiskDetected{
		BaseEvent:    events.NewBaseEvent(EventTypeHighRiskDetected, assessmentID, AggregateTypeAssessment, payload),
		AssessmentID: assessmentID,
		HighFactors:  highFactors,
		DetectedAt:   detectedAt,
	}
}
