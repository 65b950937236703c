package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/application/dto"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/application/usecase"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
)

// AssessmentHandler serves the property assessment REST API.
type AssessmentHandler struct {
	assessProperty *usecase.AssessProperty
	validate       *validator.Validate
	assessments    metric.Int64Counter
	logger         *slog.Logger
}

// NewAssessmentHandler creates the REST handler and its metrics
// instruments.
func NewAssessmentHandler(assessProperty *usecase.AssessProperty, meter metric.Meter, logger *slog.Logger) (*AssessmentHandler, error) {
	assessments, err := meter.Int64Counter("assessments_total",
		metric.WithDescription("Completed property risk assessments by overall risk level."),
	)
	if err != nil {
		return nil, err
	}

	return &AssessmentHandler{
		assessProperty: assessProperty,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		assessments:    assessments,
		logger:         logger,
	}, nil
}

// ErrorResponse is the JSON error body. Field is set for validation
// failures so the form can highlight the offending input.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// RegisterRoutes registers the assessment endpoint on the provided
// ServeMux.
func (h *AssessmentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/assessments", h.Assess)
}

// Assess handles a property assessment request.
func (h *AssessmentHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var req dto.AssessPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	// Struct-tag validation catches shape errors before the domain
	// sees them; the domain still enforces its own invariants.
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "request validation failed",
			Field: firstInvalidField(err),
		})
		return
	}

	resp, err := h.assessProperty.Execute(r.Context(), req)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: vErr.Message, Field: vErr.Field})
			return
		}

		h.logger.Error("failed to assess property", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	h.assessments.Add(r.Context(), 1,
		metric.WithAttributes(attribute.String("overall_risk_level", resp.OverallRiskLevel)),
	)

	h.logger.Info("property assessed",
		slog.String("assessment_id", resp.ID.String()),
		slog.String("overall_risk_level", resp.OverallRiskLevel),
		slog.Int("recommendations", len(resp.Recommendations)),
	)

	writeJSON(w, http.StatusOK, resp)
}

// firstInvalidField maps the first validator failure back to its wire
// field name.
func firstInvalidField(err error) string {
	wireNames := map[string]string{
		"PropertyAge":      "propertyAge",
		"NumberOfUnits":    "numberOfUnits",
		"ConstructionType": "constructionType",
		"SafetyFeatures":   "safetyFeatures",
		"Location":         "location",
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		if wire, ok := wireNames[vErrs[0].Field()]; ok {
			return wire
		}
		return vErrs[0].Field()
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
