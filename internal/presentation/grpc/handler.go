package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/application/dto"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/application/usecase"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
)

// Compile-time assertion that RiskServiceHandler implements
// RiskServiceServer.
var _ RiskServiceServer = (*RiskServiceHandler)(nil)

// RiskServiceHandler implements the gRPC RiskServiceServer interface.
type RiskServiceHandler struct {
	UnimplementedRiskServiceServer
	assessProperty *usecase.AssessProperty
	logger         *slog.Logger
}

// NewRiskServiceHandler creates a new gRPC handler.
func NewRiskServiceHandler(assessProperty *usecase.AssessProperty, logger *slog.Logger) *RiskServiceHandler {
	return &RiskServiceHandler{
		assessProperty: assessProperty,
		logger:         logger,
	}
}

// Proto-aligned request/response message types.

// AssessPropertyRequest represents the proto AssessPropertyRequest
// message.
type AssessPropertyRequest struct {
	PropertyAge      int32    `json:"property_age"`
	NumberOfUnits    int32    `json:"number_of_units"`
	ConstructionType string   `json:"construction_type"`
	SafetyFeatures   []string `json:"safety_features"`
	Location         string   `json:"location"`
}

// RiskFactorMsg represents the proto RiskFactor message.
type RiskFactorMsg struct {
	Name        string `json:"name"`
	RiskLevel   string `json:"risk_level"`
	Description string `json:"description"`
}

// RiskCategoryMsg represents the proto RiskCategory message.
type RiskCategoryMsg struct {
	CategoryName      string           `json:"category_name"`
	CategoryRiskLevel string           `json:"category_risk_level"`
	RiskFactors       []*RiskFactorMsg `json:"risk_factors"`
}

// PropertyAssessmentMsg represents the proto PropertyAssessment
// message.
type PropertyAssessmentMsg struct {
	ID               string             `json:"id"`
	OverallRiskLevel string             `json:"overall_risk_level"`
	Categories       []*RiskCategoryMsg `json:"categories"`
	Recommendations  []string           `json:"recommendations"`
}

// AssessPropertyResponse represents the proto AssessPropertyResponse
// message.
type AssessPropertyResponse struct {
	Assessment *PropertyAssessmentMsg `json:"assessment"`
}

// AssessProperty handles a property assessment request.
func (h *RiskServiceHandler) AssessProperty(ctx context.Context, req *AssessPropertyRequest) (*AssessPropertyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	h.logger.Info("assessing property",
		slog.Int("property_age", int(req.PropertyAge)),
		slog.Int("number_of_units", int(req.NumberOfUnits)),
		slog.String("construction_type", req.ConstructionType),
	)

	result, err := h.assessProperty.Execute(ctx, dto.AssessPropertyRequest{
		PropertyAge:      int(req.PropertyAge),
		NumberOfUnits:    int(req.NumberOfUnits),
		ConstructionType: req.ConstructionType,
		SafetyFeatures:   req.SafetyFeatures,
		Location:         req.Location,
	})
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			return nil, status.Errorf(codes.InvalidArgument, "invalid %s: %s", vErr.Field, vErr.Message)
		}

		h.logger.Error("failed to assess property", slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	categories := make([]*RiskCategoryMsg, 0, len(result.Categories))
	for _, c := range result.Categories {
		factors := make([]*RiskFactorMsg, 0, len(c.RiskFactors))
		for _, f := range c.RiskFactors {
			factors = append(factors, &RiskFactorMsg{
				Name:        f.Category,
				RiskLevel:   f.RiskLevel,
				Description: f.Description,
			})
		}
		categories = append(categories, &RiskCategoryMsg{
			CategoryName:      c.CategoryName,
			CategoryRiskLevel: c.CategoryRiskLevel,
			RiskFactors:       factors,
		})
	}

	return &AssessPropertyResponse{
		Assessment: &PropertyAssessmentMsg{
			ID:               result.ID.String(),
			OverallRiskLevel: result.OverallRiskLevel,
			Categories:       categories,
			Recommendations:  result.Recommendations,
		},
	}, nil
}
