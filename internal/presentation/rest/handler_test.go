package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/application/usecase"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/service"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/presentation/rest"
	"github.com/Beckdotan/BuildingsRiskAssesment/pkg/events"
)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...events.DomainEvent) error { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	uc := usecase.NewAssessProperty(service.NewEngine(), noopPublisher{})

	handler, err := rest.NewAssessmentHandler(uc, noop.NewMeterProvider().Meter("test"), logger)
	require.NoError(t, err)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	rest.NewHealthHandler(logger, false).RegisterRoutes(mux)

	server := httptest.NewServer(rest.CORSMiddleware(mux))
	t.Cleanup(server.Close)
	return server
}

func postAssessment(t *testing.T, server *httptest.Server, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/api/v1/assessments", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAssessEndpoint(t *testing.T) {
	server := newTestServer(t)

	t.Run("assesses a valid property", func(t *testing.T) {
		resp := postAssessment(t, server, map[string]any{
			"propertyAge":      35,
			"numberOfUnits":    15,
			"constructionType": "Brick",
			"safetyFeatures": []string{
				"Fire Alarms", "Security Cameras", "Gated Entry",
				"Emergency Lighting", "Carbon Monoxide Detectors", "Secured Access",
			},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var body struct {
			ID               string `json:"id"`
			OverallRiskLevel string `json:"overall_risk_level"`
			Categories       []struct {
				CategoryName      string `json:"category_name"`
				CategoryRiskLevel string `json:"category_risk_level"`
				RiskFactors       []struct {
					Category    string `json:"category"`
					RiskLevel   string `json:"risk_level"`
					Description string `json:"description"`
				} `json:"risk_factors"`
			} `json:"categories"`
			Recommendations []string `json:"recommendations"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		assert.NotEmpty(t, body.ID)
		assert.Equal(t, "High", body.OverallRiskLevel)
		require.NotEmpty(t, body.Categories)
		assert.Equal(t, "Structural & Age", body.Categories[0].CategoryName)
		assert.Contains(t, body.Recommendations, "Install Sprinkler System to reduce risk.")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/v1/assessments", "application/json",
			bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects a single family home with the wire field name", func(t *testing.T) {
		resp := postAssessment(t, server, map[string]any{
			"propertyAge":      10,
			"numberOfUnits":    1,
			"constructionType": "Brick",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body rest.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "numberOfUnits", body.Field)
	})

	t.Run("rejects negative age", func(t *testing.T) {
		resp := postAssessment(t, server, map[string]any{
			"propertyAge":      -1,
			"numberOfUnits":    8,
			"constructionType": "Brick",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body rest.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "propertyAge", body.Field)
	})

	t.Run("rejects an unknown construction type", func(t *testing.T) {
		resp := postAssessment(t, server, map[string]any{
			"propertyAge":      10,
			"numberOfUnits":    8,
			"constructionType": "Straw",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body rest.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "construction_type", body.Field)
	})

	t.Run("answers CORS preflight", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/v1/assessments", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	t.Run("healthz reports healthy", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body rest.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "property-risk-service", body.Service)
	})

	t.Run("readyz reports log-only events without a broker", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/readyz")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body rest.ReadinessResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ready", body.Status)
		assert.Equal(t, "log-only", body.Checks["events"])
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rest.RateLimitMiddleware(2)(next)

	// Burst equals the rate, so the third immediate request is denied.
	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		statuses = append(statuses, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}
