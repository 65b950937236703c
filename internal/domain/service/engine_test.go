package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/model"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/service"
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
)

func allFeatures() []valueobject.SafetyFeature {
	return valueobject.SafetyFeatureCatalog()
}

func featuresExcept(excluded ...valueobject.SafetyFeature) []valueobject.SafetyFeature {
	out := make([]valueobject.SafetyFeature, 0)
	for _, f := range valueobject.SafetyFeatureCatalog() {
		skip := false
		for _, e := range excluded {
			if f.Equal(e) {
				skip = true
			}
		}
		if !skip {
			out = append(out, f)
		}
	}
	return out
}

func newAttrs(t *testing.T, age, units int, ct valueobject.ConstructionType, present []valueobject.SafetyFeature, location string) model.PropertyAttributes {
	t.Helper()
	attrs, err := model.NewPropertyAttributes(age, units, ct, present, location)
	require.NoError(t, err)
	return attrs
}

func categoryByName(t *testing.T, result model.AssessmentResult, name string) model.RiskCategory {
	t.Helper()
	for _, c := range result.Categories {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %q not found", name)
	return model.RiskCategory{}
}

func TestEngine_NewLowRiskProperty(t *testing.T) {
	engine := service.NewEngine()

	result := engine.Assess(newAttrs(t, 2, 4, valueobject.ConstructionConcrete, allFeatures(), ""))

	structural := categoryByName(t, result, service.CategoryStructural)
	assert.Equal(t, valueobject.RiskLevelNoRisk, structural.Level)
	assert.Len(t, structural.Factors, 1) // concrete adds no construction factor

	safety := categoryByName(t, result, service.CategorySafety)
	assert.Equal(t, valueobject.RiskLevelNoRisk, safety.Level)

	occupancy := categoryByName(t, result, service.CategoryOccupancy)
	assert.Equal(t, valueobject.RiskLevelLow, occupancy.Level)

	liability := categoryByName(t, result, service.CategoryLiability)
	assert.Equal(t, valueobject.RiskLevelNoRisk, liability.Level)
	assert.Empty(t, liability.Factors)

	assert.Equal(t, valueobject.RiskLevelLow, result.OverallLevel)
	assert.Empty(t, result.Recommendations)
}

func TestEngine_OldHighRiskProperty(t *testing.T) {
	engine := service.NewEngine()

	result := engine.Assess(newAttrs(t, 75, 80, valueobject.ConstructionWoodFrame, nil, ""))

	assert.Equal(t, valueobject.RiskLevelHigh, categoryByName(t, result, service.CategoryStructural).Level)
	assert.Equal(t, valueobject.RiskLevelHigh, categoryByName(t, result, service.CategoryOccupancy).Level)

	safety := categoryByName(t, result, service.CategorySafety)
	assert.Equal(t, valueobject.RiskLevelHigh, safety.Level)
	assert.Len(t, safety.Factors, len(valueobject.SafetyFeatureCatalog()))

	assert.Equal(t, valueobject.RiskLevelHigh, result.OverallLevel)
	assert.NotEmpty(t, result.Recommendations)

	// Every missing feature gets an install recommendation, and the
	// age/structure exposure is covered too.
	for _, f := range valueobject.SafetyFeatureCatalog() {
		assert.Contains(t, result.Recommendations, "Install "+f.String()+" to reduce risk.")
	}
	assert.Contains(t, result.Recommendations, "Schedule a structural inspection covering electrical, plumbing, and roofing systems.")
}

func TestEngine_MixedProfile(t *testing.T) {
	engine := service.NewEngine()

	result := engine.Assess(newAttrs(t, 35, 15, valueobject.ConstructionBrick,
		featuresExcept(valueobject.FeatureSprinklerSystem), ""))

	assert.Equal(t, valueobject.RiskLevelMedium, categoryByName(t, result, service.CategoryStructural).Level)
	assert.Equal(t, valueobject.RiskLevelMedium, categoryByName(t, result, service.CategoryOccupancy).Level)

	// The missing sprinkler system is a High factor and drives the
	// overall level.
	safety := categoryByName(t, result, service.CategorySafety)
	assert.Equal(t, valueobject.RiskLevelHigh, safety.Level)
	assert.Len(t, safety.Factors, 1)
	assert.Equal(t, valueobject.RiskLevelHigh, result.OverallLevel)

	installs := 0
	for _, rec := range result.Recommendations {
		if strings.HasPrefix(rec, "Install ") {
			installs++
			assert.Equal(t, "Install Sprinkler System to reduce risk.", rec)
		}
	}
	assert.Equal(t, 1, installs)
}

func TestEngine_Deterministic(t *testing.T) {
	engine := service.NewEngine()
	attrs := newAttrs(t, 42, 24, valueobject.ConstructionMixedMaterials,
		featuresExcept(valueobject.FeatureGatedEntry, valueobject.FeatureFireAlarms), "Portland, OR")

	first := engine.Assess(attrs)
	second := engine.Assess(attrs)

	assert.Equal(t, first, second)
}

func TestEngine_MonotonicInAge(t *testing.T) {
	engine := service.NewEngine()

	prev := -1
	for age := 0; age <= 100; age++ {
		result := engine.Assess(newAttrs(t, age, 12, valueobject.ConstructionWoodFrame, allFeatures(), ""))
		rank := categoryByName(t, result, service.CategoryStructural).Level.Rank()
		if rank < prev {
			t.Fatalf("structural level decreased at age %d: rank %d -> %d", age, prev, rank)
		}
		prev = rank
	}
}

func TestEngine_MonotonicInMissingFeatures(t *testing.T) {
	engine := service.NewEngine()

	// Remove features one at a time; the safety category level must
	// never decrease.
	present := allFeatures()
	prev := -1
	for len(present) >= 0 {
		result := engine.Assess(newAttrs(t, 20, 12, valueobject.ConstructionBrick, present, ""))
		rank := categoryByName(t, result, service.CategorySafety).Level.Rank()
		if rank < prev {
			t.Fatalf("safety level decreased with %d features present: rank %d -> %d", len(present), prev, rank)
		}
		prev = rank
		if len(present) == 0 {
			break
		}
		present = present[:len(present)-1]
	}
}

func TestEngine_WorstCaseDominance(t *testing.T) {
	engine := service.NewEngine()

	cases := []model.PropertyAttributes{
		newAttrs(t, 2, 4, valueobject.ConstructionConcrete, allFeatures(), ""),
		newAttrs(t, 35, 15, valueobject.ConstructionBrick, featuresExcept(valueobject.FeatureSprinklerSystem), ""),
		newAttrs(t, 75, 80, valueobject.ConstructionWoodFrame, nil, "Miami, FL"),
		newAttrs(t, 11, 51, valueobject.ConstructionSteelFrame, allFeatures(), ""),
	}

	for _, attrs := range cases {
		result := engine.Assess(attrs)

		max := valueobject.RiskLevelNoRisk
		for _, c := range result.Categories {
			max = max.Max(c.Level)

			// Category levels are themselves the max of their factors.
			factorMax := valueobject.RiskLevelNoRisk
			for _, f := range c.Factors {
				factorMax = factorMax.Max(f.Level)
			}
			assert.Equal(t, factorMax, c.Level)
		}
		assert.Equal(t, max, result.OverallLevel)
	}
}

func TestEngine_RecommendationCoverage(t *testing.T) {
	engine := service.NewEngine()

	cases := []model.PropertyAttributes{
		newAttrs(t, 2, 4, valueobject.ConstructionConcrete, allFeatures(), ""),
		newAttrs(t, 35, 15, valueobject.ConstructionBrick, featuresExcept(valueobject.FeatureSprinklerSystem), ""),
		newAttrs(t, 75, 80, valueobject.ConstructionWoodFrame, nil, ""),
		newAttrs(t, 64, 30, valueobject.ConstructionMixedMaterials, featuresExcept(valueobject.FeatureSecurityCameras), "Denver, CO"),
	}

	for _, attrs := range cases {
		result := engine.Assess(attrs)

		// Exactly one recommendation per factor at Medium or above,
		// and none from factors below Medium.
		actionable := 0
		for _, c := range result.Categories {
			for _, f := range c.Factors {
				if f.Level.AtLeast(valueobject.RiskLevelMedium) {
					actionable++
				}
			}
		}
		assert.Len(t, result.Recommendations, actionable)
	}
}

func TestEngine_LocationAdvisoryOnly(t *testing.T) {
	engine := service.NewEngine()

	without := engine.Assess(newAttrs(t, 2, 4, valueobject.ConstructionConcrete, allFeatures(), ""))
	for _, c := range without.Categories {
		assert.NotEqual(t, service.CategoryLocation, c.Name)
	}

	with := engine.Assess(newAttrs(t, 2, 4, valueobject.ConstructionConcrete, allFeatures(), "Miami, FL"))
	location := categoryByName(t, with, service.CategoryLocation)
	assert.Equal(t, valueobject.RiskLevelLow, location.Level)
	require.Len(t, location.Factors, 1)
	assert.Contains(t, location.Factors[0].Description, "Miami, FL")

	// An advisory location never changes the overall level or adds
	// recommendations.
	assert.Equal(t, without.OverallLevel, with.OverallLevel)
	assert.Equal(t, without.Recommendations, with.Recommendations)
}

func TestEngine_CategoryOrderIsStable(t *testing.T) {
	engine := service.NewEngine()

	result := engine.Assess(newAttrs(t, 35, 15, valueobject.ConstructionBrick, nil, "Austin, TX"))

	names := make([]string, 0, len(result.Categories))
	for _, c := range result.Categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		service.CategoryStructural,
		service.CategoryOccupancy,
		service.CategorySafety,
		service.CategoryLiability,
		service.CategoryLocation,
	}, names)
}
