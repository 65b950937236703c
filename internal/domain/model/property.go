package model

import (
	"github.com/Beckdotan/BuildingsRiskAssesment/internal/domain/valueobject"
)

// MinUnitCount is the smallest unit count that qualifies as a
// multi-family property.
const MinUnitCount = 2

// PropertyAttributes is the validated, immutable description of a
// multi-family property submitted for assessment. Construct it with
// NewPropertyAttributes; a zero value is not usable.
type PropertyAttributes struct {
	ageYears         int
	unitCount        int
	constructionType valueobject.ConstructionType
	presentFeatures  []valueobject.SafetyFeature
	location         string
}

// NewPropertyAttributes validates the raw attribute values and returns
// an immutable PropertyAttributes. Duplicate safety features are
// collapsed; the missing set is always derived from the catalog, never
// accepted from the caller.
func NewPropertyAttributes(
	ageYears int,
	unitCount int,
	constructionType valueobject.ConstructionType,
	presentFeatures []valueobject.SafetyFeature,
	location string,
) (PropertyAttributes, error) {
	if ageYears < 0 {
		return PropertyAttributes{}, NewValidationError("age_years", "must be >= 0, got %d", ageYears)
	}
	if unitCount < MinUnitCount {
		return PropertyAttributes{}, NewValidationError("unit_count", "must be >= %d, got %d", MinUnitCount, unitCount)
	}
	if constructionType.IsZero() {
		return PropertyAttributes{}, NewValidationError("construction_type", "is required")
	}

	present := make(map[valueobject.SafetyFeature]bool, len(presentFeatures))
	for _, f := range presentFeatures {
		if f.IsZero() {
			return PropertyAttributes{}, NewValidationError("safety_features", "contains an unrecognized feature")
		}
		present[f] = true
	}

	// Store in catalog order so derived output is deterministic
	// regardless of caller ordering.
	ordered := make([]valueobject.SafetyFeature, 0, len(present))
	for _, f := range valueobject.SafetyFeatureCatalog() {
		if present[f] {
			ordered = append(ordered, f)
		}
	}

	return PropertyAttributes{
		ageYears:         ageYears,
		unitCount:        unitCount,
		constructionType: constructionType,
		presentFeatures:  ordered,
		location:         location,
	}, nil
}

// AgeYears returns the property age in years.
func (p PropertyAttributes) AgeYears() int {
	return p.ageYears
}

// UnitCount returns the number of residential units.
func (p PropertyAttributes) UnitCount() int {
	return p.unitCount
}

// ConstructionType returns the primary construction material.
func (p PropertyAttributes) ConstructionType() valueobject.ConstructionType {
	return p.constructionType
}

// PresentFeatures returns the installed safety features in catalog order.
func (p PropertyAttributes) PresentFeatures() []valueobject.SafetyFeature {
	out := make([]valueobject.SafetyFeature, len(p.presentFeatures))
	copy(out, p.presentFeatures)
	return out
}

// MissingFeatures returns the catalog complement of the installed
// features, in catalog order.
func (p PropertyAttributes) MissingFeatures() []valueobject.SafetyFeature {
	present := make(map[valueobject.SafetyFeature]bool, len(p.presentFeatures))
	for _, f := range p.presentFeatures {
		present[f] = true
	}

	missing := make([]valueobject.SafetyFeature, 0)
	for _, f := range valueobject.SafetyFeatureCatalog() {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

// HasFeature reports whether the given safety feature is installed.
func (p PropertyAttributes) HasFeature(f valueobject.SafetyFeature) bool {
	for _, installed := range p.presentFeatures {
		if installed.Equal(f) {
			return true
		}
	}
	return false
}

// Location returns the advisory free-text location, or "" if none was
// supplied.
func (p PropertyAttributes) Location() string {
	return p.location
}
