package valueobject

import "fmt"

// SafetyFeature is an immutable value object for one entry in the
// fixed safety feature catalog.
type SafetyFeature struct {
	value string
}

var (
	FeatureSprinklerSystem   = SafetyFeature{value: "Sprinkler System"}
	FeatureFireAlarms        = SafetyFeature{value: "Fire Alarms"}
	FeatureSecurityCameras   = SafetyFeature{value: "Security Cameras"}
	FeatureGatedEntry        = SafetyFeature{value: "Gated Entry"}
	FeatureEmergencyLighting = SafetyFeature{value: "Emergency Lighting"}
	FeatureCODetectors       = SafetyFeature{value: "Carbon Monoxide Detectors"}
	FeatureSecuredAccess     = SafetyFeature{value: "Secured Access"}
)

// SafetyFeatureCatalog returns the full catalog in canonical order.
// Derived sets (missing features, factor ordering) follow this order
// so assessments stay byte-identical across calls.
func SafetyFeatureCatalog() []SafetyFeature {
	return []SafetyFeature{
		FeatureSprinklerSystem,
		FeatureFireAlarms,
		FeatureSecurityCameras,
		FeatureGatedEntry,
		FeatureEmergencyLighting,
		FeatureCODetectors,
		FeatureSecuredAccess,
	}
}

// SafetyFeatureFromString reconstructs a SafetyFeature from its string
// representation.
func SafetyFeatureFromString(s string) (SafetyFeature, error) {
	for _, f := range SafetyFeatureCatalog() {
		if f.value == s {
			return f, nil
		}
	}
	return SafetyFeature{}, fmt.Errorf("invalid safety feature: %s", s)
}

// String returns the string representation.
func (f SafetyFeature) String() string {
	return f.value
}

// MissingWeight returns the risk level contributed when this feature
// is absent. Fire suppression, alarms, and CO detection are life
// safety systems and weigh High; the remaining features weigh Medium.
func (f SafetyFeature) MissingWeight() RiskLevel {
	switch f {
	case FeatureSprinklerSystem, FeatureFireAlarms, FeatureCODetectors:
		return RiskLevelHigh
	default:
		return RiskLevelMedium
	}
}

// IsLifeSafety reports whether the feature protects life rather than
// property or security.
func (f SafetyFeature) IsLifeSafety() bool {
	return f.MissingWeight().Equal(RiskLevelHigh)
}

// IsZero returns true if the SafetyFeature has not been set.
func (f SafetyFeature) IsZero() bool {
	return f.value == ""
}

// Equal checks equality with another SafetyFeature.
func (f SafetyFeature) Equal(other SafetyFeature) bool {
	return f.value == other.value
}
