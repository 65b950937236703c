package valueobject

import "fmt"

// ConstructionType is an immutable value object for the primary
// construction material of a building. The set is closed; unknown
// strings are rejected at the boundary so typos can never reach the
// scoring rules.
type ConstructionType struct {
	value string
}

var (
	ConstructionWoodFrame      = ConstructionType{value: "Wood Frame"}
	ConstructionBrick          = ConstructionType{value: "Brick"}
	ConstructionConcrete       = ConstructionType{value: "Concrete"}
	ConstructionSteelFrame     = ConstructionType{value: "Steel Frame"}
	ConstructionMixedMaterials = ConstructionType{value: "Mixed Materials"}
)

// ConstructionTypes returns all recognized construction types.
func ConstructionTypes() []ConstructionType {
	return []ConstructionType{
		ConstructionWoodFrame,
		ConstructionBrick,
		ConstructionConcrete,
		ConstructionSteelFrame,
		ConstructionMixedMaterials,
	}
}

// ConstructionTypeFromString reconstructs a ConstructionType from its
// string representation.
func ConstructionTypeFromString(s string) (ConstructionType, error) {
	for _, ct := range ConstructionTypes() {
		if ct.value == s {
			return ct, nil
		}
	}
	return ConstructionType{}, fmt.Errorf("invalid construction type: %s", s)
}

// String returns the string representation.
func (c ConstructionType) String() string {
	return c.value
}

// RiskPoints returns the point surcharge this material adds on top of
// the age points. Wood Frame carries the full fire/structural
// surcharge (one level), Brick and Mixed Materials a partial one, and
// Concrete/Steel Frame none.
func (c ConstructionType) RiskPoints() int {
	switch c {
	case ConstructionWoodFrame:
		return 25
	case ConstructionBrick, ConstructionMixedMaterials:
		return 10
	default:
		return 0
	}
}

// IsZero returns true if the ConstructionType has not been set.
func (c ConstructionType) IsZero() bool {
	return c.value == ""
}

// Equal checks equality with another ConstructionType.
func (c ConstructionType) Equal(other ConstructionType) bool {
	return c.value == other.value
}
