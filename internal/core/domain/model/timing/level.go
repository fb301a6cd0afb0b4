package timing

import (
	"fmt"

	"expeditor/internal/pkg/errs"
)

// EfficiencyLevel is one of five ordered classification tiers assigned to a
// completed preparation duration, from fastest to slowest. The order of the
// tiers is part of the classification contract: boundaries are evaluated
// fastest-first and ExtremelySlow is the unconditional last bucket.
type EfficiencyLevel int

const (
	// UnknownLevel represents an invalid or undefined level.
	UnknownLevel EfficiencyLevel = iota

	// VeryFast is the fastest tier.
	VeryFast

	// Fast is the second tier.
	Fast

	// Standard is the middle tier, anchored at the configured standard time.
	Standard

	// Slow is the fourth tier.
	Slow

	// ExtremelySlow is the slowest tier and the unconditional fallback when
	// no faster boundary matched.
	ExtremelySlow
)

// getLevelStrings returns a map of EfficiencyLevel values to their wire names.
func getLevelStrings() map[EfficiencyLevel]string {
	return map[EfficiencyLevel]string{
		UnknownLevel:  "unknown",
		VeryFast:      "very-fast",
		Fast:          "fast",
		Standard:      "standard",
		Slow:          "slow",
		ExtremelySlow: "extremely-slow",
	}
}

// getValidLevelStrings returns a map of only valid EfficiencyLevel values.
func getValidLevelStrings() map[EfficiencyLevel]string {
	//nolint:exhaustive // UnknownLevel is intentionally excluded as it's invalid
	return map[EfficiencyLevel]string{
		VeryFast:      "very-fast",
		Fast:          "fast",
		Standard:      "standard",
		Slow:          "slow",
		ExtremelySlow: "extremely-slow",
	}
}

// AllLevels returns the five valid levels in classification order, fastest
// first. This fixed ordered list is part of the external query contract.
func AllLevels() []EfficiencyLevel {
	return []EfficiencyLevel{VeryFast, Fast, Standard, Slow, ExtremelySlow}
}

// LevelFromString parses an efficiency level from its wire name.
func LevelFromString(s string) (EfficiencyLevel, error) {
	for level, name := range getValidLevelStrings() {
		if name == s {
			return level, nil
		}
	}
	return UnknownLevel, errs.NewValueIsInvalidErrorWithCause(
		"efficiency level is invalid",
		fmt.Errorf("%q is not a valid efficiency level", s),
	)
}

// Validate checks if the EfficiencyLevel value is valid.
func (l EfficiencyLevel) Validate() error {
	if _, ok := getValidLevelStrings()[l]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"efficiency level is invalid",
			fmt.Errorf("%d is not a valid efficiency level", l),
		)
	}
	return nil
}

// String returns the wire name of the level ("very-fast" .. "extremely-slow").
// Implements fmt.Stringer and is safe to call on any EfficiencyLevel value.
func (l EfficiencyLevel) String() string {
	if str, ok := getLevelStrings()[l]; ok {
		return str
	}
	return "unknown"
}

// Rank returns the position of the level in classification order, 0 for
// VeryFast through 4 for ExtremelySlow. Used as the tier sort key in
// analytics ordering.
func (l EfficiencyLevel) Rank() int {
	return int(l) - int(VeryFast)
}
