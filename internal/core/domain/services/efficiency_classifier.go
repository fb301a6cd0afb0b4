package services

import (
	"time"

	"expeditor/internal/core/domain/model/timing"
)

// EfficiencyClassifier is a domain service that classifies a completed
// preparation duration against an item's configured timing presets.
//
// Classification compares against static configuration, never against a
// population average over accumulated logs: two identical durations always
// land in the same tier no matter how many logs exist.
//
// Tier rule: presets are evaluated in increasing-duration order (very-fast,
// fast, standard, slow); each configured value is the inclusive upper bound
// of its tier and the first matching bound wins. ExtremelySlow is the
// unconditional last bucket.
//
// The ratio is the duration relative to the standard preset (1.0 = exactly
// standard time, below 1.0 = faster than standard). It is computed against
// the standard bound only, independent of which tier matched.
//
// Example usage:
//
//	classifier := services.NewEfficiencyClassifier()
//	level, ratio := classifier.Classify(50, presets)
//	fmt.Printf("%s at %.0f%% of standard\n", level, ratio*100)
type EfficiencyClassifier struct{}

// NewEfficiencyClassifier creates a new EfficiencyClassifier instance.
func NewEfficiencyClassifier() EfficiencyClassifier {
	return EfficiencyClassifier{}
}

// Classify maps durationSeconds to an efficiency tier and a
// relative-performance ratio under the given presets.
//
// Classify is pure and deterministic: the same inputs always yield the same
// result. It never fails; the zero-division edge (zero duration or zero
// standard) defines the ratio as 0 and leaves the tier rule unaffected.
func (c EfficiencyClassifier) Classify(durationSeconds int64, presets timing.ItemTiming) (timing.EfficiencyLevel, float64) {
	duration := time.Duration(durationSeconds) * time.Second

	level := timing.ExtremelySlow
	for _, tier := range timing.AllLevels() {
		boundary := presets.Boundary(tier)
		if boundary == 0 {
			// ExtremelySlow carries no boundary and ends the scan.
			break
		}
		if duration <= boundary {
			level = tier
			break
		}
	}

	standardSeconds := presets.StandardSeconds()
	if durationSeconds == 0 || standardSeconds == 0 {
		return level, 0
	}

	return level, float64(durationSeconds) / float64(standardSeconds)
}
