// Package timing holds the configured speed presets used to classify staff
// performance. Presets are static configuration, looked up by menu item name
// with a per-department fallback. They are deliberately independent of the
// accumulated cooking logs: classification compares against configured
// expectations, not against a moving population average.
package timing

import (
	"fmt"
	"time"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/errs"
)

// ItemTiming is the set of named duration boundaries configured for one menu
// item: a boundary per tier, interpreted as that tier's inclusive upper bound.
//
// Boundaries must be strictly increasing through the first four tiers
// (very-fast < fast < standard < slow). The extremely-slow value documents
// the expectation for the slowest tier but is never used as a boundary: that
// tier is the unconditional fallback.
type ItemTiming struct {
	veryFast      time.Duration
	fast          time.Duration
	standard      time.Duration
	slow          time.Duration
	extremelySlow time.Duration
}

// NewItemTiming creates a validated preset set.
//
// Parameters are the inclusive upper bounds of the tiers in classification
// order. All must be positive and the first four strictly increasing.
func NewItemTiming(veryFast, fast, standard, slow, extremelySlow time.Duration) (ItemTiming, error) {
	timing := ItemTiming{
		veryFast:      veryFast,
		fast:          fast,
		standard:      standard,
		slow:          slow,
		extremelySlow: extremelySlow,
	}

	for name, d := range map[string]time.Duration{
		"very-fast":      veryFast,
		"fast":           fast,
		"standard":       standard,
		"slow":           slow,
		"extremely-slow": extremelySlow,
	} {
		if d <= 0 {
			return ItemTiming{}, errs.NewValueIsInvalidErrorWithCause(
				"preset is invalid",
				fmt.Errorf("%s preset must be positive, got %s", name, d),
			)
		}
	}

	if !(veryFast < fast && fast < standard && standard < slow) {
		return ItemTiming{}, errs.NewValueIsInvalidErrorWithCause(
			"preset is invalid",
			fmt.Errorf("presets must increase: very-fast %s < fast %s < standard %s < slow %s",
				veryFast, fast, standard, slow),
		)
	}

	return timing, nil
}

// VeryFast returns the inclusive upper bound of the very-fast tier.
func (t ItemTiming) VeryFast() time.Duration { return t.veryFast }

// Fast returns the inclusive upper bound of the fast tier.
func (t ItemTiming) Fast() time.Duration { return t.fast }

// Standard returns the inclusive upper bound of the standard tier. It is also
// the basis of the relative-performance ratio.
func (t ItemTiming) Standard() time.Duration { return t.standard }

// Slow returns the inclusive upper bound of the slow tier.
func (t ItemTiming) Slow() time.Duration { return t.slow }

// ExtremelySlow returns the documented expectation for the slowest tier.
// It is not a boundary: extremely-slow is the unconditional fallback.
func (t ItemTiming) ExtremelySlow() time.Duration { return t.extremelySlow }

// StandardSeconds returns the standard boundary in whole seconds.
func (t ItemTiming) StandardSeconds() int64 {
	return int64(t.standard / time.Second)
}

// Boundary returns the inclusive upper bound configured for the given tier,
// or 0 for ExtremelySlow and invalid levels (no boundary, unconditional).
func (t ItemTiming) Boundary(level EfficiencyLevel) time.Duration {
	switch level {
	case VeryFast:
		return t.veryFast
	case Fast:
		return t.fast
	case Standard:
		return t.standard
	case Slow:
		return t.slow
	default:
		return 0
	}
}

// Catalog resolves the timing presets for a menu item. Lookup is by item
// name, optionally scoped per department; behind that sits a per-department
// default, and finally a global default, so resolution never fails.
type Catalog struct {
	// byDepartmentItem is keyed by department then item name
	byDepartmentItem map[kernel.Department]map[string]ItemTiming

	// byItem is keyed by item name only
	byItem map[string]ItemTiming

	// departmentDefaults is the fallback per department
	departmentDefaults map[kernel.Department]ItemTiming

	// fallback is used when a department has no default of its own
	fallback ItemTiming
}

// NewCatalog creates a catalog with the given global fallback presets.
func NewCatalog(fallback ItemTiming) *Catalog {
	return &Catalog{
		byDepartmentItem:   make(map[kernel.Department]map[string]ItemTiming),
		byItem:             make(map[string]ItemTiming),
		departmentDefaults: make(map[kernel.Department]ItemTiming),
		fallback:           fallback,
	}
}

// SetItemTiming registers presets for a menu item name across all departments.
func (c *Catalog) SetItemTiming(itemName string, timing ItemTiming) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	c.byItem[itemName] = timing
	return nil
}

// SetDepartmentItemTiming registers presets for a menu item name within one
// department, taking precedence over the name-only registration.
func (c *Catalog) SetDepartmentItemTiming(department kernel.Department, itemName string, timing ItemTiming) error {
	if err := department.Validate(); err != nil {
		return err
	}
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}

	if c.byDepartmentItem[department] == nil {
		c.byDepartmentItem[department] = make(map[string]ItemTiming)
	}
	c.byDepartmentItem[department][itemName] = timing
	return nil
}

// SetDepartmentDefault registers the fallback presets for one department.
func (c *Catalog) SetDepartmentDefault(department kernel.Department, timing ItemTiming) error {
	if err := department.Validate(); err != nil {
		return err
	}
	c.departmentDefaults[department] = timing
	return nil
}

// Resolve returns the presets for the given item. Resolution order:
// department-scoped item entry, item entry, department default, global
// fallback. Resolve never fails; an unconfigured item classifies against
// its department's defaults.
func (c *Catalog) Resolve(department kernel.Department, itemName string) ItemTiming {
	if perItem, ok := c.byDepartmentItem[department]; ok {
		if timing, ok := perItem[itemName]; ok {
			return timing
		}
	}
	if timing, ok := c.byItem[itemName]; ok {
		return timing
	}
	if timing, ok := c.departmentDefaults[department]; ok {
		return timing
	}
	return c.fallback
}

// ItemNames returns the names with an explicit (non-default) registration,
// in no particular order.
func (c *Catalog) ItemNames() []string {
	seen := make(map[string]struct{})
	for name := range c.byItem {
		seen[name] = struct{}{}
	}
	for _, perItem := range c.byDepartmentItem {
		for name := range perItem {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	return names
}
