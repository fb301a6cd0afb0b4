package kernel

import (
	"fmt"

	"expeditor/internal/pkg/errs"
)

// Department identifies the preparation station that owns an order queue.
// Each department runs its own independent queue of orders and is the only
// station allowed to move its items through the cooking lifecycle.
//
// Department is a value object that validates its members and provides
// string representations for persistence, transport, and display.
type Department int

const (
	// UnknownDepartment represents an invalid or undefined department.
	// This value (0) helps catch uninitialized Department values.
	UnknownDepartment Department = iota

	// Kitchen is the hot-food preparation station.
	Kitchen

	// Bar is the drinks preparation station.
	Bar

	// Snack is the cold/snack preparation station.
	Snack
)

// getDepartmentStrings returns a map of Department values to their wire names.
// All departments are included for string conversion.
func getDepartmentStrings() map[Department]string {
	return map[Department]string{
		UnknownDepartment: "unknown",
		Kitchen:           "kitchen",
		Bar:               "bar",
		Snack:             "snack",
	}
}

// getValidDepartmentStrings returns a map of only valid Department values.
// Only valid departments are included to support validation and parsing.
func getValidDepartmentStrings() map[Department]string {
	//nolint:exhaustive // UnknownDepartment is intentionally excluded as it's invalid
	return map[Department]string{
		Kitchen: "kitchen",
		Bar:     "bar",
		Snack:   "snack",
	}
}

// getDepartmentTitles maps each department to the display title of its staff.
// This lookup table replaces a per-role type hierarchy: the only difference
// between station roles is the department tag and this title.
func getDepartmentTitles() map[Department]string {
	return map[Department]string{
		Kitchen: "Chef",
		Bar:     "Bartender",
		Snack:   "Snack Chef",
	}
}

// AllDepartments returns every valid department in a fixed order.
// The order is stable and suitable for iteration in scans and displays.
func AllDepartments() []Department {
	return []Department{Kitchen, Bar, Snack}
}

// DepartmentFromString parses a department from its wire name
// ("kitchen", "bar", or "snack").
//
// Returns an error if the string does not name a valid department. This is
// used when reconstructing departments from persistence or HTTP parameters.
func DepartmentFromString(s string) (Department, error) {
	for department, name := range getValidDepartmentStrings() {
		if name == s {
			return department, nil
		}
	}
	return UnknownDepartment, errs.NewValueIsInvalidErrorWithCause(
		"department is invalid",
		fmt.Errorf("%q is not a valid department", s),
	)
}

// Validate checks if the Department value is valid.
//
// Valid departments are: Kitchen, Bar, Snack.
// UnknownDepartment (0) and any other values are invalid.
func (d Department) Validate() error {
	if _, ok := getValidDepartmentStrings()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"department is invalid",
			fmt.Errorf("%d is not a valid department", d),
		)
	}
	return nil
}

// String returns the wire name of the department.
//
// Returns "kitchen", "bar", or "snack" for valid departments and "unknown"
// for invalid values. Implements fmt.Stringer and is safe to call on any
// Department value.
func (d Department) String() string {
	if str, ok := getDepartmentStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// DisplayTitle returns the human-readable title of the staff working this
// department ("Chef", "Bartender", "Snack Chef"). Returns an empty string
// for invalid departments.
func (d Department) DisplayTitle() string {
	return getDepartmentTitles()[d]
}
