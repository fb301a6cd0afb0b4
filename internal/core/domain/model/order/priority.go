package order

import (
	"fmt"

	"expeditor/internal/pkg/errs"
)

// Priority classifies an order for queue discipline. Orders of the
// Prioritized class are listed before Normal orders; within the same class
// the original insertion order is preserved (FIFO per class, no second sort
// key).
type Priority int

const (
	// UnknownPriority represents an invalid or undefined priority.
	UnknownPriority Priority = iota

	// Normal is the default priority class.
	Normal

	// Prioritized orders jump ahead of every Normal order in display and
	// queue order, regardless of insertion time.
	Prioritized
)

// getPriorityStrings returns a map of Priority values to their wire names.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		UnknownPriority: "UNKNOWN",
		Normal:          "NORMAL",
		Prioritized:     "PRIORITY",
	}
}

// getValidPriorityStrings returns a map of only valid Priority values.
func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // UnknownPriority is intentionally excluded as it's invalid
	return map[Priority]string{
		Normal:      "NORMAL",
		Prioritized: "PRIORITY",
	}
}

// PriorityFromString parses a priority from its wire name
// ("NORMAL" or "PRIORITY").
func PriorityFromString(s string) (Priority, error) {
	for priority, name := range getValidPriorityStrings() {
		if name == s {
			return priority, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause(
		"priority is invalid",
		fmt.Errorf("%q is not a valid priority", s),
	)
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority is invalid",
			fmt.Errorf("%d is not a valid priority", p),
		)
	}
	return nil
}

// String returns the wire name of the priority ("NORMAL" or "PRIORITY").
// Implements fmt.Stringer and is safe to call on any Priority value.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// QueueRank returns the sort rank of the priority class for display ordering.
// Lower ranks list first: Prioritized is 0, Normal is 1.
func (p Priority) QueueRank() int {
	if p == Prioritized {
		return 0
	}
	return 1
}
