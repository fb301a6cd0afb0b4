package order

import (
	"fmt"

	"expeditor/internal/pkg/errs"
)

// ItemStatus represents the cooking lifecycle state of a menu item.
// It implements a forward-only state machine: once a transition happens the
// item can never move back, and Finished is terminal.
//
// State transitions:
//
//	NotStarted ──> OnTheirWay ──> Finished
//
// ItemStatus is a value object that validates state transitions and provides
// string representations for persistence and display.
type ItemStatus int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized ItemStatus values.
	UnknownStatus ItemStatus = iota

	// NotStarted is the initial status of every menu item. No staff is
	// assigned and no timers are running.
	NotStarted

	// OnTheirWay indicates the item is being prepared by an assigned staff
	// member. The elapsed cooking timer runs while in this status.
	OnTheirWay

	// Finished indicates preparation is done. This is a terminal state:
	// the cooking timer is frozen and the status never changes again.
	Finished
)

// getItemStatusStrings returns a map of ItemStatus values to their wire names.
// All statuses are included for string conversion.
func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		UnknownStatus: "unknown",
		NotStarted:    "not-started",
		OnTheirWay:    "on-their-way",
		Finished:      "finished",
	}
}

// getValidItemStatusStrings returns a map of only valid ItemStatus values.
// Only valid statuses are included to support validation.
func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		NotStarted: "not-started",
		OnTheirWay: "on-their-way",
		Finished:   "finished",
	}
}

// ItemStatusFromString parses an item status from its wire name.
// Returns an error if the string does not name a valid status.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, name := range getValidItemStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid item status", s),
	)
}

// Validate checks if the ItemStatus value is valid.
//
// Valid statuses are: NotStarted, OnTheirWay, Finished.
// UnknownStatus (0) and any other values are invalid.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid item status", s),
		)
	}
	return nil
}

// String returns the wire name of the status
// ("not-started", "on-their-way", "finished").
// Implements fmt.Stringer and is safe to call on any ItemStatus value.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Start transitions the status to OnTheirWay.
//
// Valid transitions:
//   - NotStarted -> OnTheirWay
//
// Any other current status returns an error: items that are already being
// prepared or are finished can never be started again.
func (s ItemStatus) Start() (ItemStatus, error) {
	if s != NotStarted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return OnTheirWay, nil
}

// Finish transitions the status to Finished.
//
// Valid transitions:
//   - OnTheirWay -> Finished
//
// Finished is a terminal state; finishing an item that was never started or
// is already finished returns an error.
func (s ItemStatus) Finish() (ItemStatus, error) {
	if s != OnTheirWay {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to finish", s.String()),
		)
	}

	return Finished, nil
}
