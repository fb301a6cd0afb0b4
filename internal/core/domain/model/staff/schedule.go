package staff

import (
	"fmt"
	"regexp"

	"expeditor/internal/pkg/errs"
)

// DaysPerWeek is the fixed length of a weekly schedule, Monday first.
const DaysPerWeek = 7

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// DaySlot is one day of a worker's weekly schedule. When Active is false the
// time bounds are ignored; when true they must be "HH:MM" wall-clock values.
type DaySlot struct {
	Active    bool
	StartTime string
	EndTime   string
}

// Validate checks the slot. Inactive slots are always valid; active slots
// need well-formed "HH:MM" bounds.
func (s DaySlot) Validate() error {
	if !s.Active {
		return nil
	}
	if !clockPattern.MatchString(s.StartTime) {
		return errs.NewValueIsInvalidErrorWithCause(
			"schedule is invalid",
			fmt.Errorf("start time %q is not HH:MM", s.StartTime),
		)
	}
	if !clockPattern.MatchString(s.EndTime) {
		return errs.NewValueIsInvalidErrorWithCause(
			"schedule is invalid",
			fmt.Errorf("end time %q is not HH:MM", s.EndTime),
		)
	}
	return nil
}

// Schedule is a worker's weekly schedule: exactly seven day slots.
type Schedule [DaysPerWeek]DaySlot

// DefaultSchedule returns a schedule with every day inactive.
func DefaultSchedule() Schedule {
	return Schedule{}
}

// Validate checks every day slot of the schedule.
func (s Schedule) Validate() error {
	for day, slot := range s {
		if err := slot.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"schedule is invalid",
				fmt.Errorf("day %d: %w", day, err),
			)
		}
	}
	return nil
}
