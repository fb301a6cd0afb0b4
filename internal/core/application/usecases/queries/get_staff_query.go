package queries

import (
	"errors"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/guard"
)

var ErrGetStaffQueryIsNotConstructed = errors.New(
	"GetStaffQuery must be created via NewGetStaffQuery constructor",
)

// GetStaffQuery lists the roster with availability and weekly schedules.
type GetStaffQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStaffQuery creates a roster listing query.
func NewGetStaffQuery() GetStaffQuery {
	return GetStaffQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffQueryIsNotConstructed)
}

// StaffResponse is one roster member with the current availability and
// weekly schedule.
type StaffResponse struct {
	Name       string
	Department kernel.Department
	Waiter     bool
	Available  bool
	Schedule   []DaySlotResponse
}

// DaySlotResponse is one day of a worker's weekly schedule, Monday first.
type DaySlotResponse struct {
	Active    bool
	StartTime string
	EndTime   string
}
