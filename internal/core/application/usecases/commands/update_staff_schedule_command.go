package commands

import (
	"errors"

	"expeditor/internal/core/domain/model/staff"
	"expeditor/internal/pkg/guard"
)

var ErrUpdateStaffScheduleCommandIsNotConstructed = errors.New(
	"UpdateStaffScheduleCommand must be created via NewUpdateStaffScheduleCommand constructor",
)

// UpdateStaffScheduleCommand represents a request to replace one worker's
// weekly schedule.
type UpdateStaffScheduleCommand struct { //nolint:recvcheck //using for validation
	workerName string
	schedule   staff.Schedule

	guard guard.ConstructorGuard
}

// NewUpdateStaffScheduleCommand creates a command to replace a worker's
// schedule. The schedule is validated here so a malformed request never
// reaches the roster.
func NewUpdateStaffScheduleCommand(workerName string, schedule staff.Schedule) (UpdateStaffScheduleCommand, error) {
	cmd := UpdateStaffScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerName(workerName),
		cmd.setSchedule(schedule),
	); err != nil {
		return UpdateStaffScheduleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStaffScheduleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStaffScheduleCommandIsNotConstructed)
}

// WorkerName returns the roster name of the worker.
func (c UpdateStaffScheduleCommand) WorkerName() string {
	return c.workerName
}

// Schedule returns the requested weekly schedule.
func (c UpdateStaffScheduleCommand) Schedule() staff.Schedule {
	return c.schedule
}

func (c *UpdateStaffScheduleCommand) setWorkerName(workerName string) error {
	if workerName == "" {
		return ErrWorkerNameIsRequired
	}

	c.workerName = workerName
	return nil
}

func (c *UpdateStaffScheduleCommand) setSchedule(schedule staff.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	c.schedule = schedule
	return nil
}
