package commands

import (
	"errors"

	"expeditor/internal/pkg/guard"
)

var (
	ErrSetStaffAvailabilityCommandIsNotConstructed = errors.New(
		"SetStaffAvailabilityCommand must be created via NewSetStaffAvailabilityCommand constructor",
	)
	ErrWorkerNameIsRequired = errors.New("workerName is required")
)

// SetStaffAvailabilityCommand represents a request to flip one worker's
// availability flag.
type SetStaffAvailabilityCommand struct { //nolint:recvcheck //using for validation
	workerName string
	available  bool

	guard guard.ConstructorGuard
}

// NewSetStaffAvailabilityCommand creates a command to set a worker's
// availability.
func NewSetStaffAvailabilityCommand(workerName string, available bool) (SetStaffAvailabilityCommand, error) {
	cmd := SetStaffAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setWorkerName(workerName); err != nil {
		return SetStaffAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStaffAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetStaffAvailabilityCommandIsNotConstructed)
}

// WorkerName returns the roster name of the worker.
func (c SetStaffAvailabilityCommand) WorkerName() string {
	return c.workerName
}

// Available returns the requested availability flag.
func (c SetStaffAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetStaffAvailabilityCommand) setWorkerName(workerName string) error {
	if workerName == "" {
		return ErrWorkerNameIsRequired
	}

	c.workerName = workerName
	return nil
}
