package commands

import (
	"errors"

	"expeditor/internal/pkg/guard"
)

var ErrRefreshTimersCommandIsNotConstructed = errors.New(
	"RefreshTimersCommand must be created via NewRefreshTimersCommand constructor",
)

// RefreshTimersCommand represents one tick of the derived-timer refresh.
// This is a parameterless command issued by the tick job every second.
type RefreshTimersCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshTimersCommand creates a timer refresh command.
func NewRefreshTimersCommand() RefreshTimersCommand {
	return RefreshTimersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshTimersCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTimersCommandIsNotConstructed)
}
