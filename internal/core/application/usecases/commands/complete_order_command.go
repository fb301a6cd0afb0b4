package commands

import (
	"errors"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a request to close a department's ticket,
// freezing its order-level clock.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	department kernel.Department
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to close one ticket.
func NewCompleteOrderCommand(department kernel.Department, orderID kernel.UUID) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepartment(department),
		cmd.setOrderID(orderID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// Department returns the station owning the order.
func (c CompleteOrderCommand) Department() kernel.Department {
	return c.department
}

// OrderID returns the identifier of the order to close.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteOrderCommand) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	c.department = department
	return nil
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
