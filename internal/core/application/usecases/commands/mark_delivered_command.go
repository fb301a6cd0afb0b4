package commands

import (
	"errors"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a request to mark a whole ticket as
// delivered to the customer.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	department kernel.Department
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark one ticket delivered.
func NewMarkDeliveredCommand(department kernel.Department, orderID kernel.UUID) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepartment(department),
		cmd.setOrderID(orderID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// Department returns the station owning the order.
func (c MarkDeliveredCommand) Department() kernel.Department {
	return c.department
}

// OrderID returns the identifier of the delivered order.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkDeliveredCommand) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	c.department = department
	return nil
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
