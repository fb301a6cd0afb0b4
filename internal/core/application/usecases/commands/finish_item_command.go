package commands

import (
	"errors"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/guard"
)

var ErrFinishItemCommandIsNotConstructed = errors.New(
	"FinishItemCommand must be created via NewFinishItemCommand constructor",
)

// FinishItemCommand represents a request to complete preparation of one item
// of a department's order.
type FinishItemCommand struct { //nolint:recvcheck //using for validation
	department kernel.Department
	orderID    kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishItemCommand creates a command to finish one item.
func NewFinishItemCommand(
	department kernel.Department,
	orderID kernel.UUID,
	itemID kernel.UUID,
) (FinishItemCommand, error) {
	cmd := FinishItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepartment(department),
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return FinishItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishItemCommand) Validate() error {
	return c.guard.Validate(ErrFinishItemCommandIsNotConstructed)
}

// Department returns the station owning the order.
func (c FinishItemCommand) Department() kernel.Department {
	return c.department
}

// OrderID returns the identifier of the order.
func (c FinishItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to finish.
func (c FinishItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *FinishItemCommand) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	c.department = department
	return nil
}

func (c *FinishItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FinishItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
