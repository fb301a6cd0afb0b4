package commands

import (
	"errors"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/guard"
)

var ErrAssignWaiterToItemCommandIsNotConstructed = errors.New(
	"AssignWaiterToItemCommand must be created via NewAssignWaiterToItemCommand constructor",
)

// AssignWaiterToItemCommand represents a request to hand one finished item
// to a waiter, starting that item's delivery clock.
type AssignWaiterToItemCommand struct { //nolint:recvcheck //using for validation
	department kernel.Department
	orderID    kernel.UUID
	itemID     kernel.UUID
	waiterName string

	guard guard.ConstructorGuard
}

// NewAssignWaiterToItemCommand creates a command to hand one item to a waiter.
func NewAssignWaiterToItemCommand(
	department kernel.Department,
	orderID kernel.UUID,
	itemID kernel.UUID,
	waiterName string,
) (AssignWaiterToItemCommand, error) {
	cmd := AssignWaiterToItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepartment(department),
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setWaiterName(waiterName),
	); err != nil {
		return AssignWaiterToItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWaiterToItemCommand) Validate() error {
	return c.guard.Validate(ErrAssignWaiterToItemCommandIsNotConstructed)
}

// Department returns the station owning the order.
func (c AssignWaiterToItemCommand) Department() kernel.Department {
	return c.department
}

// OrderID returns the identifier of the order.
func (c AssignWaiterToItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to hand over.
func (c AssignWaiterToItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// WaiterName returns the waiter carrying the item.
func (c AssignWaiterToItemCommand) WaiterName() string {
	return c.waiterName
}

func (c *AssignWaiterToItemCommand) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	c.department = department
	return nil
}

func (c *AssignWaiterToItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignWaiterToItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AssignWaiterToItemCommand) setWaiterName(waiterName string) error {
	if waiterName == "" {
		return ErrWaiterNameIsRequired
	}

	c.waiterName = waiterName
	return nil
}
