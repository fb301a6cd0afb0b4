package commands

import (
	"errors"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/guard"
)

var ErrMarkItemDeliveredCommandIsNotConstructed = errors.New(
	"MarkItemDeliveredCommand must be created via NewMarkItemDeliveredCommand constructor",
)

// MarkItemDeliveredCommand represents a request to mark one item as
// delivered, freezing its delivery clock.
type MarkItemDeliveredCommand struct { //nolint:recvcheck //using for validation
	department kernel.Department
	orderID    kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkItemDeliveredCommand creates a command to mark one item delivered.
func NewMarkItemDeliveredCommand(
	department kernel.Department,
	orderID kernel.UUID,
	itemID kernel.UUID,
) (MarkItemDeliveredCommand, error) {
	cmd := MarkItemDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepartment(department),
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return MarkItemDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemDeliveredCommandIsNotConstructed)
}

// Department returns the station owning the order.
func (c MarkItemDeliveredCommand) Department() kernel.Department {
	return c.department
}

// OrderID returns the identifier of the order.
func (c MarkItemDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the delivered item.
func (c MarkItemDeliveredCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *MarkItemDeliveredCommand) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	c.department = department
	return nil
}

func (c *MarkItemDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkItemDeliveredCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
