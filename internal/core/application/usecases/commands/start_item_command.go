package commands

import (
	"errors"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/guard"
)

var (
	ErrStartItemCommandIsNotConstructed = errors.New(
		"StartItemCommand must be created via NewStartItemCommand constructor",
	)
	ErrStaffNameIsRequired = errors.New("staffName is required")
)

// StartItemCommand represents a request to begin preparing one item of a
// department's order.
//
// Example:
//
//	cmd, err := NewStartItemCommand(kernel.Kitchen, orderID, itemID, "Alice")
//	if err != nil {
//	    return fmt.Errorf("invalid start request: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start item: %w", err)
//	}
type StartItemCommand struct { //nolint:recvcheck //using for validation
	department kernel.Department
	orderID    kernel.UUID
	itemID     kernel.UUID
	staffName  string

	guard guard.ConstructorGuard
}

// NewStartItemCommand creates a command to start one item.
// Validates the department, both identifiers, and the staff name.
func NewStartItemCommand(
	department kernel.Department,
	orderID kernel.UUID,
	itemID kernel.UUID,
	staffName string,
) (StartItemCommand, error) {
	cmd := StartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepartment(department),
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setStaffName(staffName),
	); err != nil {
		return StartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartItemCommandIsNotConstructed if validation fails.
func (c StartItemCommand) Validate() error {
	return c.guard.Validate(ErrStartItemCommandIsNotConstructed)
}

// Department returns the station owning the order.
func (c StartItemCommand) Department() kernel.Department {
	return c.department
}

// OrderID returns the identifier of the order.
func (c StartItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to start.
func (c StartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// StaffName returns the cook taking the item.
func (c StartItemCommand) StaffName() string {
	return c.staffName
}

func (c *StartItemCommand) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	c.department = department
	return nil
}

func (c *StartItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *StartItemCommand) setStaffName(staffName string) error {
	if staffName == "" {
		return ErrStaffNameIsRequired
	}

	c.staffName = staffName
	return nil
}
