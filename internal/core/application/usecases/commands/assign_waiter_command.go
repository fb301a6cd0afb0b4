package commands

import (
	"errors"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/guard"
)

var (
	ErrAssignWaiterCommandIsNotConstructed = errors.New(
		"AssignWaiterCommand must be created via NewAssignWaiterCommand constructor",
	)
	ErrWaiterNameIsRequired = errors.New("waiterName is required")
)

// AssignWaiterCommand represents a request to set the order-level waiter of
// a department's ticket. By convention this happens after the ticket is
// completed; the convention is not enforced.
type AssignWaiterCommand struct { //nolint:recvcheck //using for validation
	department kernel.Department
	orderID    kernel.UUID
	waiterName string

	guard guard.ConstructorGuard
}

// NewAssignWaiterCommand creates a command to assign an order-level waiter.
func NewAssignWaiterCommand(
	department kernel.Department,
	orderID kernel.UUID,
	waiterName string,
) (AssignWaiterCommand, error) {
	cmd := AssignWaiterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepartment(department),
		cmd.setOrderID(orderID),
		cmd.setWaiterName(waiterName),
	); err != nil {
		return AssignWaiterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWaiterCommand) Validate() error {
	return c.guard.Validate(ErrAssignWaiterCommandIsNotConstructed)
}

// Department returns the station owning the order.
func (c AssignWaiterCommand) Department() kernel.Department {
	return c.department
}

// OrderID returns the identifier of the order.
func (c AssignWaiterCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WaiterName returns the waiter taking the ticket.
func (c AssignWaiterCommand) WaiterName() string {
	return c.waiterName
}

func (c *AssignWaiterCommand) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	c.department = department
	return nil
}

func (c *AssignWaiterCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignWaiterCommand) setWaiterName(waiterName string) error {
	if waiterName == "" {
		return ErrWaiterNameIsRequired
	}

	c.waiterName = waiterName
	return nil
}
