package commands

import (
	"errors"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// NewOrderItem is one requested line of a new ticket.
type NewOrderItem struct {
	Name     string
	Quantity int
	Notes    string
}

// CreateOrderCommand represents a request to register a new ticket with a
// preparation station.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.Kitchen, "A-17", order.Prioritized,
//	    []NewOrderItem{{Name: "Margherita", Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	department kernel.Department
	displayID  string
	priority   order.Priority
	items      []NewOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new ticket.
// Validates that the department and priority are valid, the display id is not
// empty, and at least one item with a name and positive quantity is present.
func NewCreateOrderCommand(
	department kernel.Department,
	displayID string,
	priority order.Priority,
	items []NewOrderItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDepartment(department),
		cmd.setDisplayID(displayID),
		cmd.setPriority(priority),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Department returns the station that will own the ticket.
func (c CreateOrderCommand) Department() kernel.Department {
	return c.department
}

// DisplayID returns the short human-facing ticket number.
func (c CreateOrderCommand) DisplayID() string {
	return c.displayID
}

// Priority returns the queue class of the ticket.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// Items returns the requested lines of the ticket.
func (c CreateOrderCommand) Items() []NewOrderItem {
	return c.items
}

func (c *CreateOrderCommand) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	c.department = department
	return nil
}

func (c *CreateOrderCommand) setDisplayID(displayID string) error {
	if displayID == "" {
		return errors.New("displayID is required")
	}

	c.displayID = displayID
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setItems(items []NewOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}
