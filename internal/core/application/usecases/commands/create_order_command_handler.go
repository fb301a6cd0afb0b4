package commands

import (
	"context"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for ticket intake.
// Builds the order aggregate with fresh item identities and registers it
// under its owning department.
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler for ticket intake.
func NewCreateOrderCommandHandler(orderRepo ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orderRepo: orderRepo}
}

// Handle processes the ticket intake command.
// Every requested line becomes a not-started menu item with a generated id;
// the order starts uncompleted with no waiter.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]*order.MenuItem, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		item, err := order.NewMenuItem(kernel.NewUUID(), line.Name, line.Quantity, line.Notes)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.DisplayID(), cmd.Department(), cmd.Priority(), items)
	if err != nil {
		return err
	}

	return h.orderRepo.Add(ctx, o)
}
