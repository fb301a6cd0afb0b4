package commands

import (
	"context"
	"log/slog"

	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
)

// AssignWaiterCommandHandler handles the business logic for order-level
// waiter assignment.
type AssignWaiterCommandHandler struct {
	orderRepo ports.OrderRepository
	collector LogCollector
	logger    *slog.Logger
}

// NewAssignWaiterCommandHandler creates a handler for order-level waiter
// assignment.
func NewAssignWaiterCommandHandler(
	orderRepo ports.OrderRepository,
	collector LogCollector,
	logger *slog.Logger,
) AssignWaiterCommandHandler {
	return AssignWaiterCommandHandler{
		orderRepo: orderRepo,
		collector: collector,
		logger:    logger.With("component", "AssignWaiterCommandHandler"),
	}
}

// Handle processes the waiter assignment command.
func (h AssignWaiterCommandHandler) Handle(ctx context.Context, cmd AssignWaiterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.orderRepo.Mutate(ctx, cmd.Department(), cmd.OrderID(), func(o *order.Order) error {
		return o.AssignWaiter(cmd.WaiterName())
	})
	if err := suppressStale(h.logger, "assignWaiter", err); err != nil {
		return err
	}

	collectAfterMutation(ctx, h.logger, h.orderRepo, h.collector)
	return nil
}
