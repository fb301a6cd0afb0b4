package commands

import (
	"context"
	"log/slog"
	"time"

	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
)

// AssignWaiterToItemCommandHandler handles the business logic for item-level
// waiter handover. The collector pass that follows attaches the waiter to the
// item's cooking log.
type AssignWaiterToItemCommandHandler struct {
	orderRepo ports.OrderRepository
	collector LogCollector
	logger    *slog.Logger
	now       func() time.Time
}

// NewAssignWaiterToItemCommandHandler creates a handler for item-level waiter
// handover.
func NewAssignWaiterToItemCommandHandler(
	orderRepo ports.OrderRepository,
	collector LogCollector,
	logger *slog.Logger,
	now func() time.Time,
) AssignWaiterToItemCommandHandler {
	return AssignWaiterToItemCommandHandler{
		orderRepo: orderRepo,
		collector: collector,
		logger:    logger.With("component", "AssignWaiterToItemCommandHandler"),
		now:       now,
	}
}

// Handle processes the item handover command.
func (h AssignWaiterToItemCommandHandler) Handle(ctx context.Context, cmd AssignWaiterToItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.now()
	err := h.orderRepo.Mutate(ctx, cmd.Department(), cmd.OrderID(), func(o *order.Order) error {
		return o.AssignWaiterToItem(cmd.ItemID(), cmd.WaiterName(), now)
	})
	if err := suppressStale(h.logger, "assignWaiterToItem", err); err != nil {
		return err
	}

	collectAfterMutation(ctx, h.logger, h.orderRepo, h.collector)
	return nil
}
