package commands

import (
	"context"
	"log/slog"
	"time"

	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
)

// StartItemCommandHandler handles the business logic for starting an item.
// A stale click on a missing or already-started item is swallowed as a
// no-op; the checker screen may lag behind the kitchen.
type StartItemCommandHandler struct {
	orderRepo ports.OrderRepository
	collector LogCollector
	logger    *slog.Logger
	now       func() time.Time
}

// NewStartItemCommandHandler creates a handler for item start operations.
func NewStartItemCommandHandler(
	orderRepo ports.OrderRepository,
	collector LogCollector,
	logger *slog.Logger,
	now func() time.Time,
) StartItemCommandHandler {
	return StartItemCommandHandler{
		orderRepo: orderRepo,
		collector: collector,
		logger:    logger.With("component", "StartItemCommandHandler"),
		now:       now,
	}
}

// Handle processes the item start command.
// On success the item is on-their-way with its cooking clock running from a
// single instant captured here.
func (h StartItemCommandHandler) Handle(ctx context.Context, cmd StartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.now()
	err := h.orderRepo.Mutate(ctx, cmd.Department(), cmd.OrderID(), func(o *order.Order) error {
		return o.StartItem(cmd.ItemID(), cmd.StaffName(), now)
	})
	if err := suppressStale(h.logger, "startItem", err); err != nil {
		return err
	}

	collectAfterMutation(ctx, h.logger, h.orderRepo, h.collector)
	return nil
}
