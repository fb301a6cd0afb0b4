package commands

import (
	"context"
	"log/slog"
	"time"

	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
)

// FinishItemCommandHandler handles the business logic for finishing an item.
// The item's cooking clock freezes at its last ticked value; the collector
// pass that follows turns the finished item into a cooking log record.
type FinishItemCommandHandler struct {
	orderRepo ports.OrderRepository
	collector LogCollector
	logger    *slog.Logger
	now       func() time.Time
}

// NewFinishItemCommandHandler creates a handler for item finish operations.
func NewFinishItemCommandHandler(
	orderRepo ports.OrderRepository,
	collector LogCollector,
	logger *slog.Logger,
	now func() time.Time,
) FinishItemCommandHandler {
	return FinishItemCommandHandler{
		orderRepo: orderRepo,
		collector: collector,
		logger:    logger.With("component", "FinishItemCommandHandler"),
		now:       now,
	}
}

// Handle processes the item finish command.
// A stale click on a missing, unstarted, or already-finished item is a
// silent no-op.
func (h FinishItemCommandHandler) Handle(ctx context.Context, cmd FinishItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.now()
	err := h.orderRepo.Mutate(ctx, cmd.Department(), cmd.OrderID(), func(o *order.Order) error {
		return o.FinishItem(cmd.ItemID(), now)
	})
	if err := suppressStale(h.logger, "finishItem", err); err != nil {
		return err
	}

	collectAfterMutation(ctx, h.logger, h.orderRepo, h.collector)
	return nil
}
