package commands

import (
	"context"
	"log/slog"
	"time"

	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
)

// MarkItemDeliveredCommandHandler handles the business logic for the
// item-level terminal delivery step. The collector pass that follows attaches
// the delivery timing to the item's cooking log and emits the waiter's
// delivery record.
type MarkItemDeliveredCommandHandler struct {
	orderRepo ports.OrderRepository
	collector LogCollector
	logger    *slog.Logger
	now       func() time.Time
}

// NewMarkItemDeliveredCommandHandler creates a handler for item-level
// delivery.
func NewMarkItemDeliveredCommandHandler(
	orderRepo ports.OrderRepository,
	collector LogCollector,
	logger *slog.Logger,
	now func() time.Time,
) MarkItemDeliveredCommandHandler {
	return MarkItemDeliveredCommandHandler{
		orderRepo: orderRepo,
		collector: collector,
		logger:    logger.With("component", "MarkItemDeliveredCommandHandler"),
		now:       now,
	}
}

// Handle processes the item delivery command. An item without a waiter or
// already delivered is a silent no-op.
func (h MarkItemDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkItemDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.now()
	err := h.orderRepo.Mutate(ctx, cmd.Department(), cmd.OrderID(), func(o *order.Order) error {
		return o.MarkItemDelivered(cmd.ItemID(), now)
	})
	if err := suppressStale(h.logger, "markItemDelivered", err); err != nil {
		return err
	}

	collectAfterMutation(ctx, h.logger, h.orderRepo, h.collector)
	return nil
}
