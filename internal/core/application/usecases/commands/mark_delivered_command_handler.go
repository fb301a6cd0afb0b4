package commands

import (
	"context"
	"log/slog"
	"time"

	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
)

// MarkDeliveredCommandHandler handles the business logic for the order-level
// terminal delivery step.
type MarkDeliveredCommandHandler struct {
	orderRepo ports.OrderRepository
	collector LogCollector
	logger    *slog.Logger
	now       func() time.Time
}

// NewMarkDeliveredCommandHandler creates a handler for order-level delivery.
func NewMarkDeliveredCommandHandler(
	orderRepo ports.OrderRepository,
	collector LogCollector,
	logger *slog.Logger,
	now func() time.Time,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		orderRepo: orderRepo,
		collector: collector,
		logger:    logger.With("component", "MarkDeliveredCommandHandler"),
		now:       now,
	}
}

// Handle processes the order delivery command. A repeated click on an
// already-delivered order is a silent no-op.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.now()
	err := h.orderRepo.Mutate(ctx, cmd.Department(), cmd.OrderID(), func(o *order.Order) error {
		return o.MarkDelivered(now)
	})
	if err := suppressStale(h.logger, "markDelivered", err); err != nil {
		return err
	}

	collectAfterMutation(ctx, h.logger, h.orderRepo, h.collector)
	return nil
}
