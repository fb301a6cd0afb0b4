package commands

import (
	"context"
	"log/slog"
	"time"

	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
)

// CompleteOrderCommandHandler handles the business logic for closing a
// ticket. The aggregate guards the frozen clock: a second completion click is
// a no-op there, and completing with unfinished items is rejected and
// swallowed here as a stale click.
type CompleteOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	collector LogCollector
	logger    *slog.Logger
	now       func() time.Time
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	orderRepo ports.OrderRepository,
	collector LogCollector,
	logger *slog.Logger,
	now func() time.Time,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		orderRepo: orderRepo,
		collector: collector,
		logger:    logger.With("component", "CompleteOrderCommandHandler"),
		now:       now,
	}
}

// Handle processes the order completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.now()
	err := h.orderRepo.Mutate(ctx, cmd.Department(), cmd.OrderID(), func(o *order.Order) error {
		return o.Complete(now)
	})
	if err := suppressStale(h.logger, "completeOrder", err); err != nil {
		return err
	}

	collectAfterMutation(ctx, h.logger, h.orderRepo, h.collector)
	return nil
}
