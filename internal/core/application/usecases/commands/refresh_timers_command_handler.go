package commands

import (
	"context"
	"log/slog"
	"time"

	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
)

// RefreshTimersCommandHandler advances every running cooking and delivery
// clock from one consistent instant. The whole pass runs in a single store
// critical section, so no reader observes a half-ticked working set. Status
// never changes here; the tick only rewrites derived fields.
type RefreshTimersCommandHandler struct {
	orderRepo ports.OrderRepository
	collector LogCollector
	logger    *slog.Logger
	now       func() time.Time
}

// NewRefreshTimersCommandHandler creates a handler for the timer refresh
// tick.
func NewRefreshTimersCommandHandler(
	orderRepo ports.OrderRepository,
	collector LogCollector,
	logger *slog.Logger,
	now func() time.Time,
) RefreshTimersCommandHandler {
	return RefreshTimersCommandHandler{
		orderRepo: orderRepo,
		collector: collector,
		logger:    logger.With("component", "RefreshTimersCommandHandler"),
		now:       now,
	}
}

// Handle processes one tick.
func (h RefreshTimersCommandHandler) Handle(ctx context.Context, cmd RefreshTimersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.now()
	if err := h.orderRepo.MutateAll(ctx, func(o *order.Order) {
		o.RefreshTimers(now)
	}); err != nil {
		return err
	}

	collectAfterMutation(ctx, h.logger, h.orderRepo, h.collector)
	return nil
}
