// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, a guarded mutation on
// the order store, and a collector pass deriving log records from the result.
package commands

import (
	"context"
	"errors"
	"log/slog"

	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
	"expeditor/internal/pkg/errs"
)

// LogCollector derives cooking log and delivery records from order state.
// Handlers run a collection pass after every successful mutation so records
// appear immediately, not only on the next tick.
type LogCollector interface {
	Collect(ctx context.Context, orders []*order.Order)
}

// suppressStale converts the errors produced by stale UI clicks into silent
// no-ops: an unknown id or an already-performed transition is debug-logged
// and ignored. Genuine failures pass through.
func suppressStale(logger *slog.Logger, operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrValueIsInvalid) {
		logger.Debug("ignoring stale mutation", "operation", operation, "reason", err)
		return nil
	}
	return err
}

// collectAfterMutation runs the collector over the full working set. Read
// failures are logged, not propagated; the mutation already succeeded.
func collectAfterMutation(ctx context.Context, logger *slog.Logger, repo ports.OrderRepository, collector LogCollector) {
	orders, err := repo.GetAll(ctx)
	if err != nil {
		logger.Error("cannot read orders for log collection", "error", err)
		return
	}
	collector.Collect(ctx, orders)
}
