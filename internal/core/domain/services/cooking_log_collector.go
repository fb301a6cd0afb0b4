package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
	"expeditor/internal/pkg/errs"
)

// CookingLogCollector scans orders after every mutation and tick, deriving
// immutable log records from item state. Each derivation happens exactly
// once per item:
//
//   - a finished item with valid timing produces one CookingLog
//   - a waiter assignment attaches the waiter to that item's log
//   - a completed delivery attaches the delivery timing to the log and
//     produces one per-waiter DeliveryRecord
//
// The collector is the only writer of cooking logs and delivery records.
// Dedup state lives in memory; logs persist for the process lifetime, so a
// restart that clears the seen sets also clears the records they guard.
type CookingLogCollector struct {
	logs     ports.CookingLogRepository
	snapshot ports.SnapshotRepository
	logger   *slog.Logger

	mu sync.Mutex
	// keyed by item UUID string
	seenLogs       map[string]bool
	seenWaiters    map[string]bool
	seenDeliveries map[string]bool
}

// NewCookingLogCollector creates a collector writing to the given log
// repository and archiving delivery records through the snapshot repository.
func NewCookingLogCollector(
	logs ports.CookingLogRepository,
	snapshot ports.SnapshotRepository,
	logger *slog.Logger,
) (*CookingLogCollector, error) {
	if logs == nil {
		return nil, errs.NewValueIsRequiredError("logs")
	}
	if snapshot == nil {
		return nil, errs.NewValueIsRequiredError("snapshot")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &CookingLogCollector{
		logs:           logs,
		snapshot:       snapshot,
		logger:         logger.With("component", "CookingLogCollector"),
		seenLogs:       make(map[string]bool),
		seenWaiters:    make(map[string]bool),
		seenDeliveries: make(map[string]bool),
	}, nil
}

// Collect derives log records from the current state of the given orders.
//
// Collect is idempotent over unchanged state: rescanning the same orders
// produces nothing new. Individual item failures are logged and skipped so
// one malformed item cannot block collection for the rest.
func (c *CookingLogCollector) Collect(ctx context.Context, orders []*order.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, o := range orders {
		for _, item := range o.Items() {
			c.collectFinished(ctx, o, item)
			c.collectWaiter(ctx, item)
			c.collectDelivery(ctx, o, item)
		}
	}
}

// collectFinished creates the cooking log for a newly finished item.
// Items missing a staff name or timing data are skipped permanently: they
// can never yield a valid record.
func (c *CookingLogCollector) collectFinished(ctx context.Context, o *order.Order, item *order.MenuItem) {
	key := item.ID().String()
	if c.seenLogs[key] || item.Status() != order.Finished {
		return
	}
	if item.AssignedStaff() == "" || item.StartedAt().IsZero() || item.FinishedAt().IsZero() {
		c.seenLogs[key] = true
		c.logger.Warn("finished item has no usable timing, skipping log",
			"itemID", key, "name", item.Name())
		return
	}

	duration := item.FinishedAt().Sub(item.StartedAt()).Milliseconds() / 1000
	if duration < 0 {
		duration = 0
	}

	log, err := cookinglog.NewCookingLog(
		item.ID(),
		item.Name(),
		item.AssignedStaff(),
		o.Department(),
		duration,
		item.FinishedAt(),
		cookinglog.Live,
	)
	if err != nil {
		c.seenLogs[key] = true
		c.logger.Error("cannot build cooking log", "itemID", key, "error", err)
		return
	}

	if err := c.logs.Add(ctx, log); err != nil {
		// Leave the item unseen so the next scan retries the write.
		c.logger.Error("cannot store cooking log", "itemID", key, "error", err)
		return
	}

	c.seenLogs[key] = true
	c.logger.Debug("cooking log recorded",
		"itemID", key, "staff", item.AssignedStaff(), "durationSeconds", duration)
}

// collectWaiter attaches the waiter to the item's log once assigned. If the
// log does not exist yet the item stays unseen and is retried next scan.
func (c *CookingLogCollector) collectWaiter(ctx context.Context, item *order.MenuItem) {
	key := item.ID().String()
	if c.seenWaiters[key] || item.AssignedWaiter() == "" {
		return
	}

	err := c.logs.Mutate(ctx, item.ID(), func(log *cookinglog.CookingLog) error {
		return log.AttachWaiter(item.AssignedWaiter())
	})
	if errors.Is(err, errs.ErrObjectNotFound) {
		// The finished-item scan has not produced the log yet; the next
		// scan retries the attachment.
		return
	}
	if err != nil {
		c.seenWaiters[key] = true
		c.logger.Error("cannot attach waiter to cooking log", "itemID", key, "error", err)
		return
	}

	c.seenWaiters[key] = true
}

// collectDelivery records the completed delivery of an item: it attaches the
// delivery timing to the cooking log, appends a per-waiter delivery record,
// and archives the waiter's records through the snapshot repository.
func (c *CookingLogCollector) collectDelivery(ctx context.Context, o *order.Order, item *order.MenuItem) {
	key := item.ID().String()
	if c.seenDeliveries[key] || !item.Delivered() {
		return
	}
	if item.DeliveryStartedAt().IsZero() || item.DeliveryFinishedAt().IsZero() {
		c.seenDeliveries[key] = true
		c.logger.Warn("delivered item has no usable delivery timing, skipping record",
			"itemID", key, "name", item.Name())
		return
	}

	err := c.logs.Mutate(ctx, item.ID(), func(log *cookinglog.CookingLog) error {
		return log.AttachDelivery(
			item.DeliveryStartedAt(),
			item.DeliveryFinishedAt(),
			item.DeliveryElapsedSeconds(),
		)
	})
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		c.logger.Error("cannot attach delivery to cooking log", "itemID", key, "error", err)
	}

	record, err := cookinglog.NewDeliveryRecord(
		item.ID(),
		item.Name(),
		o.ID(),
		item.DeliveryElapsedSeconds(),
		item.DeliveryFinishedAt(),
		o.Department(),
	)
	if err != nil {
		c.seenDeliveries[key] = true
		c.logger.Error("cannot build delivery record", "itemID", key, "error", err)
		return
	}

	waiterName := item.AssignedWaiter()
	if err := c.logs.AddDeliveryRecord(ctx, waiterName, record); err != nil {
		c.logger.Error("cannot store delivery record", "itemID", key, "error", err)
		return
	}

	c.seenDeliveries[key] = true
	c.logger.Debug("delivery recorded",
		"itemID", key, "waiter", waiterName, "deliverySeconds", item.DeliveryElapsedSeconds())

	c.archiveDeliveries(ctx)
}

// archiveDeliveries mirrors the full delivery archive into the snapshot
// store. Archive failures are logged, never propagated; the in-memory
// records remain the source of truth for the running process.
func (c *CookingLogCollector) archiveDeliveries(ctx context.Context) {
	records, err := c.logs.GetAllDeliveryRecords(ctx)
	if err != nil {
		c.logger.Error("cannot read delivery records for archiving", "error", err)
		return
	}

	if err := c.snapshot.SaveDeliveryRecords(ctx, records); err != nil {
		c.logger.Error("cannot archive delivery records", "error", err)
	}
}

// MarkSeeded registers items whose logs were preloaded from seed or snapshot
// data, so live collection does not duplicate them.
func (c *CookingLogCollector) MarkSeeded(keys []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		c.seenLogs[key] = true
		c.seenWaiters[key] = true
		c.seenDeliveries[key] = true
	}
}
