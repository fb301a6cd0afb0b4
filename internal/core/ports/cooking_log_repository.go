package ports

import (
	"context"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/kernel"
)

// CookingLogRepository accumulates the immutable performance records derived
// from finished items, plus the per-waiter delivery records.
//
// Only the cooking log collector writes here (the seed loader excepted);
// analytics and stats queries read.
type CookingLogRepository interface {
	// Add appends one cooking log record. At most one record may exist per
	// item id; the collector's seen-set discipline guarantees this.
	Add(ctx context.Context, log *cookinglog.CookingLog) error

	// Get returns a copy of the record for one item id. Returns an error
	// unwrapping to errs.ErrObjectNotFound when no record exists.
	Get(ctx context.Context, id kernel.UUID) (*cookinglog.CookingLog, error)

	// GetAll returns a copy of every record in creation order.
	GetAll(ctx context.Context) ([]*cookinglog.CookingLog, error)

	// Mutate applies the callback to the record for one item id inside the
	// store's critical section, so waiter and delivery attachments never
	// race with readers. Returns an error unwrapping to
	// errs.ErrObjectNotFound when no record exists.
	Mutate(ctx context.Context, id kernel.UUID, mutate func(*cookinglog.CookingLog) error) error

	// AddDeliveryRecord appends one completed delivery to the waiter's list.
	AddDeliveryRecord(ctx context.Context, waiterName string, record *cookinglog.DeliveryRecord) error

	// GetDeliveryRecords returns the waiter's deliveries in creation order.
	// A waiter with no deliveries yields an empty slice, not an error.
	GetDeliveryRecords(ctx context.Context, waiterName string) ([]*cookinglog.DeliveryRecord, error)

	// GetAllDeliveryRecords returns every waiter's deliveries keyed by
	// waiter name.
	GetAllDeliveryRecords(ctx context.Context) (map[string][]*cookinglog.DeliveryRecord, error)
}
