package ports

import (
	"context"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/staff"
)

// SnapshotRepository persists the slow-moving state that should survive a
// restart: the staff roster (availability and schedules) and the per-waiter
// delivery archive. Load methods return an error unwrapping to
// errs.ErrObjectNotFound when no snapshot has been saved yet, which the
// composition root treats as a signal to fall back to seed data.
type SnapshotRepository interface {
	LoadRoster(ctx context.Context) ([]*staff.Worker, error)
	SaveRoster(ctx context.Context, roster []*staff.Worker) error

	LoadDeliveryRecords(ctx context.Context) (map[string][]*cookinglog.DeliveryRecord, error)
	SaveDeliveryRecords(ctx context.Context, records map[string][]*cookinglog.DeliveryRecord) error
}
