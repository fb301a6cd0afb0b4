package ports

import (
	"context"

	"expeditor/internal/core/domain/model/staff"
)

// StaffRepository holds the runtime staff roster. The roster is replaced
// wholesale at startup (from snapshot or seed data) and mutated one worker
// at a time afterwards.
type StaffRepository interface {
	// GetAll returns the roster in its seeded order.
	GetAll(ctx context.Context) ([]*staff.Worker, error)

	// Get returns the worker with the given name. Returns an error
	// unwrapping to errs.ErrObjectNotFound when no such worker exists.
	Get(ctx context.Context, name string) (*staff.Worker, error)

	// Replace swaps in a whole new roster.
	Replace(ctx context.Context, roster []*staff.Worker) error
}
