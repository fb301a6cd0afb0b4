// Package ports defines the contracts between the application core and its
// adapters: the order store, the cooking log store, and the persisted
// snapshot.
//
// The stores here are in-memory and single-writer; unlike a database-backed
// repository there is no transaction object to coordinate. Atomicity is the
// store's own responsibility: every Mutate/MutateAll call runs its callback
// under store-wide mutual exclusion, so mutations and tick refreshes never
// interleave at sub-operation granularity.
package ports

import (
	"context"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/order"
)

// OrderRepository holds the authoritative collection of orders per
// department and is the only way to reach or change them.
//
// Read methods return detached copies taken inside the store's critical
// section, so callers can inspect them after the lock is released while the
// tick keeps rewriting the live aggregates. All mutation goes through
// Mutate/MutateAll so the store can serialize writers.
type OrderRepository interface {
	// Add registers a new order in its department's queue. Orders are kept
	// in insertion order within the department.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetByDepartment returns copies of the department's orders in
	// insertion order.
	GetByDepartment(ctx context.Context, department kernel.Department) ([]*order.Order, error)

	// GetAll returns copies of every order across all departments, grouped
	// by department in kernel.AllDepartments order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Mutate runs the callback on one order under the store's write lock.
	// Returns an error unwrapping to errs.ErrObjectNotFound when the
	// department has no such order; otherwise returns the callback's error.
	Mutate(ctx context.Context, department kernel.Department, orderID kernel.UUID, mutate func(*order.Order) error) error

	// MutateAll runs the callback on every order under the store's write
	// lock, in one critical section. Used by the timer refresh pass so all
	// items are updated from one consistent instant.
	MutateAll(ctx context.Context, mutate func(*order.Order)) error
}
