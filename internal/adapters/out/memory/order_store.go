// Package memory provides the in-process stores backing the live working
// set: active orders and the cooking log archive. Orders live only for the
// process lifetime; slow-moving state that must survive a restart goes
// through the snapshot repository instead.
package memory

import (
	"context"
	"fmt"
	"sync"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/pkg/errs"
)

// OrderStore implements ports.OrderRepository over per-department slices.
//
// A single RWMutex covers the whole store, so every mutation callback runs
// in one critical section. That replaces transactional isolation: the tick
// job and the HTTP handlers serialize on the same lock and no reader ever
// observes a half-applied mutation.
type OrderStore struct {
	mu sync.RWMutex

	// byDepartment keeps insertion order per station; byID is the lookup index
	byDepartment map[kernel.Department][]*order.Order
	byID         map[string]*order.Order
}

// NewOrderStore creates an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		byDepartment: make(map[kernel.Department][]*order.Order),
		byID:         make(map[string]*order.Order),
	}
}

// Add registers a new order under its owning department.
// Adding an order with an already-known id is rejected.
func (s *OrderStore) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := o.ID().String()
	if _, exists := s.byID[key]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderID",
			fmt.Errorf("order %s is already registered", key),
		)
	}

	s.byID[key] = o
	s.byDepartment[o.Department()] = append(s.byDepartment[o.Department()], o)
	return nil
}

// GetByDepartment returns the department's orders in insertion order.
// Every returned order is a deep copy taken under the read lock, so callers
// can read it after the lock is released while the tick job keeps rewriting
// the live aggregates. Mutation goes through Mutate or MutateAll.
func (s *OrderStore) GetByDepartment(_ context.Context, department kernel.Department) ([]*order.Order, error) {
	if err := department.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneOrders(s.byDepartment[department]), nil
}

// GetAll returns a deep copy of every order grouped by department,
// departments in their canonical order and orders in insertion order within
// each.
func (s *OrderStore) GetAll(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []*order.Order
	for _, department := range kernel.AllDepartments() {
		orders = append(orders, cloneOrders(s.byDepartment[department])...)
	}
	return orders, nil
}

func cloneOrders(orders []*order.Order) []*order.Order {
	clones := make([]*order.Order, len(orders))
	for idx, o := range orders {
		clones[idx] = o.Clone()
	}
	return clones
}

// Mutate applies the callback to one order of the department under the
// store's write lock. Returns an error unwrapping to errs.ErrObjectNotFound
// when the department has no such order.
func (s *OrderStore) Mutate(
	_ context.Context,
	department kernel.Department,
	orderID kernel.UUID,
	mutate func(*order.Order) error,
) error {
	if err := department.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, exists := s.byID[orderID.String()]
	if !exists || o.Department() != department {
		return errs.NewObjectNotFoundError("orderID", orderID.String())
	}

	return mutate(o)
}

// MutateAll applies the callback to every order in one critical section.
// Used by the timer refresh tick so all derived clocks advance from a single
// consistent instant.
func (s *OrderStore) MutateAll(_ context.Context, mutate func(*order.Order)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, department := range kernel.AllDepartments() {
		for _, o := range s.byDepartment[department] {
			mutate(o)
		}
	}
	return nil
}
