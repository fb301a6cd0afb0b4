package memory

import (
	"context"
	"sync"

	"expeditor/internal/core/domain/model/staff"
	"expeditor/internal/pkg/errs"
)

// StaffStore implements ports.StaffRepository over an ordered slice.
// Workers are shared pointers; availability and schedule mutations happen on
// the worker itself, so reads after a command observe the new state.
type StaffStore struct {
	mu sync.RWMutex

	roster []*staff.Worker
	byName map[string]*staff.Worker
}

// NewStaffStore creates an empty staff store.
func NewStaffStore() *StaffStore {
	return &StaffStore{byName: make(map[string]*staff.Worker)}
}

// GetAll returns the roster in its seeded order.
func (s *StaffStore) GetAll(_ context.Context) ([]*staff.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*staff.Worker(nil), s.roster...), nil
}

// Get returns the worker with the given name.
func (s *StaffStore) Get(_ context.Context, name string) (*staff.Worker, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	worker, exists := s.byName[name]
	if !exists {
		return nil, errs.NewObjectNotFoundError("name", name)
	}
	return worker, nil
}

// Replace swaps in a whole new roster.
func (s *StaffStore) Replace(_ context.Context, roster []*staff.Worker) error {
	for _, worker := range roster {
		if err := worker.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = append([]*staff.Worker(nil), roster...)
	s.byName = make(map[string]*staff.Worker, len(roster))
	for _, worker := range roster {
		s.byName[worker.Name()] = worker
	}
	return nil
}
