package memory

import (
	"context"
	"sync"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/errs"
)

// CookingLogStore implements ports.CookingLogRepository over in-memory
// slices. Records are append-only; the analytics queries read them with a
// shared lock.
type CookingLogStore struct {
	mu sync.RWMutex

	logs  []*cookinglog.CookingLog
	byID  map[string]*cookinglog.CookingLog
	byWtr map[string][]*cookinglog.DeliveryRecord
}

// NewCookingLogStore creates an empty cooking log store.
func NewCookingLogStore() *CookingLogStore {
	return &CookingLogStore{
		byID:  make(map[string]*cookinglog.CookingLog),
		byWtr: make(map[string][]*cookinglog.DeliveryRecord),
	}
}

// Add appends one cooking log record. A second record for the same item id
// is rejected; the collector's dedup should make that unreachable.
func (s *CookingLogStore) Add(_ context.Context, log *cookinglog.CookingLog) error {
	if err := log.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := log.ID().String()
	if _, exists := s.byID[key]; exists {
		return errs.NewValueIsInvalidError("logID")
	}

	s.byID[key] = log
	s.logs = append(s.logs, log)
	return nil
}

// Get returns a copy of the record for one item id, or an error unwrapping
// to errs.ErrObjectNotFound.
func (s *CookingLogStore) Get(_ context.Context, id kernel.UUID) (*cookinglog.CookingLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	log, exists := s.byID[id.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("logID", id.String())
	}
	return log.Clone(), nil
}

// GetAll returns a copy of every record in creation order. Copies taken
// under the read lock stay stable while the collector keeps attaching waiter
// and delivery fields to the live records.
func (s *CookingLogStore) GetAll(_ context.Context) ([]*cookinglog.CookingLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]*cookinglog.CookingLog, len(s.logs))
	for idx, log := range s.logs {
		logs[idx] = log.Clone()
	}
	return logs, nil
}

// Mutate applies the callback to the record for one item id under the
// store's write lock. Returns an error unwrapping to errs.ErrObjectNotFound
// when no record exists.
func (s *CookingLogStore) Mutate(_ context.Context, id kernel.UUID, mutate func(*cookinglog.CookingLog) error) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log, exists := s.byID[id.String()]
	if !exists {
		return errs.NewObjectNotFoundError("logID", id.String())
	}
	return mutate(log)
}

// AddDeliveryRecord appends one completed delivery to the waiter's list.
func (s *CookingLogStore) AddDeliveryRecord(_ context.Context, waiterName string, record *cookinglog.DeliveryRecord) error {
	if waiterName == "" {
		return errs.NewValueIsRequiredError("waiterName")
	}
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byWtr[waiterName] = append(s.byWtr[waiterName], record)
	return nil
}

// GetDeliveryRecords returns the waiter's deliveries in creation order.
func (s *CookingLogStore) GetDeliveryRecords(_ context.Context, waiterName string) ([]*cookinglog.DeliveryRecord, error) {
	if waiterName == "" {
		return nil, errs.NewValueIsRequiredError("waiterName")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*cookinglog.DeliveryRecord(nil), s.byWtr[waiterName]...), nil
}

// GetAllDeliveryRecords returns every waiter's deliveries keyed by name.
func (s *CookingLogStore) GetAllDeliveryRecords(_ context.Context) (map[string][]*cookinglog.DeliveryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make(map[string][]*cookinglog.DeliveryRecord, len(s.byWtr))
	for waiterName, list := range s.byWtr {
		records[waiterName] = append([]*cookinglog.DeliveryRecord(nil), list...)
	}
	return records, nil
}

// SeedDeliveryRecords replaces the delivery archive wholesale. Used once at
// startup to restore records loaded from a snapshot.
func (s *CookingLogStore) SeedDeliveryRecords(records map[string][]*cookinglog.DeliveryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for waiterName, list := range records {
		s.byWtr[waiterName] = append([]*cookinglog.DeliveryRecord(nil), list...)
	}
}
