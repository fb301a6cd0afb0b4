package memory

import (
	"context"
	"sync"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/staff"
	"expeditor/internal/pkg/errs"
)

// SnapshotStore implements ports.SnapshotRepository in memory, for runs
// without a database. Saved state survives until the process exits, which
// keeps the save/load contract intact for tests and local runs; nothing is
// actually durable.
type SnapshotStore struct {
	mu sync.Mutex

	roster    []*staff.Worker
	hasRoster bool

	deliveries    map[string][]*cookinglog.DeliveryRecord
	hasDeliveries bool
}

// NewSnapshotStore creates an empty in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// LoadRoster returns the last saved roster, or an error unwrapping to
// errs.ErrObjectNotFound when nothing was saved yet.
func (s *SnapshotStore) LoadRoster(_ context.Context) ([]*staff.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasRoster {
		return nil, errs.NewObjectNotFoundError("key", "roster")
	}
	return append([]*staff.Worker(nil), s.roster...), nil
}

// SaveRoster stores the roster.
func (s *SnapshotStore) SaveRoster(_ context.Context, roster []*staff.Worker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = append([]*staff.Worker(nil), roster...)
	s.hasRoster = true
	return nil
}

// LoadDeliveryRecords returns the last saved delivery archive, or an error
// unwrapping to errs.ErrObjectNotFound when nothing was saved yet.
func (s *SnapshotStore) LoadDeliveryRecords(_ context.Context) (map[string][]*cookinglog.DeliveryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasDeliveries {
		return nil, errs.NewObjectNotFoundError("key", "deliveries")
	}

	records := make(map[string][]*cookinglog.DeliveryRecord, len(s.deliveries))
	for waiterName, list := range s.deliveries {
		records[waiterName] = append([]*cookinglog.DeliveryRecord(nil), list...)
	}
	return records, nil
}

// SaveDeliveryRecords stores the delivery archive.
func (s *SnapshotStore) SaveDeliveryRecords(_ context.Context, records map[string][]*cookinglog.DeliveryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deliveries = make(map[string][]*cookinglog.DeliveryRecord, len(records))
	for waiterName, list := range records {
		s.deliveries[waiterName] = append([]*cookinglog.DeliveryRecord(nil), list...)
	}
	s.hasDeliveries = true
	return nil
}
