package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/domain/model/staff"
	"expeditor/internal/pkg/errs"
)

// logStoreFake is a minimal in-memory CookingLogRepository.
type logStoreFake struct {
	logs     []*cookinglog.CookingLog
	records  map[string][]*cookinglog.DeliveryRecord
	addFails bool
}

func newLogStoreFake() *logStoreFake {
	return &logStoreFake{records: make(map[string][]*cookinglog.DeliveryRecord)}
}

func (s *logStoreFake) Add(_ context.Context, log *cookinglog.CookingLog) error {
	if s.addFails {
		return assert.AnError
	}
	s.logs = append(s.logs, log)
	return nil
}

func (s *logStoreFake) Get(_ context.Context, id kernel.UUID) (*cookinglog.CookingLog, error) {
	for _, log := range s.logs {
		if log.ID().IsEqual(id) {
			return log, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("id", id.String())
}

func (s *logStoreFake) GetAll(_ context.Context) ([]*cookinglog.CookingLog, error) {
	return s.logs, nil
}

func (s *logStoreFake) Mutate(ctx context.Context, id kernel.UUID, mutate func(*cookinglog.CookingLog) error) error {
	log, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return mutate(log)
}

func (s *logStoreFake) AddDeliveryRecord(_ context.Context, waiterName string, record *cookinglog.DeliveryRecord) error {
	s.records[waiterName] = append(s.records[waiterName], record)
	return nil
}

func (s *logStoreFake) GetDeliveryRecords(_ context.Context, waiterName string) ([]*cookinglog.DeliveryRecord, error) {
	return s.records[waiterName], nil
}

func (s *logStoreFake) GetAllDeliveryRecords(_ context.Context) (map[string][]*cookinglog.DeliveryRecord, error) {
	return s.records, nil
}

// snapshotFake records archive calls and never persists anything.
type snapshotFake struct {
	savedDeliveries int
}

func (s *snapshotFake) LoadRoster(context.Context) ([]*staff.Worker, error) {
	return nil, errs.NewObjectNotFoundError("key", "roster")
}

func (s *snapshotFake) SaveRoster(context.Context, []*staff.Worker) error {
	return nil
}

func (s *snapshotFake) LoadDeliveryRecords(context.Context) (map[string][]*cookinglog.DeliveryRecord, error) {
	return nil, errs.NewObjectNotFoundError("key", "deliveries")
}

func (s *snapshotFake) SaveDeliveryRecords(_ context.Context, _ map[string][]*cookinglog.DeliveryRecord) error {
	s.savedDeliveries++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCollector(t *testing.T, logs *logStoreFake, snapshot *snapshotFake) *CookingLogCollector {
	t.Helper()
	collector, err := NewCookingLogCollector(logs, snapshot, testLogger())
	require.NoError(t, err)
	return collector
}

var collectorBase = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func newSingleItemOrder(t *testing.T) (*order.Order, *order.MenuItem) {
	t.Helper()
	item, err := order.NewMenuItem(kernel.NewUUID(), "Margherita", 1, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "A-17", kernel.Kitchen, order.Normal, []*order.MenuItem{item})
	require.NoError(t, err)
	return o, item
}

func TestNewCookingLogCollector(t *testing.T) {
	t.Run("requires all dependencies", func(t *testing.T) {
		logs := newLogStoreFake()
		snapshot := &snapshotFake{}

		_, err := NewCookingLogCollector(nil, snapshot, testLogger())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = NewCookingLogCollector(logs, nil, testLogger())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = NewCookingLogCollector(logs, snapshot, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCookingLogCollector_Collect(t *testing.T) {
	ctx := context.Background()

	t.Run("finished item produces exactly one log", func(t *testing.T) {
		logs := newLogStoreFake()
		collector := newCollector(t, logs, &snapshotFake{})
		o, item := newSingleItemOrder(t)

		require.NoError(t, item.Start("Alice", collectorBase))
		require.NoError(t, item.Finish(collectorBase.Add(95*time.Second)))

		collector.Collect(ctx, []*order.Order{o})
		collector.Collect(ctx, []*order.Order{o})

		require.Len(t, logs.logs, 1)
		log := logs.logs[0]
		assert.True(t, log.ID().IsEqual(item.ID()))
		assert.Equal(t, "Margherita", log.MenuName())
		assert.Equal(t, "Alice", log.StaffName())
		assert.Equal(t, kernel.Kitchen, log.Department())
		assert.Equal(t, int64(95), log.DurationSeconds())
		assert.Equal(t, collectorBase.Add(95*time.Second), log.Timestamp())
		assert.Equal(t, cookinglog.Live, log.Source())
	})

	t.Run("duration floors to whole seconds", func(t *testing.T) {
		logs := newLogStoreFake()
		collector := newCollector(t, logs, &snapshotFake{})
		o, item := newSingleItemOrder(t)

		require.NoError(t, item.Start("Alice", collectorBase))
		require.NoError(t, item.Finish(collectorBase.Add(3500*time.Millisecond)))

		collector.Collect(ctx, []*order.Order{o})

		require.Len(t, logs.logs, 1)
		assert.Equal(t, int64(3), logs.logs[0].DurationSeconds())
	})

	t.Run("unfinished item produces nothing", func(t *testing.T) {
		logs := newLogStoreFake()
		collector := newCollector(t, logs, &snapshotFake{})
		o, item := newSingleItemOrder(t)

		require.NoError(t, item.Start("Alice", collectorBase))

		collector.Collect(ctx, []*order.Order{o})

		assert.Empty(t, logs.logs)
	})

	t.Run("failed store write retries on next scan", func(t *testing.T) {
		logs := newLogStoreFake()
		logs.addFails = true
		collector := newCollector(t, logs, &snapshotFake{})
		o, item := newSingleItemOrder(t)

		require.NoError(t, item.Start("Alice", collectorBase))
		require.NoError(t, item.Finish(collectorBase.Add(time.Minute)))

		collector.Collect(ctx, []*order.Order{o})
		assert.Empty(t, logs.logs)

		logs.addFails = false
		collector.Collect(ctx, []*order.Order{o})
		assert.Len(t, logs.logs, 1)
	})

	t.Run("waiter assignment attaches to the log once", func(t *testing.T) {
		logs := newLogStoreFake()
		collector := newCollector(t, logs, &snapshotFake{})
		o, item := newSingleItemOrder(t)

		require.NoError(t, item.Start("Alice", collectorBase))
		require.NoError(t, item.Finish(collectorBase.Add(time.Minute)))
		collector.Collect(ctx, []*order.Order{o})

		require.NoError(t, item.AssignWaiter("Bob", collectorBase.Add(2*time.Minute)))
		collector.Collect(ctx, []*order.Order{o})
		collector.Collect(ctx, []*order.Order{o})

		require.Len(t, logs.logs, 1)
		assert.Equal(t, "Bob", logs.logs[0].WaiterName())
	})

	t.Run("delivery produces log enrichment, waiter record, and archive", func(t *testing.T) {
		logs := newLogStoreFake()
		snapshot := &snapshotFake{}
		collector := newCollector(t, logs, snapshot)
		o, item := newSingleItemOrder(t)

		require.NoError(t, item.Start("Alice", collectorBase))
		require.NoError(t, item.Finish(collectorBase.Add(time.Minute)))
		require.NoError(t, item.AssignWaiter("Bob", collectorBase.Add(2*time.Minute)))
		require.NoError(t, item.MarkDelivered(collectorBase.Add(2*time.Minute+40*time.Second)))

		collector.Collect(ctx, []*order.Order{o})
		collector.Collect(ctx, []*order.Order{o})

		require.Len(t, logs.logs, 1)
		log := logs.logs[0]
		assert.Equal(t, "Bob", log.WaiterName())
		assert.Equal(t, int64(40), log.DeliverySeconds())
		assert.Equal(t, collectorBase.Add(2*time.Minute), log.DeliveryStartedAt())

		records := logs.records["Bob"]
		require.Len(t, records, 1)
		assert.True(t, records[0].ItemID().IsEqual(item.ID()))
		assert.True(t, records[0].OrderID().IsEqual(o.ID()))
		assert.Equal(t, "Margherita", records[0].ItemName())
		assert.Equal(t, int64(40), records[0].DeliverySeconds())
		assert.Equal(t, kernel.Kitchen, records[0].Department())

		assert.Equal(t, 1, snapshot.savedDeliveries)
	})

	t.Run("seeded items are never re-collected", func(t *testing.T) {
		logs := newLogStoreFake()
		collector := newCollector(t, logs, &snapshotFake{})
		o, item := newSingleItemOrder(t)

		require.NoError(t, item.Start("Alice", collectorBase))
		require.NoError(t, item.Finish(collectorBase.Add(time.Minute)))

		collector.MarkSeeded([]string{item.ID().String()})
		collector.Collect(ctx, []*order.Order{o})

		assert.Empty(t, logs.logs)
	})
}
