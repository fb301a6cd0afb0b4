package cookinglog_test

import (
	"testing"
	"time"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func newTestLog(t *testing.T) *cookinglog.CookingLog {
	t.Helper()
	log, err := cookinglog.NewCookingLog(
		kernel.NewUUID(), "Margherita", "alice", kernel.Kitchen, 50, base, cookinglog.Live)
	require.NoError(t, err)
	return log
}

func TestNewCookingLog(t *testing.T) {
	t.Run("should create valid log", func(t *testing.T) {
		id := kernel.NewUUID()

		log, err := cookinglog.NewCookingLog(id, "Margherita", "alice", kernel.Kitchen, 50, base, cookinglog.Live)

		require.NoError(t, err)
		require.NoError(t, log.Validate())
		assert.True(t, log.ID().IsEqual(id))
		assert.Equal(t, "Margherita", log.MenuName())
		assert.Equal(t, "alice", log.StaffName())
		assert.Equal(t, kernel.Kitchen, log.Department())
		assert.EqualValues(t, 50, log.DurationSeconds())
		assert.Equal(t, base, log.Timestamp())
		assert.Equal(t, cookinglog.Live, log.Source())
		assert.Empty(t, log.WaiterName())
	})

	t.Run("zero duration is allowed", func(t *testing.T) {
		_, err := cookinglog.NewCookingLog(
			kernel.NewUUID(), "Espresso", "bob", kernel.Bar, 0, base, cookinglog.Seed)

		require.NoError(t, err)
	})

	t.Run("should fail on invalid input", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := cookinglog.NewCookingLog(invalidID, "", "", kernel.UnknownDepartment, -1, base, cookinglog.UnknownSource)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "menuName")
		assert.Contains(t, err.Error(), "staffName")
		assert.Contains(t, err.Error(), "department is invalid")
		assert.Contains(t, err.Error(), "duration is invalid")
		assert.Contains(t, err.Error(), "source is invalid")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var log cookinglog.CookingLog

		require.ErrorIs(t, log.Validate(), cookinglog.ErrCookingLogIsNotConstructed)
	})
}

func TestCookingLog_AttachWaiter(t *testing.T) {
	t.Run("attaches waiter without touching cooking fields", func(t *testing.T) {
		log := newTestLog(t)

		require.NoError(t, log.AttachWaiter("walter"))

		assert.Equal(t, "walter", log.WaiterName())
		assert.Equal(t, "alice", log.StaffName())
		assert.EqualValues(t, 50, log.DurationSeconds())
	})

	t.Run("rejects empty waiter", func(t *testing.T) {
		log := newTestLog(t)

		require.Error(t, log.AttachWaiter(""))
	})
}

func TestCookingLog_AttachDelivery(t *testing.T) {
	t.Run("attaches delivery timing", func(t *testing.T) {
		log := newTestLog(t)

		err := log.AttachDelivery(base.Add(time.Minute), base.Add(2*time.Minute), 60)

		require.NoError(t, err)
		assert.Equal(t, base.Add(time.Minute), log.DeliveryStartedAt())
		assert.Equal(t, base.Add(2*time.Minute), log.DeliveryFinishedAt())
		assert.EqualValues(t, 60, log.DeliverySeconds())
	})

	t.Run("rejects zero timestamps", func(t *testing.T) {
		log := newTestLog(t)

		require.Error(t, log.AttachDelivery(time.Time{}, base, 0))
		require.Error(t, log.AttachDelivery(base, time.Time{}, 0))
	})

	t.Run("rejects reversed interval", func(t *testing.T) {
		log := newTestLog(t)

		require.Error(t, log.AttachDelivery(base.Add(time.Minute), base, 0))
	})

	t.Run("rejects negative duration", func(t *testing.T) {
		log := newTestLog(t)

		require.Error(t, log.AttachDelivery(base, base.Add(time.Minute), -1))
	})
}

func TestNewDeliveryRecord(t *testing.T) {
	t.Run("should create valid record", func(t *testing.T) {
		itemID, orderID := kernel.NewUUID(), kernel.NewUUID()

		record, err := cookinglog.NewDeliveryRecord(itemID, "Margherita", orderID, 45, base, kernel.Kitchen)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.True(t, record.ItemID().IsEqual(itemID))
		assert.True(t, record.OrderID().IsEqual(orderID))
		assert.Equal(t, "Margherita", record.ItemName())
		assert.EqualValues(t, 45, record.DeliverySeconds())
		assert.Equal(t, kernel.Kitchen, record.Department())
	})

	t.Run("should fail on invalid input", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := cookinglog.NewDeliveryRecord(invalidID, "", invalidID, -5, base, kernel.UnknownDepartment)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var record cookinglog.DeliveryRecord

		require.ErrorIs(t, record.Validate(), cookinglog.ErrDeliveryRecordIsNotConstructed)
	})
}

func TestSource(t *testing.T) {
	assert.Equal(t, "seed", cookinglog.Seed.String())
	assert.Equal(t, "live", cookinglog.Live.String())
	assert.Equal(t, "unknown", cookinglog.UnknownSource.String())
	require.NoError(t, cookinglog.Seed.Validate())
	require.NoError(t, cookinglog.Live.Validate())
	require.Error(t, cookinglog.UnknownSource.Validate())
}
