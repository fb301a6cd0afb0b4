package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"expeditor/internal/adapters/out/memory"
	"expeditor/internal/adapters/out/menuconfig"
	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/domain/model/timing"
)

var base = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func seedOrder(
	t *testing.T,
	store *memory.OrderStore,
	displayID string,
	department kernel.Department,
	priority order.Priority,
) *order.Order {
	t.Helper()
	item, err := order.NewMenuItem(kernel.NewUUID(), "Margherita", 1, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), displayID, department, priority, []*order.MenuItem{item})
	require.NoError(t, err)
	require.NoError(t, store.Add(context.Background(), o))
	return o
}

func seedLog(
	t *testing.T,
	store *memory.CookingLogStore,
	menuName string,
	staffName string,
	department kernel.Department,
	durationSeconds int64,
	timestamp time.Time,
	source cookinglog.Source,
) *cookinglog.CookingLog {
	t.Helper()
	log, err := cookinglog.NewCookingLog(
		kernel.NewUUID(), menuName, staffName, department, durationSeconds, timestamp, source,
	)
	require.NoError(t, err)
	require.NoError(t, store.Add(context.Background(), log))
	return log
}

func seedDeliveryRecord(
	t *testing.T,
	store *memory.CookingLogStore,
	waiterName string,
	itemName string,
	deliverySeconds int64,
) {
	t.Helper()
	record, err := cookinglog.NewDeliveryRecord(
		kernel.NewUUID(), itemName, kernel.NewUUID(), deliverySeconds, base, kernel.Kitchen,
	)
	require.NoError(t, err)
	require.NoError(t, store.AddDeliveryRecord(context.Background(), waiterName, record))
}

func defaultCatalog() *timing.Catalog {
	return timing.NewCatalog(menuconfig.DefaultPresets())
}
