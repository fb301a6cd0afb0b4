package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"expeditor/internal/adapters/out/memory"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/order"
)

var base = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

// SpyCollector counts collection passes; the collector's own behavior is
// covered by its package tests.
type SpyCollector struct {
	calls  int
	orders []*order.Order
}

func (s *SpyCollector) Collect(_ context.Context, orders []*order.Order) {
	s.calls++
	s.orders = orders
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seedOrder(t *testing.T, store *memory.OrderStore, department kernel.Department, priority order.Priority) *order.Order {
	t.Helper()
	item, err := order.NewMenuItem(kernel.NewUUID(), "Margherita", 1, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "A-17", department, priority, []*order.MenuItem{item})
	require.NoError(t, err)
	require.NoError(t, store.Add(context.Background(), o))
	return o
}
