package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expeditor/internal/adapters/out/memory"
	"expeditor/internal/adapters/out/menuconfig"
	"expeditor/internal/core/application/usecases/queries"
	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/kernel"
)

func TestGetEmployeeNamesQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("returns distinct names sorted", func(t *testing.T) {
		store := memory.NewCookingLogStore()
		seedLog(t, store, "Margherita", "Carol", kernel.Kitchen, 20, base, cookinglog.Live)
		seedLog(t, store, "Negroni", "Alice", kernel.Bar, 30, base, cookinglog.Live)
		seedLog(t, store, "Tiramisu", "Carol", kernel.Snack, 40, base, cookinglog.Seed)

		handler := queries.NewGetEmployeeNamesQueryHandler(store)

		names, err := handler.Handle(ctx, queries.NewGetEmployeeNamesQuery())
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Carol"}, names)
	})

	t.Run("no logs yields an empty list", func(t *testing.T) {
		handler := queries.NewGetEmployeeNamesQueryHandler(memory.NewCookingLogStore())

		names, err := handler.Handle(ctx, queries.NewGetEmployeeNamesQuery())
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestGetMenuItemsQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("unions logged dishes with configured presets", func(t *testing.T) {
		store := memory.NewCookingLogStore()
		seedLog(t, store, "Margherita", "Alice", kernel.Kitchen, 20, base, cookinglog.Live)
		seedLog(t, store, "Margherita", "Bob", kernel.Kitchen, 25, base, cookinglog.Live)

		catalog := defaultCatalog()
		require.NoError(t, catalog.SetItemTiming("Negroni", menuconfig.DefaultPresets()))

		handler := queries.NewGetMenuItemsQueryHandler(store, catalog)

		items, err := handler.Handle(ctx, queries.NewGetMenuItemsQuery())
		require.NoError(t, err)
		assert.Equal(t, []string{"Margherita", "Negroni"}, items)
	})
}

func TestGetEfficiencyLevelsQueryHandler(t *testing.T) {
	t.Run("returns the five tiers fastest first", func(t *testing.T) {
		handler := queries.NewGetEfficiencyLevelsQueryHandler()

		levels, err := handler.Handle(queries.NewGetEfficiencyLevelsQuery())
		require.NoError(t, err)
		assert.Equal(t, []string{"very-fast", "fast", "standard", "slow", "extremely-slow"}, levels)
	})
}

func TestGetWaiterStatsQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("averages the waiter's delivery durations", func(t *testing.T) {
		store := memory.NewCookingLogStore()
		seedDeliveryRecord(t, store, "Bob", "Margherita", 30)
		seedDeliveryRecord(t, store, "Bob", "Negroni", 45)
		seedDeliveryRecord(t, store, "Dave", "Tiramisu", 500)

		query, err := queries.NewGetWaiterStatsQuery("Bob")
		require.NoError(t, err)
		handler := queries.NewGetWaiterStatsQueryHandler(store)

		stats, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, "Bob", stats.WaiterName)
		assert.Equal(t, 2, stats.TotalDeliveries)
		assert.InDelta(t, 37.5, stats.AverageDeliverySeconds, 0.0001)
	})

	t.Run("waiter without deliveries gets zero stats, not an error", func(t *testing.T) {
		query, err := queries.NewGetWaiterStatsQuery("Mallory")
		require.NoError(t, err)
		handler := queries.NewGetWaiterStatsQueryHandler(memory.NewCookingLogStore())

		stats, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, "Mallory", stats.WaiterName)
		assert.Zero(t, stats.TotalDeliveries)
		assert.Zero(t, stats.AverageDeliverySeconds)
	})

	t.Run("rejects an empty waiter name", func(t *testing.T) {
		_, err := queries.NewGetWaiterStatsQuery("")
		assert.ErrorIs(t, err, queries.ErrWaiterNameIsRequired)
	})
}
