package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expeditor/internal/adapters/out/memory"
	"expeditor/internal/core/application/usecases/queries"
	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/services"
)

func newProcessedLogsHandler(store *memory.CookingLogStore) queries.GetProcessedLogsQueryHandler {
	return queries.NewGetProcessedLogsQueryHandler(
		store, defaultCatalog(), services.NewEfficiencyClassifier(),
	)
}

func processedLogsQuery(t *testing.T, filters queries.LogFilters) queries.GetProcessedLogsQuery {
	t.Helper()
	query, err := queries.NewGetProcessedLogsQuery(filters, queries.SortByTimestamp, false)
	require.NoError(t, err)
	return query
}

func TestGetProcessedLogsQueryHandler_Classification(t *testing.T) {
	ctx := context.Background()

	t.Run("derives level and ratio against the standard preset", func(t *testing.T) {
		store := memory.NewCookingLogStore()
		seedLog(t, store, "Margherita", "Alice", kernel.Kitchen, 50, base, cookinglog.Live)

		handler := newProcessedLogsHandler(store)
		responses, err := handler.Handle(ctx, processedLogsQuery(t, queries.LogFilters{}))
		require.NoError(t, err)
		require.Len(t, responses, 1)

		assert.Equal(t, "standard", responses[0].Level)
		assert.InDelta(t, 0.8333, responses[0].Ratio, 0.0001)
	})

	t.Run("tier bounds are inclusive and extremely-slow is the fallback", func(t *testing.T) {
		store := memory.NewCookingLogStore()
		cases := map[int64]string{
			30:  "very-fast",
			31:  "fast",
			48:  "fast",
			60:  "standard",
			72:  "slow",
			73:  "extremely-slow",
			500: "extremely-slow",
		}
		at := base
		byDuration := make(map[int64]string)
		for duration := range cases {
			at = at.Add(time.Second)
			seedLog(t, store, "Margherita", "Alice", kernel.Kitchen, duration, at, cookinglog.Live)
		}

		handler := newProcessedLogsHandler(store)
		responses, err := handler.Handle(ctx, processedLogsQuery(t, queries.LogFilters{}))
		require.NoError(t, err)

		for _, response := range responses {
			byDuration[response.DurationSeconds] = response.Level
		}
		for duration, level := range cases {
			assert.Equal(t, level, byDuration[duration], "duration %d", duration)
		}
	})

	t.Run("zero duration yields ratio 0", func(t *testing.T) {
		store := memory.NewCookingLogStore()
		seedLog(t, store, "Margherita", "Alice", kernel.Kitchen, 0, base, cookinglog.Live)

		handler := newProcessedLogsHandler(store)
		responses, err := handler.Handle(ctx, processedLogsQuery(t, queries.LogFilters{}))
		require.NoError(t, err)
		require.Len(t, responses, 1)

		assert.Equal(t, "very-fast", responses[0].Level)
		assert.Zero(t, responses[0].Ratio)
	})
}

func TestGetProcessedLogsQueryHandler_Filters(t *testing.T) {
	ctx := context.Background()

	seedMixed := func(t *testing.T) *memory.CookingLogStore {
		t.Helper()
		store := memory.NewCookingLogStore()
		seedLog(t, store, "Margherita", "Alice", kernel.Kitchen, 25, base, cookinglog.Live)
		seedLog(t, store, "Negroni", "Bob", kernel.Bar, 50, base.Add(time.Minute), cookinglog.Live)
		seedLog(t, store, "Margherita", "Bob", kernel.Kitchen, 200, base.Add(2*time.Minute), cookinglog.Seed)
		return store
	}

	t.Run("by employee", func(t *testing.T) {
		handler := newProcessedLogsHandler(seedMixed(t))

		responses, err := handler.Handle(ctx, processedLogsQuery(t, queries.LogFilters{Employee: "Alice"}))
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "Alice", responses[0].StaffName)
	})

	t.Run("by menu item", func(t *testing.T) {
		handler := newProcessedLogsHandler(seedMixed(t))

		responses, err := handler.Handle(ctx, processedLogsQuery(t, queries.LogFilters{MenuItem: "Negroni"}))
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "Negroni", responses[0].MenuName)
	})

	t.Run("by derived level", func(t *testing.T) {
		handler := newProcessedLogsHandler(seedMixed(t))

		responses, err := handler.Handle(ctx, processedLogsQuery(t, queries.LogFilters{Level: "extremely-slow"}))
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, int64(200), responses[0].DurationSeconds)
	})

	t.Run("timestamp range is inclusive on both ends", func(t *testing.T) {
		handler := newProcessedLogsHandler(seedMixed(t))

		responses, err := handler.Handle(ctx, processedLogsQuery(t, queries.LogFilters{
			From: base.Add(time.Minute),
			To:   base.Add(2 * time.Minute),
		}))
		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.Equal(t, "Negroni", responses[0].MenuName)
		assert.Equal(t, "Margherita", responses[1].MenuName)
	})

	t.Run("live-only drops seeded records", func(t *testing.T) {
		handler := newProcessedLogsHandler(seedMixed(t))

		responses, err := handler.Handle(ctx, processedLogsQuery(t, queries.LogFilters{LiveOnly: true}))
		require.NoError(t, err)
		require.Len(t, responses, 2)
		for _, response := range responses {
			assert.Equal(t, "live", response.Source)
		}
	})
}

func TestGetProcessedLogsQueryHandler_Sorting(t *testing.T) {
	ctx := context.Background()

	seedSortable := func(t *testing.T) *memory.CookingLogStore {
		t.Helper()
		store := memory.NewCookingLogStore()
		seedLog(t, store, "Negroni", "Bob", kernel.Bar, 50, base.Add(time.Minute), cookinglog.Live)
		seedLog(t, store, "Margherita", "Alice", kernel.Kitchen, 25, base, cookinglog.Live)
		seedLog(t, store, "Tiramisu", "Carol", kernel.Snack, 200, base.Add(2*time.Minute), cookinglog.Live)
		return store
	}

	sorted := func(t *testing.T, sortBy queries.SortField, descending bool) []queries.ProcessedLogResponse {
		t.Helper()
		handler := newProcessedLogsHandler(seedSortable(t))
		query, err := queries.NewGetProcessedLogsQuery(queries.LogFilters{}, sortBy, descending)
		require.NoError(t, err)
		responses, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		require.Len(t, responses, 3)
		return responses
	}

	menuNames := func(responses []queries.ProcessedLogResponse) []string {
		names := make([]string, 0, len(responses))
		for _, response := range responses {
			names = append(names, response.MenuName)
		}
		return names
	}

	t.Run("by timestamp", func(t *testing.T) {
		assert.Equal(t, []string{"Margherita", "Negroni", "Tiramisu"},
			menuNames(sorted(t, queries.SortByTimestamp, false)))
		assert.Equal(t, []string{"Tiramisu", "Negroni", "Margherita"},
			menuNames(sorted(t, queries.SortByTimestamp, true)))
	})

	t.Run("by duration", func(t *testing.T) {
		assert.Equal(t, []string{"Margherita", "Negroni", "Tiramisu"},
			menuNames(sorted(t, queries.SortByDuration, false)))
		assert.Equal(t, []string{"Tiramisu", "Negroni", "Margherita"},
			menuNames(sorted(t, queries.SortByDuration, true)))
	})

	t.Run("by efficiency rank, fastest tier first", func(t *testing.T) {
		responses := sorted(t, queries.SortByLevel, false)
		assert.Equal(t, []string{"Margherita", "Negroni", "Tiramisu"}, menuNames(responses))
		assert.Equal(t, "very-fast", responses[0].Level)
		assert.Equal(t, "extremely-slow", responses[2].Level)
	})

	t.Run("by menu name", func(t *testing.T) {
		assert.Equal(t, []string{"Margherita", "Negroni", "Tiramisu"},
			menuNames(sorted(t, queries.SortByMenuName, false)))
		assert.Equal(t, []string{"Tiramisu", "Negroni", "Margherita"},
			menuNames(sorted(t, queries.SortByMenuName, true)))
	})

	t.Run("defaulted sort field falls back to timestamp", func(t *testing.T) {
		handler := newProcessedLogsHandler(seedSortable(t))
		query, err := queries.NewGetProcessedLogsQuery(queries.LogFilters{}, "", false)
		require.NoError(t, err)

		responses, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, []string{"Margherita", "Negroni", "Tiramisu"}, menuNames(responses))
	})

	t.Run("unknown sort field is rejected by the constructor", func(t *testing.T) {
		_, err := queries.NewGetProcessedLogsQuery(queries.LogFilters{}, "color", false)
		assert.Error(t, err)
	})
}
