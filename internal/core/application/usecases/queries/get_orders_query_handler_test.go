package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expeditor/internal/adapters/out/memory"
	"expeditor/internal/core/application/usecases/queries"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/order"
)

func TestGetOrdersQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("prioritized orders come first, FIFO within each class", func(t *testing.T) {
		store := memory.NewOrderStore()
		seedOrder(t, store, "A", kernel.Kitchen, order.Normal)
		seedOrder(t, store, "B", kernel.Kitchen, order.Prioritized)
		seedOrder(t, store, "C", kernel.Kitchen, order.Normal)
		seedOrder(t, store, "D", kernel.Kitchen, order.Prioritized)

		query, err := queries.NewGetOrdersQuery(kernel.Kitchen)
		require.NoError(t, err)
		handler := queries.NewGetOrdersQueryHandler(store)

		responses, err := handler.Handle(ctx, query)
		require.NoError(t, err)

		displayIDs := make([]string, 0, len(responses))
		for _, response := range responses {
			displayIDs = append(displayIDs, response.DisplayID)
		}
		assert.Equal(t, []string{"B", "D", "A", "C"}, displayIDs)
	})

	t.Run("maps the full ticket state", func(t *testing.T) {
		store := memory.NewOrderStore()
		o := seedOrder(t, store, "A-17", kernel.Bar, order.Normal)
		itemID := o.Items()[0].ID()
		require.NoError(t, o.StartItem(itemID, "Alice", base))
		require.NoError(t, o.FinishItem(itemID, base.Add(42*time.Second)))

		query, err := queries.NewGetOrdersQuery(kernel.Bar)
		require.NoError(t, err)
		handler := queries.NewGetOrdersQueryHandler(store)

		responses, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		require.Len(t, responses, 1)

		response := responses[0]
		assert.Equal(t, o.ID(), response.ID)
		assert.Equal(t, "A-17", response.DisplayID)
		assert.Equal(t, "NORMAL", response.Priority)
		assert.False(t, response.Completed)

		require.Len(t, response.Items, 1)
		item := response.Items[0]
		assert.Equal(t, "Margherita", item.Name)
		assert.Equal(t, "finished", item.Status)
		assert.Equal(t, "Alice", item.AssignedStaff)
		assert.Equal(t, int64(42), item.ElapsedSeconds)
	})

	t.Run("department without orders yields an empty board", func(t *testing.T) {
		store := memory.NewOrderStore()
		seedOrder(t, store, "A-1", kernel.Kitchen, order.Normal)

		query, err := queries.NewGetOrdersQuery(kernel.Snack)
		require.NoError(t, err)
		handler := queries.NewGetOrdersQueryHandler(store)

		responses, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, responses)
	})

	t.Run("rejects a query built without the constructor", func(t *testing.T) {
		handler := queries.NewGetOrdersQueryHandler(memory.NewOrderStore())

		_, err := handler.Handle(ctx, queries.GetOrdersQuery{})
		assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
	})
}

func TestGetAllOrdersQueryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("groups boards by department wire name", func(t *testing.T) {
		store := memory.NewOrderStore()
		seedOrder(t, store, "K-1", kernel.Kitchen, order.Normal)
		seedOrder(t, store, "B-1", kernel.Bar, order.Normal)
		seedOrder(t, store, "B-2", kernel.Bar, order.Prioritized)

		handler := queries.NewGetAllOrdersQueryHandler(store)

		boards, err := handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		require.NoError(t, err)
		require.Len(t, boards, 3)

		assert.Len(t, boards["kitchen"], 1)
		assert.Empty(t, boards["snack"])

		require.Len(t, boards["bar"], 2)
		assert.Equal(t, "B-2", boards["bar"][0].DisplayID)
		assert.Equal(t, "B-1", boards["bar"][1].DisplayID)
	})
}
