package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expeditor/internal/adapters/out/memory"
	"expeditor/internal/core/application/usecases/commands"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/order"
)

func TestMarkItemDeliveredCommandHandler_Handle_FreezesDeliveryClock(t *testing.T) {
	ctx := t.Context()
	store := memory.NewOrderStore()
	collector := &SpyCollector{}
	o := seedOrder(t, store, kernel.Snack, order.Normal)
	item := o.Items()[0]
	require.NoError(t, item.Start("Carol", base))
	require.NoError(t, item.Finish(base.Add(time.Minute)))
	require.NoError(t, item.AssignWaiter("Bob", base.Add(2*time.Minute)))

	h := commands.NewMarkItemDeliveredCommandHandler(store, collector, testLogger(), fixedNow(base.Add(2*time.Minute+30*time.Second)))
	cmd, err := commands.NewMarkItemDeliveredCommand(kernel.Snack, o.ID(), item.ID())
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, item.Delivered())
	assert.Equal(t, int64(30), item.DeliveryElapsedSeconds())
	assert.Equal(t, 1, collector.calls)
}

func TestMarkItemDeliveredCommandHandler_Handle_WithoutWaiterIsNoOp(t *testing.T) {
	ctx := t.Context()
	store := memory.NewOrderStore()
	o := seedOrder(t, store, kernel.Snack, order.Normal)
	item := o.Items()[0]

	h := commands.NewMarkItemDeliveredCommandHandler(store, &SpyCollector{}, testLogger(), fixedNow(base))
	cmd, err := commands.NewMarkItemDeliveredCommand(kernel.Snack, o.ID(), item.ID())
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.False(t, item.Delivered())
}
