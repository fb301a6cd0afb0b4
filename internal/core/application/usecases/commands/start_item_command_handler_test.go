package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expeditor/internal/adapters/out/memory"
	"expeditor/internal/core/application/usecases/commands"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/order"
)

func TestStartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memory.NewOrderStore()
	collector := &SpyCollector{}
	o := seedOrder(t, store, kernel.Kitchen, order.Normal)
	item := o.Items()[0]

	h := commands.NewStartItemCommandHandler(store, collector, testLogger(), fixedNow(base))
	cmd, err := commands.NewStartItemCommand(kernel.Kitchen, o.ID(), item.ID(), "Alice")
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.OnTheirWay, item.Status())
	assert.Equal(t, "Alice", item.AssignedStaff())
	assert.Equal(t, base, item.StartedAt())
	assert.Equal(t, int64(0), item.ElapsedSeconds())
	assert.Equal(t, 1, collector.calls)
}

func TestStartItemCommandHandler_Handle_StaleClickIsNoOp(t *testing.T) {
	ctx := t.Context()
	store := memory.NewOrderStore()
	collector := &SpyCollector{}
	o := seedOrder(t, store, kernel.Kitchen, order.Normal)
	item := o.Items()[0]
	require.NoError(t, item.Start("Alice", base))

	h := commands.NewStartItemCommandHandler(store, collector, testLogger(), fixedNow(base))

	t.Run("already started item", func(t *testing.T) {
		cmd, err := commands.NewStartItemCommand(kernel.Kitchen, o.ID(), item.ID(), "Bob")
		require.NoError(t, err)

		require.NoError(t, h.Handle(ctx, cmd))

		// The first cook keeps the item.
		assert.Equal(t, "Alice", item.AssignedStaff())
	})

	t.Run("unknown order id", func(t *testing.T) {
		cmd, err := commands.NewStartItemCommand(kernel.Kitchen, kernel.NewUUID(), item.ID(), "Bob")
		require.NoError(t, err)

		require.NoError(t, h.Handle(ctx, cmd))
	})

	t.Run("unknown item id", func(t *testing.T) {
		cmd, err := commands.NewStartItemCommand(kernel.Kitchen, o.ID(), kernel.NewUUID(), "Bob")
		require.NoError(t, err)

		require.NoError(t, h.Handle(ctx, cmd))
	})
}

func TestStartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewStartItemCommandHandler(memory.NewOrderStore(), &SpyCollector{}, testLogger(), fixedNow(base))

	err := h.Handle(ctx, commands.StartItemCommand{}) // not constructed properly
	require.Error(t, err)
}

func TestNewStartItemCommand_Invalid(t *testing.T) {
	_, err := commands.NewStartItemCommand(kernel.UnknownDepartment, kernel.NewUUID(), kernel.NewUUID(), "Alice")
	assert.Error(t, err)

	_, err = commands.NewStartItemCommand(kernel.Kitchen, kernel.NewUUID(), kernel.NewUUID(), "")
	assert.ErrorIs(t, err, commands.ErrStaffNameIsRequired)

	_, err = commands.NewStartItemCommand(kernel.Kitchen, kernel.UUID{}, kernel.NewUUID(), "Alice")
	assert.Error(t, err)
}
