package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expeditor/internal/adapters/out/memory"
	"expeditor/internal/core/application/usecases/commands"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/staff"
)

func seedRoster(t *testing.T, store *memory.StaffStore) {
	t.Helper()
	alice, err := staff.NewWorker("Alice", kernel.Kitchen, false)
	require.NoError(t, err)
	bob, err := staff.NewWorker("Bob", kernel.Bar, true)
	require.NoError(t, err)
	require.NoError(t, store.Replace(t.Context(), []*staff.Worker{alice, bob}))
}

func TestSetStaffAvailabilityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	staffStore := memory.NewStaffStore()
	snapshot := memory.NewSnapshotStore()
	seedRoster(t, staffStore)

	h := commands.NewSetStaffAvailabilityCommandHandler(staffStore, snapshot, testLogger())
	cmd, err := commands.NewSetStaffAvailabilityCommand("Alice", false)
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	alice, err := staffStore.Get(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, alice.Available())

	// The roster write-through persisted the change.
	persisted, err := snapshot.LoadRoster(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 2)
	assert.False(t, persisted[0].Available())
}

func TestSetStaffAvailabilityCommandHandler_Handle_UnknownWorkerIsNoOp(t *testing.T) {
	ctx := t.Context()
	staffStore := memory.NewStaffStore()
	snapshot := memory.NewSnapshotStore()
	seedRoster(t, staffStore)

	h := commands.NewSetStaffAvailabilityCommandHandler(staffStore, snapshot, testLogger())
	cmd, err := commands.NewSetStaffAvailabilityCommand("Nobody", false)
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	// Nothing was persisted.
	_, err = snapshot.LoadRoster(ctx)
	assert.Error(t, err)
}

func TestUpdateStaffScheduleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	staffStore := memory.NewStaffStore()
	snapshot := memory.NewSnapshotStore()
	seedRoster(t, staffStore)

	schedule := staff.DefaultSchedule()
	schedule[2] = staff.DaySlot{Active: true, StartTime: "10:00", EndTime: "18:00"}

	h := commands.NewUpdateStaffScheduleCommandHandler(staffStore, snapshot, testLogger())
	cmd, err := commands.NewUpdateStaffScheduleCommand("Bob", schedule)
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	bob, err := staffStore.Get(ctx, "Bob")
	require.NoError(t, err)
	assert.Equal(t, schedule, bob.Schedule())

	persisted, err := snapshot.LoadRoster(ctx)
	require.NoError(t, err)
	assert.Equal(t, schedule, persisted[1].Schedule())
}

func TestNewUpdateStaffScheduleCommand_InvalidSchedule(t *testing.T) {
	schedule := staff.DefaultSchedule()
	schedule[0] = staff.DaySlot{Active: true, StartTime: "25:99", EndTime: "26:00"}

	_, err := commands.NewUpdateStaffScheduleCommand("Bob", schedule)
	assert.Error(t, err)
}
