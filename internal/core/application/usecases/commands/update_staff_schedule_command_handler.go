package commands

import (
	"context"
	"log/slog"

	"expeditor/internal/core/ports"
)

// UpdateStaffScheduleCommandHandler handles the business logic for schedule
// changes, writing the roster through to the snapshot store.
type UpdateStaffScheduleCommandHandler struct {
	staffRepo ports.StaffRepository
	snapshot  ports.SnapshotRepository
	logger    *slog.Logger
}

// NewUpdateStaffScheduleCommandHandler creates a handler for schedule
// changes.
func NewUpdateStaffScheduleCommandHandler(
	staffRepo ports.StaffRepository,
	snapshot ports.SnapshotRepository,
	logger *slog.Logger,
) UpdateStaffScheduleCommandHandler {
	return UpdateStaffScheduleCommandHandler{
		staffRepo: staffRepo,
		snapshot:  snapshot,
		logger:    logger.With("component", "UpdateStaffScheduleCommandHandler"),
	}
}

// Handle processes the schedule command. An unknown worker name is a silent
// no-op.
func (h UpdateStaffScheduleCommandHandler) Handle(ctx context.Context, cmd UpdateStaffScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	worker, err := h.staffRepo.Get(ctx, cmd.WorkerName())
	if err := suppressStale(h.logger, "updateStaffSchedule", err); err != nil {
		return err
	}
	if worker == nil {
		return nil
	}

	if err := worker.SetSchedule(cmd.Schedule()); err != nil {
		return err
	}

	roster, err := h.staffRepo.GetAll(ctx)
	if err != nil {
		h.logger.Error("cannot read roster for snapshot", "error", err)
		return nil
	}
	if err := h.snapshot.SaveRoster(ctx, roster); err != nil {
		h.logger.Error("cannot persist roster snapshot", "error", err)
	}
	return nil
}
