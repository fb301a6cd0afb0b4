package commands

import (
	"context"
	"log/slog"

	"expeditor/internal/core/ports"
)

// SetStaffAvailabilityCommandHandler handles the business logic for
// availability changes. The roster is written through to the snapshot store
// on every mutation; a snapshot failure is logged, not propagated, since the
// in-memory roster stays authoritative for the running process.
type SetStaffAvailabilityCommandHandler struct {
	staffRepo ports.StaffRepository
	snapshot  ports.SnapshotRepository
	logger    *slog.Logger
}

// NewSetStaffAvailabilityCommandHandler creates a handler for availability
// changes.
func NewSetStaffAvailabilityCommandHandler(
	staffRepo ports.StaffRepository,
	snapshot ports.SnapshotRepository,
	logger *slog.Logger,
) SetStaffAvailabilityCommandHandler {
	return SetStaffAvailabilityCommandHandler{
		staffRepo: staffRepo,
		snapshot:  snapshot,
		logger:    logger.With("component", "SetStaffAvailabilityCommandHandler"),
	}
}

// Handle processes the availability command. An unknown worker name is a
// silent no-op.
func (h SetStaffAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetStaffAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	worker, err := h.staffRepo.Get(ctx, cmd.WorkerName())
	if err := suppressStale(h.logger, "setStaffAvailability", err); err != nil {
		return err
	}
	if worker == nil {
		return nil
	}

	worker.SetAvailable(cmd.Available())
	h.persistRoster(ctx)
	return nil
}

func (h SetStaffAvailabilityCommandHandler) persistRoster(ctx context.Context) {
	roster, err := h.staffRepo.GetAll(ctx)
	if err != nil {
		h.logger.Error("cannot read roster for snapshot", "error", err)
		return
	}
	if err := h.snapshot.SaveRoster(ctx, roster); err != nil {
		h.logger.Error("cannot persist roster snapshot", "error", err)
	}
}
