package queries

import (
	"context"

	"expeditor/internal/core/domain/model/staff"
	"expeditor/internal/core/ports"
)

// GetStaffQueryHandler lists the roster in its seeded order.
type GetStaffQueryHandler struct {
	staffRepo ports.StaffRepository
}

// NewGetStaffQueryHandler creates a handler for roster queries.
func NewGetStaffQueryHandler(staffRepo ports.StaffRepository) GetStaffQueryHandler {
	return GetStaffQueryHandler{staffRepo: staffRepo}
}

// Handle executes the roster query.
func (h GetStaffQueryHandler) Handle(ctx context.Context, query GetStaffQuery) ([]StaffResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roster, err := h.staffRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]StaffResponse, 0, len(roster))
	for _, worker := range roster {
		responses = append(responses, toStaffResponse(worker))
	}
	return responses, nil
}

func toStaffResponse(worker *staff.Worker) StaffResponse {
	schedule := worker.Schedule()
	slots := make([]DaySlotResponse, 0, len(schedule))
	for _, slot := range schedule {
		slots = append(slots, DaySlotResponse{
			Active:    slot.Active,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return StaffResponse{
		Name:       worker.Name(),
		Department: worker.Department(),
		Waiter:     worker.IsWaiter(),
		Available:  worker.Available(),
		Schedule:   slots,
	}
}
