package http

import (
	"time"

	"expeditor/internal/core/application/usecases/queries"
	"expeditor/internal/core/domain/model/staff"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItemRequest is one line of a new ticket.
type NewOrderItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// CreateOrderRequest is the body of the ticket intake endpoint.
type CreateOrderRequest struct {
	DisplayID string                `json:"displayId"`
	Priority  string                `json:"priority"`
	Items     []NewOrderItemRequest `json:"items"`
}

// StartItemRequest names the cook taking an item.
type StartItemRequest struct {
	StaffName string `json:"staffName"`
}

// AssignWaiterRequest names the waiter taking an order or item.
type AssignWaiterRequest struct {
	WaiterName string `json:"waiterName"`
}

// SetAvailabilityRequest toggles a roster member.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// DaySlotDTO is one day of a weekly schedule, Monday first.
type DaySlotDTO struct {
	Active    bool   `json:"active"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// UpdateScheduleRequest replaces a worker's weekly schedule. Exactly seven
// slots are required.
type UpdateScheduleRequest struct {
	Schedule []DaySlotDTO `json:"schedule"`
}

// OrderDTO is one ticket as rendered on a department board.
type OrderDTO struct {
	ID                   string         `json:"id"`
	DisplayID            string         `json:"displayId"`
	Department           string         `json:"department"`
	Priority             string         `json:"priority"`
	Completed            bool           `json:"completed"`
	FrozenElapsedSeconds int64          `json:"frozenElapsedSeconds"`
	AssignedWaiter       string         `json:"assignedWaiter,omitempty"`
	Delivered            bool           `json:"delivered"`
	DeliveredAt          *time.Time     `json:"deliveredAt,omitempty"`
	Items                []OrderItemDTO `json:"items"`
}

// OrderItemDTO is one line of a rendered ticket.
type OrderItemDTO struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Quantity               int        `json:"quantity"`
	Notes                  string     `json:"notes,omitempty"`
	Status                 string     `json:"status"`
	AssignedStaff          string     `json:"assignedStaff,omitempty"`
	StartedAt              *time.Time `json:"startedAt,omitempty"`
	FinishedAt             *time.Time `json:"finishedAt,omitempty"`
	ElapsedSeconds         int64      `json:"elapsedSeconds"`
	AssignedWaiter         string     `json:"assignedWaiter,omitempty"`
	DeliveryStartedAt      *time.Time `json:"deliveryStartedAt,omitempty"`
	DeliveryFinishedAt     *time.Time `json:"deliveryFinishedAt,omitempty"`
	DeliveryElapsedSeconds int64      `json:"deliveryElapsedSeconds"`
	Delivered              bool       `json:"delivered"`
}

// ProcessedLogDTO is one classified cooking log.
type ProcessedLogDTO struct {
	ID              string    `json:"id"`
	MenuName        string    `json:"menuName"`
	StaffName       string    `json:"staffName"`
	Department      string    `json:"department"`
	DurationSeconds int64     `json:"durationSeconds"`
	Timestamp       time.Time `json:"timestamp"`
	Source          string    `json:"source"`
	WaiterName      string    `json:"waiterName,omitempty"`
	DeliverySeconds int64     `json:"deliverySeconds,omitempty"`
	Level           string    `json:"level"`
	Ratio           float64   `json:"ratio"`
}

// WaiterStatsDTO is the delivery summary of one waiter.
type WaiterStatsDTO struct {
	WaiterName             string  `json:"waiterName"`
	TotalDeliveries        int     `json:"totalDeliveries"`
	AverageDeliverySeconds float64 `json:"averageDeliverySeconds"`
}

// StaffDTO is one roster member.
type StaffDTO struct {
	Name       string       `json:"name"`
	Department string       `json:"department"`
	Waiter     bool         `json:"waiter"`
	Available  bool         `json:"available"`
	Schedule   []DaySlotDTO `json:"schedule"`
}

func toOrderDTO(response queries.OrderResponse) OrderDTO {
	items := make([]OrderItemDTO, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItemDTO{
			ID:                     item.ID.String(),
			Name:                   item.Name,
			Quantity:               item.Quantity,
			Notes:                  item.Notes,
			Status:                 item.Status,
			AssignedStaff:          item.AssignedStaff,
			StartedAt:              optionalTime(item.StartedAt),
			FinishedAt:             optionalTime(item.FinishedAt),
			ElapsedSeconds:         item.ElapsedSeconds,
			AssignedWaiter:         item.AssignedWaiter,
			DeliveryStartedAt:      optionalTime(item.DeliveryStartedAt),
			DeliveryFinishedAt:     optionalTime(item.DeliveryFinishedAt),
			DeliveryElapsedSeconds: item.DeliveryElapsedSeconds,
			Delivered:              item.Delivered,
		})
	}

	return OrderDTO{
		ID:                   response.ID.String(),
		DisplayID:            response.DisplayID,
		Department:           response.Department.String(),
		Priority:             response.Priority,
		Completed:            response.Completed,
		FrozenElapsedSeconds: response.FrozenElapsedSeconds,
		AssignedWaiter:       response.AssignedWaiter,
		Delivered:            response.Delivered,
		DeliveredAt:          optionalTime(response.DeliveredAt),
		Items:                items,
	}
}

func toOrderDTOs(responses []queries.OrderResponse) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(responses))
	for _, response := range responses {
		dtos = append(dtos, toOrderDTO(response))
	}
	return dtos
}

func toProcessedLogDTO(response queries.ProcessedLogResponse) ProcessedLogDTO {
	return ProcessedLogDTO{
		ID:              response.ID.String(),
		MenuName:        response.MenuName,
		StaffName:       response.StaffName,
		Department:      response.Department.String(),
		DurationSeconds: response.DurationSeconds,
		Timestamp:       response.Timestamp,
		Source:          response.Source,
		WaiterName:      response.WaiterName,
		DeliverySeconds: response.DeliverySeconds,
		Level:           response.Level,
		Ratio:           response.Ratio,
	}
}

func toStaffDTO(response queries.StaffResponse) StaffDTO {
	schedule := make([]DaySlotDTO, 0, len(response.Schedule))
	for _, slot := range response.Schedule {
		schedule = append(schedule, DaySlotDTO{
			Active:    slot.Active,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return StaffDTO{
		Name:       response.Name,
		Department: response.Department.String(),
		Waiter:     response.Waiter,
		Available:  response.Available,
		Schedule:   schedule,
	}
}

func toSchedule(slots []DaySlotDTO) (staff.Schedule, bool) {
	var schedule staff.Schedule
	if len(slots) != staff.DaysPerWeek {
		return schedule, false
	}
	for day, slot := range slots {
		schedule[day] = staff.DaySlot{
			Active:    slot.Active,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}
	return schedule, true
}

// optionalTime hides zero timestamps from the JSON payload.
func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
