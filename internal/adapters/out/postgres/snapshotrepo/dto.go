// Package snapshotrepo persists the restart-surviving state as JSON values
// in a single key-value table: the staff roster and the per-waiter delivery
// archive. The live working set (orders, cooking logs) is deliberately not
// stored here; it belongs to the process lifetime.
package snapshotrepo

import (
	"time"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/domain/model/staff"
)

// Snapshot keys, one per persisted value.
const (
	rosterKey          = "staff_roster"
	deliveryRecordsKey = "delivery_records"
)

// SnapshotDTO represents one persisted snapshot value.
type SnapshotDTO struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for snapshot values.
func (SnapshotDTO) TableName() string {
	return "snapshots"
}

// workerDTO is the JSON shape of one roster entry.
type workerDTO struct {
	Name       string       `json:"name"`
	Department string       `json:"department"`
	Waiter     bool         `json:"waiter"`
	Available  bool         `json:"available"`
	Schedule   []daySlotDTO `json:"schedule"`
}

// daySlotDTO is the JSON shape of one schedule day.
type daySlotDTO struct {
	Active    bool   `json:"active"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// deliveryRecordDTO is the JSON shape of one archived delivery.
type deliveryRecordDTO struct {
	ItemID          string    `json:"itemId"`
	ItemName        string    `json:"itemName"`
	OrderID         string    `json:"orderId"`
	DeliverySeconds int64     `json:"deliverySeconds"`
	Timestamp       time.Time `json:"timestamp"`
	Department      string    `json:"department"`
}

// workerFromDomain converts a roster entry to its JSON representation.
func workerFromDomain(worker *staff.Worker) workerDTO {
	schedule := make([]daySlotDTO, 0, staff.DaysPerWeek)
	for _, slot := range worker.Schedule() {
		schedule = append(schedule, daySlotDTO{
			Active:    slot.Active,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return workerDTO{
		Name:       worker.Name(),
		Department: worker.Department().String(),
		Waiter:     worker.IsWaiter(),
		Available:  worker.Available(),
		Schedule:   schedule,
	}
}

// workerToDomain reconstructs a roster entry from its JSON representation.
func workerToDomain(dto workerDTO) (*staff.Worker, error) {
	department, err := kernel.DepartmentFromString(dto.Department)
	if err != nil {
		return nil, err
	}

	var schedule staff.Schedule
	for day := 0; day < staff.DaysPerWeek && day < len(dto.Schedule); day++ {
		schedule[day] = staff.DaySlot{
			Active:    dto.Schedule[day].Active,
			StartTime: dto.Schedule[day].StartTime,
			EndTime:   dto.Schedule[day].EndTime,
		}
	}

	return staff.RestoreWorker(dto.Name, department, dto.Waiter, dto.Available, schedule)
}

// recordFromDomain converts an archived delivery to its JSON representation.
func recordFromDomain(record *cookinglog.DeliveryRecord) deliveryRecordDTO {
	return deliveryRecordDTO{
		ItemID:          record.ItemID().String(),
		ItemName:        record.ItemName(),
		OrderID:         record.OrderID().String(),
		DeliverySeconds: record.DeliverySeconds(),
		Timestamp:       record.Timestamp(),
		Department:      record.Department().String(),
	}
}

// recordToDomain reconstructs an archived delivery from its JSON representation.
func recordToDomain(dto deliveryRecordDTO) (*cookinglog.DeliveryRecord, error) {
	itemID, err := kernel.UUIDFromString(dto.ItemID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	department, err := kernel.DepartmentFromString(dto.Department)
	if err != nil {
		return nil, err
	}

	return cookinglog.NewDeliveryRecord(
		itemID, dto.ItemName, orderID, dto.DeliverySeconds, dto.Timestamp, department,
	)
}
