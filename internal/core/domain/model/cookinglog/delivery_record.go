package cookinglog

import (
	"errors"
	"fmt"
	"time"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/errs"
)

// ErrDeliveryRecordIsNotConstructed is returned when a DeliveryRecord
// instance was not created through the NewDeliveryRecord factory method.
var ErrDeliveryRecordIsNotConstructed = errors.New("DeliveryRecord must be created via NewDeliveryRecord constructor")

// DeliveryRecord is one completed delivery attributed to a waiter. Created
// exactly once per delivered item by the cooking log collector and never
// mutated afterward.
type DeliveryRecord struct {
	itemID          kernel.UUID
	itemName        string
	orderID         kernel.UUID
	deliverySeconds int64
	timestamp       time.Time
	department      kernel.Department

	isConstructed bool
}

// NewDeliveryRecord creates a record of one completed delivery.
//
// Parameters:
//   - itemID / orderID: identities of the delivered item and its order
//   - itemName: Dish name (must not be empty)
//   - deliverySeconds: Whole-second delivery duration (must not be negative)
//   - timestamp: Instant the delivery completed
//   - department: Station that prepared the item
func NewDeliveryRecord(
	itemID kernel.UUID,
	itemName string,
	orderID kernel.UUID,
	deliverySeconds int64,
	timestamp time.Time,
	department kernel.Department,
) (*DeliveryRecord, error) {
	record := &DeliveryRecord{
		timestamp:     timestamp,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setItemID(itemID),
		record.setItemName(itemName),
		record.setOrderID(orderID),
		record.setDeliverySeconds(deliverySeconds),
		record.setDepartment(department),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the DeliveryRecord instance was properly constructed.
func (r *DeliveryRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrDeliveryRecordIsNotConstructed
	}

	return nil
}

// ItemID returns the identifier of the delivered item.
func (r *DeliveryRecord) ItemID() kernel.UUID {
	return r.itemID
}

// ItemName returns the dish name of the delivered item.
func (r *DeliveryRecord) ItemName() string {
	return r.itemName
}

// OrderID returns the identifier of the order the item belonged to.
func (r *DeliveryRecord) OrderID() kernel.UUID {
	return r.orderID
}

// DeliverySeconds returns the whole-second delivery duration.
func (r *DeliveryRecord) DeliverySeconds() int64 {
	return r.deliverySeconds
}

// Timestamp returns the instant the delivery completed.
func (r *DeliveryRecord) Timestamp() time.Time {
	return r.timestamp
}

// Department returns the station that prepared the item.
func (r *DeliveryRecord) Department() kernel.Department {
	return r.department
}

// setItemID validates and sets the item identity.
// This is a private method used only during construction.
func (r *DeliveryRecord) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	r.itemID = itemID
	return nil
}

// setItemName validates and sets the dish name.
// This is a private method used only during construction.
func (r *DeliveryRecord) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	r.itemName = itemName
	return nil
}

// setOrderID validates and sets the order identity.
// This is a private method used only during construction.
func (r *DeliveryRecord) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

// setDeliverySeconds validates and sets the delivery duration.
// This is a private method used only during construction.
func (r *DeliveryRecord) setDeliverySeconds(deliverySeconds int64) error {
	if deliverySeconds < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliverySeconds is invalid",
			fmt.Errorf("%d seconds is negative", deliverySeconds),
		)
	}
	r.deliverySeconds = deliverySeconds
	return nil
}

// setDepartment validates and sets the department.
// This is a private method used only during construction.
func (r *DeliveryRecord) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}
	r.department = department
	return nil
}
