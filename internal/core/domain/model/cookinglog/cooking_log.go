// Package cookinglog defines the immutable performance records derived from
// finished menu items.
//
// A CookingLog is created exactly once per item that reaches the finished
// state with a valid staff and time combination. After creation its duration,
// staff, and identity never change; the only permitted mutations attach
// waiter and delivery information as those become available. A
// DeliveryRecord is created exactly once per delivered item and attributed
// to the waiter who carried it.
//
// Both records are created solely by the cooking log collector service;
// everything else reads them.
package cookinglog

import (
	"errors"
	"fmt"
	"time"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/errs"
)

// Source tags where a log record originated, so analytics can restrict
// queries to real activity.
type Source int

const (
	// UnknownSource represents an invalid or undefined source.
	UnknownSource Source = iota

	// Seed marks records loaded from the built-in seed/demo data set.
	Seed

	// Live marks records produced by real item activity in this process.
	Live
)

// String returns the wire name of the source ("seed" or "live").
func (s Source) String() string {
	switch s {
	case Seed:
		return "seed"
	case Live:
		return "live"
	default:
		return "unknown"
	}
}

// Validate checks if the Source value is valid.
func (s Source) Validate() error {
	if s != Seed && s != Live {
		return errs.NewValueIsInvalidErrorWithCause(
			"source is invalid",
			fmt.Errorf("%d is not a valid log source", s),
		)
	}
	return nil
}

// ErrCookingLogIsNotConstructed is returned when a CookingLog instance was
// not created through the NewCookingLog factory method.
var ErrCookingLogIsNotConstructed = errors.New("CookingLog must be created via NewCookingLog constructor")

// CookingLog records one finished item: who prepared what, where, and how
// long it took. Duration, staff, and identity are immutable after creation;
// waiter and delivery fields are attached later, each at most once.
type CookingLog struct {
	// id is the identifier of the source menu item, one log per item
	id kernel.UUID

	// menuName is the dish name, the key for timing preset resolution
	menuName string

	// staffName is the cook who prepared the item
	staffName string

	// department is the station that prepared the item
	department kernel.Department

	// durationSeconds is the whole-second cooking duration
	durationSeconds int64

	// timestamp is when the item finished
	timestamp time.Time

	// source tags seed versus live records
	source Source

	// waiterName is attached once the item is handed to a waiter
	waiterName string

	// delivery timing, attached once the delivery completes
	deliveryStartedAt  time.Time
	deliveryFinishedAt time.Time
	deliverySeconds    int64

	// isConstructed ensures the log was created via NewCookingLog
	isConstructed bool
}

// NewCookingLog creates a log record for one finished item.
//
// Parameters:
//   - id: Identifier of the source menu item (must be a valid UUID)
//   - menuName: Dish name (must not be empty)
//   - staffName: Cook who prepared the item (must not be empty)
//   - department: Station that owns the item (must be valid)
//   - durationSeconds: Whole-second cooking duration (must not be negative)
//   - timestamp: Instant the item finished
//   - source: Seed or Live origin tag
func NewCookingLog(
	id kernel.UUID,
	menuName string,
	staffName string,
	department kernel.Department,
	durationSeconds int64,
	timestamp time.Time,
	source Source,
) (*CookingLog, error) {
	log := &CookingLog{
		timestamp:     timestamp,
		isConstructed: true,
	}

	if err := errors.Join(
		log.setID(id),
		log.setMenuName(menuName),
		log.setStaffName(staffName),
		log.setDepartment(department),
		log.setDurationSeconds(durationSeconds),
		log.setSource(source),
	); err != nil {
		return nil, err
	}

	return log, nil
}

// Validate ensures the CookingLog instance was properly constructed through
// NewCookingLog. Returns ErrCookingLogIsNotConstructed otherwise.
func (l *CookingLog) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrCookingLogIsNotConstructed
	}

	return nil
}

// ID returns the identifier of the source menu item.
func (l *CookingLog) ID() kernel.UUID {
	return l.id
}

// MenuName returns the dish name.
func (l *CookingLog) MenuName() string {
	return l.menuName
}

// StaffName returns the cook who prepared the item.
func (l *CookingLog) StaffName() string {
	return l.staffName
}

// Department returns the station that prepared the item.
func (l *CookingLog) Department() kernel.Department {
	return l.department
}

// DurationSeconds returns the whole-second cooking duration.
func (l *CookingLog) DurationSeconds() int64 {
	return l.durationSeconds
}

// Timestamp returns the instant the item finished.
func (l *CookingLog) Timestamp() time.Time {
	return l.timestamp
}

// Source returns the seed/live origin tag.
func (l *CookingLog) Source() Source {
	return l.source
}

// WaiterName returns the attached waiter. Empty until attached.
func (l *CookingLog) WaiterName() string {
	return l.waiterName
}

// DeliveryStartedAt returns the attached delivery start. Zero until attached.
func (l *CookingLog) DeliveryStartedAt() time.Time {
	return l.deliveryStartedAt
}

// DeliveryFinishedAt returns the attached delivery end. Zero until attached.
func (l *CookingLog) DeliveryFinishedAt() time.Time {
	return l.deliveryFinishedAt
}

// DeliverySeconds returns the attached whole-second delivery duration.
func (l *CookingLog) DeliverySeconds() int64 {
	return l.deliverySeconds
}

// AttachWaiter records the waiter carrying the logged item. The cooking
// fields are untouched; duration and staff are immutable by contract.
func (l *CookingLog) AttachWaiter(waiterName string) error {
	if waiterName == "" {
		return errs.NewValueIsRequiredError("waiterName")
	}

	l.waiterName = waiterName
	return nil
}

// AttachDelivery records the completed delivery timing on the log.
//
// Business rules:
//   - startedAt and finishedAt must be set and ordered
//   - deliverySeconds must not be negative
func (l *CookingLog) AttachDelivery(startedAt, finishedAt time.Time, deliverySeconds int64) error {
	if startedAt.IsZero() || finishedAt.IsZero() {
		return errs.NewValueIsRequiredError("delivery timing")
	}
	if finishedAt.Before(startedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery timing is invalid",
			fmt.Errorf("finished %s before started %s", finishedAt, startedAt),
		)
	}
	if deliverySeconds < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery timing is invalid",
			fmt.Errorf("%d seconds is negative", deliverySeconds),
		)
	}

	l.deliveryStartedAt = startedAt
	l.deliveryFinishedAt = finishedAt
	l.deliverySeconds = deliverySeconds
	return nil
}

// Clone returns a copy of the log record. The copy shares no state with the
// original and can be read without further synchronization.
func (l *CookingLog) Clone() *CookingLog {
	if l == nil {
		return nil
	}
	clone := *l
	return &clone
}

// setID validates and sets the log's identifier.
// This is a private method used only during construction.
func (l *CookingLog) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

// setMenuName validates and sets the dish name.
// This is a private method used only during construction.
func (l *CookingLog) setMenuName(menuName string) error {
	if menuName == "" {
		return errs.NewValueIsRequiredError("menuName")
	}
	l.menuName = menuName
	return nil
}

// setStaffName validates and sets the cook name.
// This is a private method used only during construction.
func (l *CookingLog) setStaffName(staffName string) error {
	if staffName == "" {
		return errs.NewValueIsRequiredError("staffName")
	}
	l.staffName = staffName
	return nil
}

// setDepartment validates and sets the department.
// This is a private method used only during construction.
func (l *CookingLog) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}
	l.department = department
	return nil
}

// setDurationSeconds validates and sets the cooking duration.
// This is a private method used only during construction.
func (l *CookingLog) setDurationSeconds(durationSeconds int64) error {
	if durationSeconds < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"duration is invalid",
			fmt.Errorf("%d seconds is negative", durationSeconds),
		)
	}
	l.durationSeconds = durationSeconds
	return nil
}

// setSource validates and sets the origin tag.
// This is a private method used only during construction.
func (l *CookingLog) setSource(source Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	l.source = source
	return nil
}
