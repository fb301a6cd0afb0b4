package order

import (
	"errors"
	"fmt"
	"time"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem factory method.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is one line of an order: a dish or drink with a quantity, moving
// through the cooking lifecycle and, once finished, through an independent
// delivery sub-lifecycle.
//
// MenuItem follows these invariants:
//   - Status transitions only forward: not-started -> on-their-way -> finished
//   - assignedStaff is set exactly once, when the item is started
//   - startedAt <= finishedAt when both are set
//   - elapsedSeconds is derived while on-their-way and frozen at finish
//   - deliveryStartedAt <= deliveryFinishedAt when both are set
//   - the delivery clock freezes when the item is marked delivered
//
// MenuItem uses private fields to ensure encapsulation; all mutation goes
// through validated methods invoked by the owning Order aggregate.
type MenuItem struct {
	// id is the unique identifier of the item within its order
	id kernel.UUID

	// name is the menu name of the dish, also the key for timing presets
	name string

	// quantity is the number of units ordered (must be positive)
	quantity int

	// notes carries free-form preparation remarks
	notes string

	// status is the current cooking lifecycle state
	status ItemStatus

	// assignedStaff is the cook who started the item (empty until started)
	assignedStaff string

	// startedAt / finishedAt bound the cooking interval (zero until set)
	startedAt  time.Time
	finishedAt time.Time

	// elapsedSeconds is the derived cooking timer, frozen once finished
	elapsedSeconds int64

	// delivery sub-lifecycle, meaningful only after the item is finished
	assignedWaiter         string
	deliveryStartedAt      time.Time
	deliveryFinishedAt     time.Time
	deliveryElapsedSeconds int64
	delivered              bool

	// isConstructed ensures the item was created via NewMenuItem
	isConstructed bool
}

// NewMenuItem creates a new MenuItem in the NotStarted state.
//
// Parameters:
//   - id: Unique identifier for the item (must be a valid UUID)
//   - name: Menu name of the dish (must not be empty)
//   - quantity: Number of units ordered (must be positive)
//   - notes: Optional free-form preparation remarks
//
// Returns the created item, or a validation error if any parameter is invalid.
func NewMenuItem(id kernel.UUID, name string, quantity int, notes string) (*MenuItem, error) {
	item := &MenuItem{
		status:        NotStarted,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the MenuItem instance was properly constructed through
// NewMenuItem. Returns ErrMenuItemIsNotConstructed otherwise.
func (i *MenuItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrMenuItemIsNotConstructed
	}

	return nil
}

// ID returns the item's unique identifier.
func (i *MenuItem) ID() kernel.UUID {
	return i.id
}

// Name returns the menu name of the dish.
func (i *MenuItem) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i *MenuItem) Quantity() int {
	return i.quantity
}

// Notes returns the free-form preparation remarks.
func (i *MenuItem) Notes() string {
	return i.notes
}

// Status returns the current cooking lifecycle state.
func (i *MenuItem) Status() ItemStatus {
	return i.status
}

// AssignedStaff returns the cook who started the item.
// Empty until the item is started.
func (i *MenuItem) AssignedStaff() string {
	return i.assignedStaff
}

// StartedAt returns the instant preparation began. Zero until started.
func (i *MenuItem) StartedAt() time.Time {
	return i.startedAt
}

// FinishedAt returns the instant preparation completed. Zero until finished.
func (i *MenuItem) FinishedAt() time.Time {
	return i.finishedAt
}

// ElapsedSeconds returns the derived cooking timer value. It is refreshed by
// RefreshTimers while the item is on-their-way and frozen once finished.
func (i *MenuItem) ElapsedSeconds() int64 {
	return i.elapsedSeconds
}

// AssignedWaiter returns the waiter carrying the item. Empty until assigned.
func (i *MenuItem) AssignedWaiter() string {
	return i.assignedWaiter
}

// DeliveryStartedAt returns the instant the waiter picked up the item.
// Zero until a waiter is assigned.
func (i *MenuItem) DeliveryStartedAt() time.Time {
	return i.deliveryStartedAt
}

// DeliveryFinishedAt returns the instant the delivery completed.
// Zero until the item is marked delivered.
func (i *MenuItem) DeliveryFinishedAt() time.Time {
	return i.deliveryFinishedAt
}

// DeliveryElapsedSeconds returns the derived delivery timer value, frozen
// once the item is delivered.
func (i *MenuItem) DeliveryElapsedSeconds() int64 {
	return i.deliveryElapsedSeconds
}

// Delivered reports whether the item reached the customer.
func (i *MenuItem) Delivered() bool {
	return i.delivered
}

// Start begins preparation of the item.
//
// Business rules:
//   - The item must be in NotStarted status
//   - The staff name must not be empty
//
// Effects: status becomes OnTheirWay, the staff member is recorded, the
// cooking clock starts at now with elapsedSeconds reset to zero.
func (i *MenuItem) Start(staffName string, now time.Time) error {
	if staffName == "" {
		return errs.NewValueIsRequiredError("staffName")
	}

	newStatus, err := i.status.Start()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.assignedStaff = staffName
	i.startedAt = now
	i.elapsedSeconds = 0
	return nil
}

// Finish completes preparation of the item.
//
// Business rules:
//   - The item must be in OnTheirWay status
//
// Effects: status becomes Finished, finishedAt is recorded, and
// elapsedSeconds keeps its last refreshed value (the cooking clock freezes).
func (i *MenuItem) Finish(now time.Time) error {
	newStatus, err := i.status.Finish()
	if err != nil {
		return err
	}

	i.status = newStatus
	i.finishedAt = now
	return nil
}

// AssignWaiter hands the item to a waiter and starts the delivery clock.
//
// The item is expected to be Finished when this is called. That expectation
// is a caller contract, not a rule enforced here: the checker screen only
// offers finished items for assignment.
//
// Effects: the waiter is recorded, deliveryStartedAt is set to now, and
// deliveryElapsedSeconds is reset to zero.
func (i *MenuItem) AssignWaiter(waiterName string, now time.Time) error {
	if waiterName == "" {
		return errs.NewValueIsRequiredError("waiterName")
	}

	i.assignedWaiter = waiterName
	i.deliveryStartedAt = now
	i.deliveryElapsedSeconds = 0
	return nil
}

// MarkDelivered completes the delivery sub-lifecycle of the item.
//
// Business rules:
//   - A waiter must be assigned
//   - The item must not already be delivered
//
// Effects: delivered becomes true, deliveryFinishedAt is set to now, and
// deliveryElapsedSeconds freezes at the full delivery interval.
func (i *MenuItem) MarkDelivered(now time.Time) error {
	if i.assignedWaiter == "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery is invalid",
			fmt.Errorf("item %s has no assigned waiter", i.id),
		)
	}
	if i.delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery is invalid",
			fmt.Errorf("item %s is already delivered", i.id),
		)
	}

	i.delivered = true
	i.deliveryFinishedAt = now
	i.deliveryElapsedSeconds = flooredSeconds(i.deliveryStartedAt, now)
	return nil
}

// RefreshTimers recomputes the derived timer fields from the given instant.
// It performs no status transitions and never fails: items that are not in
// flight are left untouched.
//
//   - While on-their-way, elapsedSeconds becomes the whole seconds between
//     startedAt and now.
//   - While a delivery is in flight (waiter assigned, not yet delivered),
//     deliveryElapsedSeconds becomes the whole seconds between
//     deliveryStartedAt and now.
func (i *MenuItem) RefreshTimers(now time.Time) {
	if i.status == OnTheirWay && !i.startedAt.IsZero() {
		i.elapsedSeconds = flooredSeconds(i.startedAt, now)
	}

	if i.assignedWaiter != "" && i.deliveryFinishedAt.IsZero() && !i.deliveryStartedAt.IsZero() {
		i.deliveryElapsedSeconds = flooredSeconds(i.deliveryStartedAt, now)
	}
}

// Clone returns a deep copy of the item. The copy shares no state with the
// original and can be read without further synchronization.
func (i *MenuItem) Clone() *MenuItem {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

// setID validates and sets the item's unique identifier.
// This is a private method used only during construction.
func (i *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setName validates and sets the item's menu name.
// This is a private method used only during construction.
func (i *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

// setQuantity validates and sets the item's quantity.
// Quantity must be positive. This is a private method used only during construction.
func (i *MenuItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// flooredSeconds returns the whole seconds elapsed between from and to,
// never negative.
func flooredSeconds(from, to time.Time) int64 {
	seconds := to.Sub(from).Milliseconds() / 1000
	if seconds < 0 {
		return 0
	}
	return seconds
}
