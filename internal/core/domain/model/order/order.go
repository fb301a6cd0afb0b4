package order

import (
	"errors"
	"fmt"
	"time"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents one customer/table ticket owned by a department. It is the
// aggregate root for its menu items and manages the order lifecycle from
// creation through completion to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid owning department
//   - Must contain at least one menu item
//   - completed == true requires every item to be Finished
//   - frozenElapsedSeconds is written exactly once, at the moment completed
//     transitions to true, and never recomputed afterward
//   - Can only be created through the NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// displayID is the short human-facing ticket number
	displayID string

	// department is the preparation station that owns this order
	department kernel.Department

	// priority is the queue class of the order
	priority Priority

	// items are the menu items of the ticket, in insertion order
	items []*MenuItem

	// completed is set once by the owning department when all items are finished
	completed bool

	// frozenElapsedSeconds is the order-level clock captured at completion
	frozenElapsedSeconds int64

	// assignedWaiter is the order-level waiter alias
	assignedWaiter string

	// delivered / deliveredAt mark the order-level terminal delivery step
	delivered   bool
	deliveredAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - displayID: Short human-facing ticket number (must not be empty)
//   - department: Preparation station owning the order (must be valid)
//   - priority: Queue class of the order (must be valid)
//   - items: Menu items of the ticket (at least one, each constructed via NewMenuItem)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	displayID string,
	department kernel.Department,
	priority Priority,
	items []*MenuItem,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDisplayID(displayID),
		o.setDepartment(department),
		o.setPriority(priority),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DisplayID returns the short human-facing ticket number.
func (o *Order) DisplayID() string {
	return o.displayID
}

// Department returns the preparation station that owns the order.
func (o *Order) Department() kernel.Department {
	return o.department
}

// Priority returns the queue class of the order.
func (o *Order) Priority() Priority {
	return o.priority
}

// Items returns the order's menu items in insertion order.
func (o *Order) Items() []*MenuItem {
	return o.items
}

// Item returns the menu item with the given identifier, or nil if the order
// has no such item.
func (o *Order) Item(itemID kernel.UUID) *MenuItem {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item
		}
	}
	return nil
}

// Completed reports whether the owning department has closed the ticket.
func (o *Order) Completed() bool {
	return o.completed
}

// FrozenElapsedSeconds returns the order-level clock captured at completion.
// Zero until the order is completed.
func (o *Order) FrozenElapsedSeconds() int64 {
	return o.frozenElapsedSeconds
}

// AssignedWaiter returns the order-level waiter alias. Empty until assigned.
func (o *Order) AssignedWaiter() string {
	return o.assignedWaiter
}

// Delivered reports whether the whole order reached the customer.
func (o *Order) Delivered() bool {
	return o.delivered
}

// DeliveredAt returns the instant the order-level delivery completed.
// Zero until the order is marked delivered.
func (o *Order) DeliveredAt() time.Time {
	return o.deliveredAt
}

// StartItem begins preparation of one item of the order.
//
// Business rules (enforced by the item's state machine):
//   - The item must exist and be in NotStarted status
//   - The staff name must not be empty
//
// Returns an error unwrapping to errs.ErrObjectNotFound when the item does
// not exist, or to a validation error when the transition is not allowed.
func (o *Order) StartItem(itemID kernel.UUID, staffName string, now time.Time) error {
	item := o.Item(itemID)
	if item == nil {
		return errs.NewObjectNotFoundError("itemID", itemID.String())
	}

	return item.Start(staffName, now)
}

// FinishItem completes preparation of one item of the order.
//
// The item must exist and be in OnTheirWay status. The item's cooking clock
// freezes at its last refreshed value.
func (o *Order) FinishItem(itemID kernel.UUID, now time.Time) error {
	item := o.Item(itemID)
	if item == nil {
		return errs.NewObjectNotFoundError("itemID", itemID.String())
	}

	return item.Finish(now)
}

// Complete closes the ticket and freezes the order-level clock.
//
// Business rules:
//   - Every item must be Finished
//   - Completing an already-completed order is a no-op: the frozen clock is
//     written exactly once and never recomputed, so a stale second click
//     cannot corrupt it
//
// The frozen clock is the whole seconds between the earliest item start and
// now, or zero if no item was ever started.
func (o *Order) Complete(now time.Time) error {
	if o.completed {
		return nil
	}

	for _, item := range o.items {
		if item.Status() != Finished {
			return errs.NewValueIsInvalidErrorWithCause(
				"order is invalid",
				fmt.Errorf("item %s is %s, only finished items can close an order", item.ID(), item.Status()),
			)
		}
	}

	o.completed = true
	o.frozenElapsedSeconds = 0
	if earliest := o.earliestStart(); !earliest.IsZero() {
		o.frozenElapsedSeconds = flooredSeconds(earliest, now)
	}
	return nil
}

// AssignWaiter sets the order-level waiter alias.
//
// This is independent of item status; callers are expected, by convention,
// to assign a waiter only after the order is completed.
func (o *Order) AssignWaiter(waiterName string) error {
	if waiterName == "" {
		return errs.NewValueIsRequiredError("waiterName")
	}

	o.assignedWaiter = waiterName
	return nil
}

// AssignWaiterToItem hands one item of the order to a waiter and starts that
// item's delivery clock.
func (o *Order) AssignWaiterToItem(itemID kernel.UUID, waiterName string, now time.Time) error {
	item := o.Item(itemID)
	if item == nil {
		return errs.NewObjectNotFoundError("itemID", itemID.String())
	}

	return item.AssignWaiter(waiterName, now)
}

// MarkDelivered records the order-level terminal delivery step.
//
// Business rules:
//   - The order must not already be delivered
func (o *Order) MarkDelivered(now time.Time) error {
	if o.delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery is invalid",
			fmt.Errorf("order %s is already delivered", o.id),
		)
	}

	o.delivered = true
	o.deliveredAt = now
	return nil
}

// MarkItemDelivered completes the delivery sub-lifecycle of one item,
// freezing its delivery clock.
func (o *Order) MarkItemDelivered(itemID kernel.UUID, now time.Time) error {
	item := o.Item(itemID)
	if item == nil {
		return errs.NewObjectNotFoundError("itemID", itemID.String())
	}

	return item.MarkDelivered(now)
}

// RefreshTimers recomputes the derived timer fields of every item from one
// consistent instant. It performs no status transitions and never fails.
func (o *Order) RefreshTimers(now time.Time) {
	for _, item := range o.items {
		item.RefreshTimers(now)
	}
}

// Clone returns a deep copy of the order and its items. The copy shares no
// state with the original and can be read without further synchronization.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.items = make([]*MenuItem, len(o.items))
	for idx, item := range o.items {
		clone.items[idx] = item.Clone()
	}
	return &clone
}

// earliestStart returns the earliest startedAt among the order's items,
// or the zero time if no item was ever started.
func (o *Order) earliestStart() time.Time {
	var earliest time.Time
	for _, item := range o.items {
		startedAt := item.StartedAt()
		if startedAt.IsZero() {
			continue
		}
		if earliest.IsZero() || startedAt.Before(earliest) {
			earliest = startedAt
		}
	}
	return earliest
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setDisplayID validates and sets the human-facing ticket number.
// This is a private method used only during construction.
func (o *Order) setDisplayID(displayID string) error {
	if displayID == "" {
		return errs.NewValueIsRequiredError("displayID")
	}
	o.displayID = displayID
	return nil
}

// setDepartment validates and sets the owning department.
// This is a private method used only during construction.
func (o *Order) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}
	o.department = department
	return nil
}

// setPriority validates and sets the queue class.
// This is a private method used only during construction.
func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

// setItems validates and sets the menu items.
// At least one item is required, and every item must be properly constructed.
// This is a private method used only during construction.
func (o *Order) setItems(items []*MenuItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
