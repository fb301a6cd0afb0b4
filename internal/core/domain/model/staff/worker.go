// Package staff models the people working the stations and the floor.
//
// The source system modeled staff as a type hierarchy with one subclass per
// role; the roles differ only by a department tag and a display title, so
// here a Worker is a single flat record with an explicit department and a
// waiter flag, and titles come from a lookup on the department.
package staff

import (
	"errors"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/errs"
)

// WaiterTitle is the display title of floor staff, who belong to no
// preparation station.
const WaiterTitle = "Waiter"

// ErrWorkerIsNotConstructed is returned when a Worker instance was not
// created through the NewWorker factory method.
var ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")

// Worker is one member of staff: a station cook or a waiter, with an
// availability flag and a weekly schedule. Workers are identified by name;
// the roster guarantees name uniqueness.
type Worker struct {
	// name uniquely identifies the worker in the roster
	name string

	// department is the station the worker cooks for; for waiters it marks
	// the station they mainly serve
	department kernel.Department

	// waiter distinguishes floor staff from station cooks
	waiter bool

	// available marks whether the worker can currently take work
	available bool

	// schedule is the worker's weekly schedule
	schedule Schedule

	// isConstructed ensures the worker was created via NewWorker
	isConstructed bool
}

// NewWorker creates a worker with an inactive default schedule, available.
//
// Parameters:
//   - name: Unique roster name (must not be empty)
//   - department: Station of the worker (must be valid)
//   - waiter: Whether the worker is floor staff
func NewWorker(name string, department kernel.Department, waiter bool) (*Worker, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := department.Validate(); err != nil {
		return nil, err
	}

	return &Worker{
		name:          name,
		department:    department,
		waiter:        waiter,
		available:     true,
		schedule:      DefaultSchedule(),
		isConstructed: true,
	}, nil
}

// RestoreWorker reconstructs a worker from persisted state.
// Used by the snapshot adapter; validates the same invariants as NewWorker.
func RestoreWorker(
	name string,
	department kernel.Department,
	waiter bool,
	available bool,
	schedule Schedule,
) (*Worker, error) {
	worker, err := NewWorker(name, department, waiter)
	if err != nil {
		return nil, err
	}
	if err = schedule.Validate(); err != nil {
		return nil, err
	}

	worker.available = available
	worker.schedule = schedule
	return worker, nil
}

// Validate ensures the Worker instance was properly constructed.
func (w *Worker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}

	return nil
}

// Name returns the worker's unique roster name.
func (w *Worker) Name() string {
	return w.name
}

// Department returns the worker's station.
func (w *Worker) Department() kernel.Department {
	return w.department
}

// IsWaiter reports whether the worker is floor staff.
func (w *Worker) IsWaiter() bool {
	return w.waiter
}

// Available reports whether the worker can currently take work.
func (w *Worker) Available() bool {
	return w.available
}

// Schedule returns the worker's weekly schedule.
func (w *Worker) Schedule() Schedule {
	return w.schedule
}

// DisplayTitle returns the human-readable role title: "Waiter" for floor
// staff, otherwise the department's title ("Chef", "Bartender", "Snack Chef").
func (w *Worker) DisplayTitle() string {
	if w.waiter {
		return WaiterTitle
	}
	return w.department.DisplayTitle()
}

// SetAvailable updates the availability flag.
func (w *Worker) SetAvailable(available bool) {
	w.available = available
}

// SetSchedule replaces the weekly schedule after validating it.
func (w *Worker) SetSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	w.schedule = schedule
	return nil
}
