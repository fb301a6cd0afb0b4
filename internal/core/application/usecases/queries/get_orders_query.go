// Package queries contains read-only operations over the working set and the
// accumulated log records. Implements the query side of the CQRS split: no
// handler here mutates anything.
package queries

import (
	"errors"
	"time"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves one department's orders in display order:
// priority tickets first, original insertion order within each class.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	department kernel.Department

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for one department's board.
func NewGetOrdersQuery(department kernel.Department) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDepartment(department); err != nil {
		return GetOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Department returns the station whose board is requested.
func (q GetOrdersQuery) Department() kernel.Department {
	return q.department
}

func (q *GetOrdersQuery) setDepartment(department kernel.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	q.department = department
	return nil
}

// OrderResponse is one ticket as shown on a department board.
type OrderResponse struct {
	ID                   kernel.UUID
	DisplayID            string
	Department           kernel.Department
	Priority             string
	Completed            bool
	FrozenElapsedSeconds int64
	AssignedWaiter       string
	Delivered            bool
	DeliveredAt          time.Time
	Items                []OrderItemResponse
}

// OrderItemResponse is one line of a ticket.
type OrderItemResponse struct {
	ID                     kernel.UUID
	Name                   string
	Quantity               int
	Notes                  string
	Status                 string
	AssignedStaff          string
	StartedAt              time.Time
	FinishedAt             time.Time
	ElapsedSeconds         int64
	AssignedWaiter         string
	DeliveryStartedAt      time.Time
	DeliveryFinishedAt     time.Time
	DeliveryElapsedSeconds int64
	Delivered              bool
}
