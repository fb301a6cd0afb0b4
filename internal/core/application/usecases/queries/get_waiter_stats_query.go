package queries

import (
	"errors"

	"expeditor/internal/pkg/guard"
)

var (
	ErrGetWaiterStatsQueryIsNotConstructed = errors.New(
		"GetWaiterStatsQuery must be created via NewGetWaiterStatsQuery constructor",
	)
	ErrWaiterNameIsRequired = errors.New("waiterName is required")
)

// GetWaiterStatsQuery retrieves one waiter's delivery statistics.
type GetWaiterStatsQuery struct { //nolint:recvcheck //using for validation
	waiterName string

	guard guard.ConstructorGuard
}

// NewGetWaiterStatsQuery creates a waiter statistics query.
func NewGetWaiterStatsQuery(waiterName string) (GetWaiterStatsQuery, error) {
	q := GetWaiterStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setWaiterName(waiterName); err != nil {
		return GetWaiterStatsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWaiterStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetWaiterStatsQueryIsNotConstructed)
}

// WaiterName returns the waiter whose statistics are requested.
func (q GetWaiterStatsQuery) WaiterName() string {
	return q.waiterName
}

func (q *GetWaiterStatsQuery) setWaiterName(waiterName string) error {
	if waiterName == "" {
		return ErrWaiterNameIsRequired
	}

	q.waiterName = waiterName
	return nil
}

// WaiterStatsResponse summarizes one waiter's completed deliveries.
type WaiterStatsResponse struct {
	WaiterName             string
	TotalDeliveries        int
	AverageDeliverySeconds float64
}
