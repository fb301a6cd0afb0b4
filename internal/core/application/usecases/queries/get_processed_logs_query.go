package queries

import (
	"errors"
	"fmt"
	"time"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/pkg/guard"
)

var ErrGetProcessedLogsQueryIsNotConstructed = errors.New(
	"GetProcessedLogsQuery must be created via NewGetProcessedLogsQuery constructor",
)

// SortField selects the key for ordering processed log results.
type SortField string

// Sort keys accepted by the processed-logs query.
const (
	SortByTimestamp SortField = "timestamp"
	SortByDuration  SortField = "duration"
	SortByLevel     SortField = "level"
	SortByMenuName  SortField = "menuName"
)

// Validate checks if the SortField value is one of the accepted keys.
func (f SortField) Validate() error {
	switch f {
	case SortByTimestamp, SortByDuration, SortByLevel, SortByMenuName:
		return nil
	default:
		return fmt.Errorf("%q is not a valid sort field", string(f))
	}
}

// LogFilters narrows the processed-logs result. Zero values mean "no
// constraint": an empty employee matches everyone, a zero From/To leaves that
// side of the range open. The time range is inclusive on both ends.
type LogFilters struct {
	Employee string
	MenuItem string
	Level    string
	From     time.Time
	To       time.Time
	LiveOnly bool
}

// GetProcessedLogsQuery retrieves cooking logs enriched with their derived
// efficiency classification, filtered and sorted for the analytics screen.
//
// Example:
//
//	query, err := NewGetProcessedLogsQuery(LogFilters{Employee: "Alice", LiveOnly: true},
//	    SortByDuration, true)
//	if err != nil {
//	    return fmt.Errorf("invalid analytics request: %w", err)
//	}
//
//	logs, err := handler.Handle(ctx, query)
type GetProcessedLogsQuery struct { //nolint:recvcheck //using for validation
	filters    LogFilters
	sortBy     SortField
	descending bool

	guard guard.ConstructorGuard
}

// NewGetProcessedLogsQuery creates a processed-logs query.
// An empty sort field defaults to timestamp order.
func NewGetProcessedLogsQuery(filters LogFilters, sortBy SortField, descending bool) (GetProcessedLogsQuery, error) {
	if sortBy == "" {
		sortBy = SortByTimestamp
	}

	q := GetProcessedLogsQuery{
		filters:    filters,
		descending: descending,
		guard:      guard.NewConstructorGuard(),
	}

	if err := q.setSortBy(sortBy); err != nil {
		return GetProcessedLogsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProcessedLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessedLogsQueryIsNotConstructed)
}

// Filters returns the result constraints.
func (q GetProcessedLogsQuery) Filters() LogFilters {
	return q.filters
}

// SortBy returns the ordering key.
func (q GetProcessedLogsQuery) SortBy() SortField {
	return q.sortBy
}

// Descending reports whether the ordering is reversed.
func (q GetProcessedLogsQuery) Descending() bool {
	return q.descending
}

func (q *GetProcessedLogsQuery) setSortBy(sortBy SortField) error {
	if err := sortBy.Validate(); err != nil {
		return err
	}

	q.sortBy = sortBy
	return nil
}

// ProcessedLogResponse is one cooking log with its derived classification.
type ProcessedLogResponse struct {
	ID              kernel.UUID
	MenuName        string
	StaffName       string
	Department      kernel.Department
	DurationSeconds int64
	Timestamp       time.Time
	Source          string
	WaiterName      string
	DeliverySeconds int64

	// Level and Ratio are derived per request from the current presets.
	Level string
	Ratio float64
}
