package queries

import (
	"errors"

	"expeditor/internal/pkg/guard"
)

var ErrExportLogsQueryIsNotConstructed = errors.New(
	"ExportLogsQuery must be created via NewExportLogsQuery constructor",
)

// ExportLogsQuery renders the processed logs as a CSV document for download.
// It accepts the same filters and ordering as the analytics listing, so the
// export always matches what the screen shows.
type ExportLogsQuery struct {
	logs GetProcessedLogsQuery

	guard guard.ConstructorGuard
}

// NewExportLogsQuery creates a CSV export query.
func NewExportLogsQuery(filters LogFilters, sortBy SortField, descending bool) (ExportLogsQuery, error) {
	logs, err := NewGetProcessedLogsQuery(filters, sortBy, descending)
	if err != nil {
		return ExportLogsQuery{}, err
	}

	return ExportLogsQuery{
		logs:  logs,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ExportLogsQuery) Validate() error {
	return q.guard.Validate(ErrExportLogsQueryIsNotConstructed)
}

// Logs returns the underlying processed-logs query.
func (q ExportLogsQuery) Logs() GetProcessedLogsQuery {
	return q.logs
}
