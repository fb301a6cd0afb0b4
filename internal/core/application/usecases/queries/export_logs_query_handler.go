package queries

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
)

// csvHeader is the export contract. Column order and presence are fixed;
// downstream spreadsheets key on these names.
var csvHeader = []string{
	"Staff Name",
	"Menu Item",
	"Minutes",
	"Seconds",
	"Total Seconds",
	"Efficiency Level",
	"Percentage of Standard",
	"Department",
	"Date",
}

// ExportLogsQueryHandler renders classified cooking logs as CSV. It reuses
// the processed-logs handler so the file always agrees with the analytics
// listing for the same filters.
type ExportLogsQueryHandler struct {
	logs GetProcessedLogsQueryHandler
}

// NewExportLogsQueryHandler creates a handler for CSV exports.
func NewExportLogsQueryHandler(logs GetProcessedLogsQueryHandler) ExportLogsQueryHandler {
	return ExportLogsQueryHandler{logs: logs}
}

// Handle executes the export, returning the CSV document bytes.
func (h ExportLogsQueryHandler) Handle(ctx context.Context, query ExportLogsQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses, err := h.logs.Handle(ctx, query.Logs())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, response := range responses {
		if err := writer.Write(csvRow(response)); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// csvRow flattens one classified log. Duration is shown split into whole
// minutes and leftover seconds alongside the raw total, and the ratio is
// rendered as a one-decimal percentage.
func csvRow(response ProcessedLogResponse) []string {
	total := response.DurationSeconds
	return []string{
		response.StaffName,
		response.MenuName,
		strconv.FormatInt(total/60, 10),
		strconv.FormatInt(total%60, 10),
		strconv.FormatInt(total, 10),
		response.Level,
		fmt.Sprintf("%.1f%%", response.Ratio*100),
		response.Department.String(),
		response.Timestamp.Format("2006-01-02"),
	}
}
