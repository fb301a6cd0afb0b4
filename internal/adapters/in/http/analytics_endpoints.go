package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"expeditor/internal/core/application/usecases/queries"
)

// GetProcessedLogs handles GET /api/v1/logs - classified cooking logs.
//
// Query parameters: employee, menuItem, level, from, to (RFC 3339, both ends
// inclusive), liveOnly, sortBy (timestamp|duration|level|menuName), order
// (asc|desc).
func (s *Server) GetProcessedLogs(ctx echo.Context) error {
	query, err := logsQueryFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid filter: "+err.Error())
	}

	logs, err := s.getProcessedLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve logs")
	}

	response := make([]ProcessedLogDTO, 0, len(logs))
	for _, log := range logs {
		response = append(response, toProcessedLogDTO(log))
	}
	return ctx.JSON(http.StatusOK, response)
}

// ExportLogs handles GET /api/v1/logs/export - the same listing as CSV.
func (s *Server) ExportLogs(ctx echo.Context) error {
	logsQuery, err := logsQueryFromRequest(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid filter: "+err.Error())
	}

	query, err := queries.NewExportLogsQuery(
		logsQuery.Filters(), logsQuery.SortBy(), logsQuery.Descending(),
	)
	if err != nil {
		return badRequest(ctx, "Invalid filter: "+err.Error())
	}

	document, err := s.exportLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to export logs")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="cooking-logs.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", document)
}

// GetEmployeeNames handles GET /api/v1/logs/employees.
func (s *Server) GetEmployeeNames(ctx echo.Context) error {
	names, err := s.getEmployeeNamesHandler.Handle(ctx.Request().Context(), queries.NewGetEmployeeNamesQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve employee names")
	}
	return ctx.JSON(http.StatusOK, names)
}

// GetMenuItems handles GET /api/v1/logs/menu-items.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	items, err := s.getMenuItemsHandler.Handle(ctx.Request().Context(), queries.NewGetMenuItemsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve menu items")
	}
	return ctx.JSON(http.StatusOK, items)
}

// GetEfficiencyLevels handles GET /api/v1/logs/levels.
func (s *Server) GetEfficiencyLevels(ctx echo.Context) error {
	levels, err := s.getEfficiencyLevelsHandler.Handle(queries.NewGetEfficiencyLevelsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve levels")
	}
	return ctx.JSON(http.StatusOK, levels)
}

// GetWaiterStats handles GET /api/v1/waiters/:name/stats.
func (s *Server) GetWaiterStats(ctx echo.Context) error {
	query, err := queries.NewGetWaiterStatsQuery(ctx.Param("name"))
	if err != nil {
		return badRequest(ctx, "Invalid waiter name")
	}

	stats, err := s.getWaiterStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve waiter stats")
	}

	return ctx.JSON(http.StatusOK, WaiterStatsDTO{
		WaiterName:             stats.WaiterName,
		TotalDeliveries:        stats.TotalDeliveries,
		AverageDeliverySeconds: stats.AverageDeliverySeconds,
	})
}

func logsQueryFromRequest(ctx echo.Context) (queries.GetProcessedLogsQuery, error) {
	filters := queries.LogFilters{
		Employee: ctx.QueryParam("employee"),
		MenuItem: ctx.QueryParam("menuItem"),
		Level:    ctx.QueryParam("level"),
		LiveOnly: ctx.QueryParam("liveOnly") == "true",
	}

	if from := ctx.QueryParam("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return queries.GetProcessedLogsQuery{}, err
		}
		filters.From = parsed
	}
	if to := ctx.QueryParam("to"); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return queries.GetProcessedLogsQuery{}, err
		}
		filters.To = parsed
	}

	return queries.NewGetProcessedLogsQuery(
		filters,
		queries.SortField(ctx.QueryParam("sortBy")),
		ctx.QueryParam("order") == "desc",
	)
}
