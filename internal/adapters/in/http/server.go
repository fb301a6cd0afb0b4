// Package http exposes the board mutations, analytics queries and the CSV
// export over a REST surface.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"expeditor/internal/core/application/usecases/commands"
	"expeditor/internal/core/application/usecases/queries"
	"expeditor/internal/core/domain/model/kernel"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	startItemHandler          commands.StartItemCommandHandler
	finishItemHandler         commands.FinishItemCommandHandler
	completeOrderHandler      commands.CompleteOrderCommandHandler
	assignWaiterHandler       commands.AssignWaiterCommandHandler
	assignWaiterToItemHandler commands.AssignWaiterToItemCommandHandler
	markDeliveredHandler      commands.MarkDeliveredCommandHandler
	markItemDeliveredHandler  commands.MarkItemDeliveredCommandHandler
	setAvailabilityHandler    commands.SetStaffAvailabilityCommandHandler
	updateScheduleHandler     commands.UpdateStaffScheduleCommandHandler

	// Query handlers
	getOrdersHandler           queries.GetOrdersQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getProcessedLogsHandler    queries.GetProcessedLogsQueryHandler
	exportLogsHandler          queries.ExportLogsQueryHandler
	getEmployeeNamesHandler    queries.GetEmployeeNamesQueryHandler
	getMenuItemsHandler        queries.GetMenuItemsQueryHandler
	getEfficiencyLevelsHandler queries.GetEfficiencyLevelsQueryHandler
	getWaiterStatsHandler      queries.GetWaiterStatsQueryHandler
	getStaffHandler            queries.GetStaffQueryHandler
}

// ServerHandlers bundles the use case handlers wired into the server.
type ServerHandlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	StartItem           commands.StartItemCommandHandler
	FinishItem          commands.FinishItemCommandHandler
	CompleteOrder       commands.CompleteOrderCommandHandler
	AssignWaiter        commands.AssignWaiterCommandHandler
	AssignWaiterToItem  commands.AssignWaiterToItemCommandHandler
	MarkDelivered       commands.MarkDeliveredCommandHandler
	MarkItemDelivered   commands.MarkItemDeliveredCommandHandler
	SetAvailability     commands.SetStaffAvailabilityCommandHandler
	UpdateSchedule      commands.UpdateStaffScheduleCommandHandler
	GetOrders           queries.GetOrdersQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetProcessedLogs    queries.GetProcessedLogsQueryHandler
	ExportLogs          queries.ExportLogsQueryHandler
	GetEmployeeNames    queries.GetEmployeeNamesQueryHandler
	GetMenuItems        queries.GetMenuItemsQueryHandler
	GetEfficiencyLevels queries.GetEfficiencyLevelsQueryHandler
	GetWaiterStats      queries.GetWaiterStatsQueryHandler
	GetStaff            queries.GetStaffQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createOrderHandler:         handlers.CreateOrder,
		startItemHandler:           handlers.StartItem,
		finishItemHandler:          handlers.FinishItem,
		completeOrderHandler:       handlers.CompleteOrder,
		assignWaiterHandler:        handlers.AssignWaiter,
		assignWaiterToItemHandler:  handlers.AssignWaiterToItem,
		markDeliveredHandler:       handlers.MarkDelivered,
		markItemDeliveredHandler:   handlers.MarkItemDelivered,
		setAvailabilityHandler:     handlers.SetAvailability,
		updateScheduleHandler:      handlers.UpdateSchedule,
		getOrdersHandler:           handlers.GetOrders,
		getAllOrdersHandler:        handlers.GetAllOrders,
		getProcessedLogsHandler:    handlers.GetProcessedLogs,
		exportLogsHandler:          handlers.ExportLogs,
		getEmployeeNamesHandler:    handlers.GetEmployeeNames,
		getMenuItemsHandler:        handlers.GetMenuItems,
		getEfficiencyLevelsHandler: handlers.GetEfficiencyLevels,
		getWaiterStatsHandler:      handlers.GetWaiterStats,
		getStaffHandler:            handlers.GetStaff,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetAllOrders)
	api.GET("/departments/:department/orders", s.GetOrders)
	api.POST("/departments/:department/orders", s.CreateOrder)
	api.POST("/departments/:department/orders/:orderID/complete", s.CompleteOrder)
	api.POST("/departments/:department/orders/:orderID/waiter", s.AssignWaiter)
	api.POST("/departments/:department/orders/:orderID/delivered", s.MarkDelivered)
	api.POST("/departments/:department/orders/:orderID/items/:itemID/start", s.StartItem)
	api.POST("/departments/:department/orders/:orderID/items/:itemID/finish", s.FinishItem)
	api.POST("/departments/:department/orders/:orderID/items/:itemID/waiter", s.AssignWaiterToItem)
	api.POST("/departments/:department/orders/:orderID/items/:itemID/delivered", s.MarkItemDelivered)

	api.GET("/staff", s.GetStaff)
	api.PUT("/staff/:name/availability", s.SetStaffAvailability)
	api.PUT("/staff/:name/schedule", s.UpdateStaffSchedule)

	api.GET("/logs", s.GetProcessedLogs)
	api.GET("/logs/export", s.ExportLogs)
	api.GET("/logs/employees", s.GetEmployeeNames)
	api.GET("/logs/menu-items", s.GetMenuItems)
	api.GET("/logs/levels", s.GetEfficiencyLevels)
	api.GET("/waiters/:name/stats", s.GetWaiterStats)
}

// pathDepartment parses the :department path segment.
func pathDepartment(ctx echo.Context) (kernel.Department, error) {
	return kernel.DepartmentFromString(ctx.Param("department"))
}

// pathUUID parses the named path segment as a UUID.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
