package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"expeditor/internal/core/application/usecases/commands"
	"expeditor/internal/core/application/usecases/queries"
	"expeditor/internal/core/domain/model/order"
)

// GetAllOrders handles GET /api/v1/orders - every department's board.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	boards, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make(map[string][]OrderDTO, len(boards))
	for department, board := range boards {
		response[department] = toOrderDTOs(board)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/departments/:department/orders - one board.
func (s *Server) GetOrders(ctx echo.Context) error {
	department, err := pathDepartment(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid department")
	}

	query, err := queries.NewGetOrdersQuery(department)
	if err != nil {
		return badRequest(ctx, "Invalid department")
	}

	board, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderDTOs(board))
}

// CreateOrder handles POST /api/v1/departments/:department/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	department, err := pathDepartment(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid department")
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	priority := order.Normal
	if request.Priority != "" {
		if priority, err = order.PriorityFromString(request.Priority); err != nil {
			return badRequest(ctx, "Invalid priority")
		}
	}

	items := make([]commands.NewOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.NewOrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(department, request.DisplayID, priority, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.NoContent(http.StatusCreated)
}

// StartItem handles POST .../orders/:orderID/items/:itemID/start.
func (s *Server) StartItem(ctx echo.Context) error {
	department, err := pathDepartment(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid department")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var request StartItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartItemCommand(department, orderID, itemID, request.StaffName)
	if err != nil {
		return badRequest(ctx, "Invalid start data: "+err.Error())
	}

	if handleErr := s.startItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to start item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishItem handles POST .../orders/:orderID/items/:itemID/finish.
func (s *Server) FinishItem(ctx echo.Context) error {
	department, err := pathDepartment(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid department")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewFinishItemCommand(department, orderID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid finish data: "+err.Error())
	}

	if handleErr := s.finishItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to finish item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST .../orders/:orderID/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	department, err := pathDepartment(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid department")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(department, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to complete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignWaiter handles POST .../orders/:orderID/waiter.
func (s *Server) AssignWaiter(ctx echo.Context) error {
	department, err := pathDepartment(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid department")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AssignWaiterRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignWaiterCommand(department, orderID, request.WaiterName)
	if err != nil {
		return badRequest(ctx, "Invalid waiter data: "+err.Error())
	}

	if handleErr := s.assignWaiterHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to assign waiter")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignWaiterToItem handles POST .../orders/:orderID/items/:itemID/waiter.
func (s *Server) AssignWaiterToItem(ctx echo.Context) error {
	department, err := pathDepartment(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid department")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var request AssignWaiterRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignWaiterToItemCommand(department, orderID, itemID, request.WaiterName)
	if err != nil {
		return badRequest(ctx, "Invalid waiter data: "+err.Error())
	}

	if handleErr := s.assignWaiterToItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to assign waiter")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST .../orders/:orderID/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	department, err := pathDepartment(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid department")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkDeliveredCommand(department, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to mark delivered")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkItemDelivered handles POST .../orders/:orderID/items/:itemID/delivered.
func (s *Server) MarkItemDelivered(ctx echo.Context) error {
	department, err := pathDepartment(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid department")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewMarkItemDeliveredCommand(department, orderID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.markItemDeliveredHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to mark delivered")
	}

	return ctx.NoContent(http.StatusNoContent)
}
