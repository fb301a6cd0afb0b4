package queries

import (
	"context"

	"expeditor/internal/core/domain/model/kernel"
	"expeditor/internal/core/ports"
)

// GetAllOrdersQueryHandler retrieves every department's board, each in its
// own display order, keyed by department wire name.
type GetAllOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for full-pass queries.
func NewGetAllOrdersQueryHandler(orderRepo ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the full-pass query.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) (map[string][]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	boards := make(map[string][]OrderResponse, len(kernel.AllDepartments()))
	for _, department := range kernel.AllDepartments() {
		orders, err := h.orderRepo.GetByDepartment(ctx, department)
		if err != nil {
			return nil, err
		}
		boards[department.String()] = toOrderResponses(orders)
	}
	return boards, nil
}
