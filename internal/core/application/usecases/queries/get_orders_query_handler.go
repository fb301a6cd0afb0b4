package queries

import (
	"context"
	"sort"

	"expeditor/internal/core/domain/model/order"
	"expeditor/internal/core/ports"
)

// GetOrdersQueryHandler retrieves one department's board from the order
// store, sorted for display: PRIORITY before NORMAL, FIFO within each class.
type GetOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler for department board queries.
func NewGetOrdersQueryHandler(orderRepo ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the board query.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetByDepartment(ctx, query.Department())
	if err != nil {
		return nil, err
	}

	return toOrderResponses(orders), nil
}

// toOrderResponses maps orders to display form in queue order. sort.SliceStable
// keeps insertion order within each priority class; the rank is the only key.
func toOrderResponses(orders []*order.Order) []OrderResponse {
	sorted := append([]*order.Order(nil), orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority().QueueRank() < sorted[j].Priority().QueueRank()
	})

	responses := make([]OrderResponse, 0, len(sorted))
	for _, o := range sorted {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:                     item.ID(),
			Name:                   item.Name(),
			Quantity:               item.Quantity(),
			Notes:                  item.Notes(),
			Status:                 item.Status().String(),
			AssignedStaff:          item.AssignedStaff(),
			StartedAt:              item.StartedAt(),
			FinishedAt:             item.FinishedAt(),
			ElapsedSeconds:         item.ElapsedSeconds(),
			AssignedWaiter:         item.AssignedWaiter(),
			DeliveryStartedAt:      item.DeliveryStartedAt(),
			DeliveryFinishedAt:     item.DeliveryFinishedAt(),
			DeliveryElapsedSeconds: item.DeliveryElapsedSeconds(),
			Delivered:              item.Delivered(),
		})
	}

	return OrderResponse{
		ID:                   o.ID(),
		DisplayID:            o.DisplayID(),
		Department:           o.Department(),
		Priority:             o.Priority().String(),
		Completed:            o.Completed(),
		FrozenElapsedSeconds: o.FrozenElapsedSeconds(),
		AssignedWaiter:       o.AssignedWaiter(),
		Delivered:            o.Delivered(),
		DeliveredAt:          o.DeliveredAt(),
		Items:                items,
	}
}
