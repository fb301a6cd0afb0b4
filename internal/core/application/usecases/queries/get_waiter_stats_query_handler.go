package queries

import (
	"context"

	"expeditor/internal/core/ports"
)

// GetWaiterStatsQueryHandler aggregates one waiter's delivery records into a
// count and a mean duration. A waiter with no deliveries gets zeros, not an
// error; the stats screen shows every roster member.
type GetWaiterStatsQueryHandler struct {
	logRepo ports.CookingLogRepository
}

// NewGetWaiterStatsQueryHandler creates a handler for waiter statistics.
func NewGetWaiterStatsQueryHandler(logRepo ports.CookingLogRepository) GetWaiterStatsQueryHandler {
	return GetWaiterStatsQueryHandler{logRepo: logRepo}
}

// Handle executes the statistics query.
func (h GetWaiterStatsQueryHandler) Handle(ctx context.Context, query GetWaiterStatsQuery) (WaiterStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return WaiterStatsResponse{}, err
	}

	records, err := h.logRepo.GetDeliveryRecords(ctx, query.WaiterName())
	if err != nil {
		return WaiterStatsResponse{}, err
	}

	stats := WaiterStatsResponse{
		WaiterName:      query.WaiterName(),
		TotalDeliveries: len(records),
	}
	if len(records) == 0 {
		return stats, nil
	}

	var totalSeconds int64
	for _, record := range records {
		totalSeconds += record.DeliverySeconds()
	}
	stats.AverageDeliverySeconds = float64(totalSeconds) / float64(len(records))
	return stats, nil
}
