package queries

import (
	"context"
	"sort"

	"expeditor/internal/core/ports"
)

// GetEmployeeNamesQueryHandler lists the distinct staff names found in the
// accumulated logs, sorted for stable dropdown rendering.
type GetEmployeeNamesQueryHandler struct {
	logRepo ports.CookingLogRepository
}

// NewGetEmployeeNamesQueryHandler creates a handler for employee name
// listings.
func NewGetEmployeeNamesQueryHandler(logRepo ports.CookingLogRepository) GetEmployeeNamesQueryHandler {
	return GetEmployeeNamesQueryHandler{logRepo: logRepo}
}

// Handle executes the listing query.
func (h GetEmployeeNamesQueryHandler) Handle(ctx context.Context, query GetEmployeeNamesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	logs, err := h.logRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, log := range logs {
		seen[log.StaffName()] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
