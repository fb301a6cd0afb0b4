package queries

import (
	"context"
	"sort"

	"expeditor/internal/core/domain/model/timing"
	"expeditor/internal/core/ports"
)

// GetMenuItemsQueryHandler lists the distinct menu item names from the logs
// and the preset catalog, sorted for stable dropdown rendering.
type GetMenuItemsQueryHandler struct {
	logRepo ports.CookingLogRepository
	catalog *timing.Catalog
}

// NewGetMenuItemsQueryHandler creates a handler for menu item listings.
func NewGetMenuItemsQueryHandler(logRepo ports.CookingLogRepository, catalog *timing.Catalog) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{logRepo: logRepo, catalog: catalog}
}

// Handle executes the listing query.
func (h GetMenuItemsQueryHandler) Handle(ctx context.Context, query GetMenuItemsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	logs, err := h.logRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, log := range logs {
		seen[log.MenuName()] = struct{}{}
	}
	for _, name := range h.catalog.ItemNames() {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
