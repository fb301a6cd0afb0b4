package queries

import (
	"errors"

	"expeditor/internal/pkg/guard"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery retrieves the distinct menu item names known to the
// system: names appearing in the logs plus names with configured presets.
type GetMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a menu item listing query.
func NewGetMenuItemsQuery() GetMenuItemsQuery {
	return GetMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}
