package queries

import (
	"errors"

	"expeditor/internal/pkg/guard"
)

var ErrGetEmployeeNamesQueryIsNotConstructed = errors.New(
	"GetEmployeeNamesQuery must be created via NewGetEmployeeNamesQuery constructor",
)

// GetEmployeeNamesQuery retrieves the distinct staff names appearing in the
// cooking logs, feeding the analytics filter dropdown.
type GetEmployeeNamesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEmployeeNamesQuery creates an employee name listing query.
func NewGetEmployeeNamesQuery() GetEmployeeNamesQuery {
	return GetEmployeeNamesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEmployeeNamesQuery) Validate() error {
	return q.guard.Validate(ErrGetEmployeeNamesQueryIsNotConstructed)
}
