package queries

import (
	"errors"

	"expeditor/internal/core/domain/model/timing"
	"expeditor/internal/pkg/guard"
)

var ErrGetEfficiencyLevelsQueryIsNotConstructed = errors.New(
	"GetEfficiencyLevelsQuery must be created via NewGetEfficiencyLevelsQuery constructor",
)

// GetEfficiencyLevelsQuery retrieves the fixed efficiency tier names in
// classification order, fastest first.
type GetEfficiencyLevelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEfficiencyLevelsQuery creates an efficiency level listing query.
func NewGetEfficiencyLevelsQuery() GetEfficiencyLevelsQuery {
	return GetEfficiencyLevelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEfficiencyLevelsQuery) Validate() error {
	return q.guard.Validate(ErrGetEfficiencyLevelsQueryIsNotConstructed)
}

// GetEfficiencyLevelsQueryHandler lists the five tiers. The set is static;
// the handler exists so the HTTP layer treats every dropdown source alike.
type GetEfficiencyLevelsQueryHandler struct{}

// NewGetEfficiencyLevelsQueryHandler creates a handler for tier listings.
func NewGetEfficiencyLevelsQueryHandler() GetEfficiencyLevelsQueryHandler {
	return GetEfficiencyLevelsQueryHandler{}
}

// Handle executes the listing query.
func (h GetEfficiencyLevelsQueryHandler) Handle(query GetEfficiencyLevelsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	levels := make([]string, 0, len(timing.AllLevels()))
	for _, level := range timing.AllLevels() {
		levels = append(levels, level.String())
	}
	return levels, nil
}
