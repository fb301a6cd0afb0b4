package queries

import (
	"context"
	"sort"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/timing"
	"expeditor/internal/core/domain/services"
	"expeditor/internal/core/ports"
)

// GetProcessedLogsQueryHandler joins the accumulated cooking logs with the
// timing catalog, classifying each record on the fly. Classification is never
// stored: a preset change reclassifies history on the next query.
type GetProcessedLogsQueryHandler struct {
	logRepo    ports.CookingLogRepository
	catalog    *timing.Catalog
	classifier services.EfficiencyClassifier
}

// NewGetProcessedLogsQueryHandler creates a handler for analytics queries.
func NewGetProcessedLogsQueryHandler(
	logRepo ports.CookingLogRepository,
	catalog *timing.Catalog,
	classifier services.EfficiencyClassifier,
) GetProcessedLogsQueryHandler {
	return GetProcessedLogsQueryHandler{
		logRepo:    logRepo,
		catalog:    catalog,
		classifier: classifier,
	}
}

// Handle executes the analytics query: filter, classify, sort.
func (h GetProcessedLogsQueryHandler) Handle(ctx context.Context, query GetProcessedLogsQuery) ([]ProcessedLogResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	logs, err := h.logRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filters := query.Filters()
	responses := make([]ProcessedLogResponse, 0, len(logs))
	for _, log := range logs {
		if !matches(log, filters) {
			continue
		}

		presets := h.catalog.Resolve(log.Department(), log.MenuName())
		level, ratio := h.classifier.Classify(log.DurationSeconds(), presets)
		if filters.Level != "" && filters.Level != level.String() {
			continue
		}

		responses = append(responses, ProcessedLogResponse{
			ID:              log.ID(),
			MenuName:        log.MenuName(),
			StaffName:       log.StaffName(),
			Department:      log.Department(),
			DurationSeconds: log.DurationSeconds(),
			Timestamp:       log.Timestamp(),
			Source:          log.Source().String(),
			WaiterName:      log.WaiterName(),
			DeliverySeconds: log.DeliverySeconds(),
			Level:           level.String(),
			Ratio:           ratio,
		})
	}

	sortResponses(responses, query.SortBy(), query.Descending())
	return responses, nil
}

// matches applies every non-classification filter. The timestamp range is
// inclusive on both ends.
func matches(log *cookinglog.CookingLog, filters LogFilters) bool {
	if filters.Employee != "" && log.StaffName() != filters.Employee {
		return false
	}
	if filters.MenuItem != "" && log.MenuName() != filters.MenuItem {
		return false
	}
	if filters.LiveOnly && log.Source() != cookinglog.Live {
		return false
	}
	if !filters.From.IsZero() && log.Timestamp().Before(filters.From) {
		return false
	}
	if !filters.To.IsZero() && log.Timestamp().After(filters.To) {
		return false
	}
	return true
}

// sortResponses orders the result deterministically. The stable sort keeps
// the repository's creation order among equal keys, so repeated queries
// render identically.
func sortResponses(responses []ProcessedLogResponse, sortBy SortField, descending bool) {
	less := func(a, b ProcessedLogResponse) bool {
		switch sortBy {
		case SortByDuration:
			return a.DurationSeconds < b.DurationSeconds
		case SortByLevel:
			return levelRank(a.Level) < levelRank(b.Level)
		case SortByMenuName:
			return a.MenuName < b.MenuName
		default:
			return a.Timestamp.Before(b.Timestamp)
		}
	}

	sort.SliceStable(responses, func(i, j int) bool {
		if descending {
			return less(responses[j], responses[i])
		}
		return less(responses[i], responses[j])
	})
}

// levelRank maps a level wire name back to its tier rank for sorting.
func levelRank(level string) int {
	parsed, err := timing.LevelFromString(level)
	if err != nil {
		return len(timing.AllLevels())
	}
	return parsed.Rank()
}
