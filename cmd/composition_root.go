package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpadapter "expeditor/internal/adapters/in/http"
	"expeditor/internal/adapters/out/memory"
	"expeditor/internal/adapters/out/menuconfig"
	"expeditor/internal/adapters/out/postgres/snapshotrepo"
	"expeditor/internal/core/application/usecases/commands"
	"expeditor/internal/core/application/usecases/queries"
	"expeditor/internal/core/domain/model/timing"
	"expeditor/internal/core/domain/services"
	"expeditor/internal/core/ports"
	"expeditor/internal/jobs"
	"expeditor/internal/pkg/errs"
)

// CompositionRoot wires the stores, domain services and use case handlers.
// Runtime state lives in memory; the roster and delivery records are
// restored from the snapshot store at startup and written through on change.
type CompositionRoot struct {
	logger *slog.Logger

	orderStore *memory.OrderStore
	logStore   *memory.CookingLogStore
	staffStore *memory.StaffStore
	snapshot   ports.SnapshotRepository
	catalog    *timing.Catalog
	classifier services.EfficiencyClassifier
	collector  *services.CookingLogCollector
}

// NewCompositionRoot builds the object graph. gormDB may be nil for a
// DB-less run; the snapshot store then lives in memory and restores nothing.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	catalog, err := menuconfig.Load(config.MenuPresetsPath)
	if err != nil {
		return nil, err
	}

	var snapshot ports.SnapshotRepository
	if gormDB != nil {
		snapshot, err = snapshotrepo.NewGormSnapshotRepository(gormDB)
		if err != nil {
			return nil, err
		}
	} else {
		snapshot = memory.NewSnapshotStore()
	}

	logStore := memory.NewCookingLogStore()
	collector, err := services.NewCookingLogCollector(logStore, snapshot, logger)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		logger:     logger,
		orderStore: memory.NewOrderStore(),
		logStore:   logStore,
		staffStore: memory.NewStaffStore(),
		snapshot:   snapshot,
		catalog:    catalog,
		classifier: services.NewEfficiencyClassifier(),
		collector:  collector,
	}

	if err = root.restoreState(context.Background()); err != nil {
		return nil, err
	}
	return root, nil
}

// restoreState loads the roster and delivery records from the snapshot
// store, falling back to the built-in seed data when a value is absent or
// unreadable, and preloads the demo cooking history.
func (c *CompositionRoot) restoreState(ctx context.Context) error {
	roster, err := c.snapshot.LoadRoster(ctx)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		c.logger.InfoContext(ctx, "No stored roster, seeding defaults")
		if roster, err = seedRoster(); err != nil {
			return err
		}
	}
	if err = c.staffStore.Replace(ctx, roster); err != nil {
		return err
	}

	records, err := c.snapshot.LoadDeliveryRecords(ctx)
	switch {
	case err == nil:
		c.logStore.SeedDeliveryRecords(records)
	case errors.Is(err, errs.ErrObjectNotFound):
		c.logger.InfoContext(ctx, "No stored delivery records")
	default:
		return err
	}

	seedLogs, err := seedCookingLogs(time.Now())
	if err != nil {
		return err
	}
	seededKeys := make([]string, 0, len(seedLogs))
	for _, log := range seedLogs {
		if err = c.logStore.Add(ctx, log); err != nil {
			return err
		}
		seededKeys = append(seededKeys, log.ID().String())
	}
	c.collector.MarkSeeded(seededKeys)

	return nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateStartItemCommandHandler() commands.StartItemCommandHandler {
	return commands.NewStartItemCommandHandler(c.orderStore, c.collector, c.logger, time.Now)
}

func (c *CompositionRoot) CreateFinishItemCommandHandler() commands.FinishItemCommandHandler {
	return commands.NewFinishItemCommandHandler(c.orderStore, c.collector, c.logger, time.Now)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderStore, c.collector, c.logger, time.Now)
}

func (c *CompositionRoot) CreateAssignWaiterCommandHandler() commands.AssignWaiterCommandHandler {
	return commands.NewAssignWaiterCommandHandler(c.orderStore, c.collector, c.logger)
}

func (c *CompositionRoot) CreateAssignWaiterToItemCommandHandler() commands.AssignWaiterToItemCommandHandler {
	return commands.NewAssignWaiterToItemCommandHandler(c.orderStore, c.collector, c.logger, time.Now)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderStore, c.collector, c.logger, time.Now)
}

func (c *CompositionRoot) CreateMarkItemDeliveredCommandHandler() commands.MarkItemDeliveredCommandHandler {
	return commands.NewMarkItemDeliveredCommandHandler(c.orderStore, c.collector, c.logger, time.Now)
}

func (c *CompositionRoot) CreateRefreshTimersCommandHandler() commands.RefreshTimersCommandHandler {
	return commands.NewRefreshTimersCommandHandler(c.orderStore, c.collector, c.logger, time.Now)
}

func (c *CompositionRoot) CreateSetStaffAvailabilityCommandHandler() commands.SetStaffAvailabilityCommandHandler {
	return commands.NewSetStaffAvailabilityCommandHandler(c.staffStore, c.snapshot, c.logger)
}

func (c *CompositionRoot) CreateUpdateStaffScheduleCommandHandler() commands.UpdateStaffScheduleCommandHandler {
	return commands.NewUpdateStaffScheduleCommandHandler(c.staffStore, c.snapshot, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetProcessedLogsQueryHandler() queries.GetProcessedLogsQueryHandler {
	return queries.NewGetProcessedLogsQueryHandler(c.logStore, c.catalog, c.classifier)
}

func (c *CompositionRoot) CreateExportLogsQueryHandler() queries.ExportLogsQueryHandler {
	return queries.NewExportLogsQueryHandler(c.CreateGetProcessedLogsQueryHandler())
}

func (c *CompositionRoot) CreateGetEmployeeNamesQueryHandler() queries.GetEmployeeNamesQueryHandler {
	return queries.NewGetEmployeeNamesQueryHandler(c.logStore)
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.logStore, c.catalog)
}

func (c *CompositionRoot) CreateGetEfficiencyLevelsQueryHandler() queries.GetEfficiencyLevelsQueryHandler {
	return queries.NewGetEfficiencyLevelsQueryHandler()
}

func (c *CompositionRoot) CreateGetWaiterStatsQueryHandler() queries.GetWaiterStatsQueryHandler {
	return queries.NewGetWaiterStatsQueryHandler(c.logStore)
}

func (c *CompositionRoot) CreateGetStaffQueryHandler() queries.GetStaffQueryHandler {
	return queries.NewGetStaffQueryHandler(c.staffStore)
}

// CreateServer builds the HTTP server with every endpoint wired.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.ServerHandlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		StartItem:           c.CreateStartItemCommandHandler(),
		FinishItem:          c.CreateFinishItemCommandHandler(),
		CompleteOrder:       c.CreateCompleteOrderCommandHandler(),
		AssignWaiter:        c.CreateAssignWaiterCommandHandler(),
		AssignWaiterToItem:  c.CreateAssignWaiterToItemCommandHandler(),
		MarkDelivered:       c.CreateMarkDeliveredCommandHandler(),
		MarkItemDelivered:   c.CreateMarkItemDeliveredCommandHandler(),
		SetAvailability:     c.CreateSetStaffAvailabilityCommandHandler(),
		UpdateSchedule:      c.CreateUpdateStaffScheduleCommandHandler(),
		GetOrders:           c.CreateGetOrdersQueryHandler(),
		GetAllOrders:        c.CreateGetAllOrdersQueryHandler(),
		GetProcessedLogs:    c.CreateGetProcessedLogsQueryHandler(),
		ExportLogs:          c.CreateExportLogsQueryHandler(),
		GetEmployeeNames:    c.CreateGetEmployeeNamesQueryHandler(),
		GetMenuItems:        c.CreateGetMenuItemsQueryHandler(),
		GetEfficiencyLevels: c.CreateGetEfficiencyLevelsQueryHandler(),
		GetWaiterStats:      c.CreateGetWaiterStatsQueryHandler(),
		GetStaff:            c.CreateGetStaffQueryHandler(),
	})
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRefreshTimersCommandHandler(), c.logger)
}
