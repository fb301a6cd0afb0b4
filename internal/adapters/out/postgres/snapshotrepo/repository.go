package snapshotrepo

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"expeditor/internal/core/domain/model/cookinglog"
	"expeditor/internal/core/domain/model/staff"
	"expeditor/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotRepository implements SnapshotRepository using GORM over a
// single key-value table. Corrupt values are reported as not-found with the
// decode failure as cause, so callers fall back to seed data instead of
// failing startup.
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GORM snapshot repository and
// ensures the snapshot table exists.
func NewGormSnapshotRepository(db *gorm.DB) (*GormSnapshotRepository, error) {
	if err := db.AutoMigrate(&SnapshotDTO{}); err != nil {
		return nil, err
	}

	return &GormSnapshotRepository{db: db}, nil
}

// LoadRoster retrieves the persisted staff roster.
func (r *GormSnapshotRepository) LoadRoster(ctx context.Context) ([]*staff.Worker, error) {
	raw, err := r.load(ctx, rosterKey)
	if err != nil {
		return nil, err
	}

	var dtos []workerDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("key", rosterKey, err)
	}

	roster := make([]*staff.Worker, 0, len(dtos))
	for _, dto := range dtos {
		worker, convErr := workerToDomain(dto)
		if convErr != nil {
			return nil, errs.NewObjectNotFoundErrorWithCause("key", rosterKey, convErr)
		}
		roster = append(roster, worker)
	}
	return roster, nil
}

// SaveRoster persists the staff roster, replacing any previous value.
func (r *GormSnapshotRepository) SaveRoster(ctx context.Context, roster []*staff.Worker) error {
	dtos := make([]workerDTO, 0, len(roster))
	for _, worker := range roster {
		if err := worker.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, workerFromDomain(worker))
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		return err
	}

	return r.save(ctx, rosterKey, raw)
}

// LoadDeliveryRecords retrieves the persisted delivery archive.
func (r *GormSnapshotRepository) LoadDeliveryRecords(ctx context.Context) (map[string][]*cookinglog.DeliveryRecord, error) {
	raw, err := r.load(ctx, deliveryRecordsKey)
	if err != nil {
		return nil, err
	}

	var dtos map[string][]deliveryRecordDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("key", deliveryRecordsKey, err)
	}

	records := make(map[string][]*cookinglog.DeliveryRecord, len(dtos))
	for waiterName, list := range dtos {
		converted := make([]*cookinglog.DeliveryRecord, 0, len(list))
		for _, dto := range list {
			record, convErr := recordToDomain(dto)
			if convErr != nil {
				return nil, errs.NewObjectNotFoundErrorWithCause("key", deliveryRecordsKey, convErr)
			}
			converted = append(converted, record)
		}
		records[waiterName] = converted
	}
	return records, nil
}

// SaveDeliveryRecords persists the delivery archive, replacing any previous
// value. Waiter keys are marshaled in sorted order so the stored JSON is
// stable across saves.
func (r *GormSnapshotRepository) SaveDeliveryRecords(ctx context.Context, records map[string][]*cookinglog.DeliveryRecord) error {
	waiterNames := make([]string, 0, len(records))
	for waiterName := range records {
		waiterNames = append(waiterNames, waiterName)
	}
	sort.Strings(waiterNames)

	dtos := make(map[string][]deliveryRecordDTO, len(records))
	for _, waiterName := range waiterNames {
		list := records[waiterName]
		converted := make([]deliveryRecordDTO, 0, len(list))
		for _, record := range list {
			if err := record.Validate(); err != nil {
				return err
			}
			converted = append(converted, recordFromDomain(record))
		}
		dtos[waiterName] = converted
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		return err
	}

	return r.save(ctx, deliveryRecordsKey, raw)
}

// load reads one raw snapshot value.
func (r *GormSnapshotRepository) load(ctx context.Context, key string) ([]byte, error) {
	var dto SnapshotDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("key", key)
		}
		return nil, err
	}
	return dto.Value, nil
}

// save upserts one raw snapshot value.
func (r *GormSnapshotRepository) save(ctx context.Context, key string, value []byte) error {
	dto := SnapshotDTO{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&dto).Error
}
