package processrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProcessRepository implements ProcessRepository using GORM.
type GormProcessRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProcessRepository creates a new GORM process repository.
func NewGormProcessRepository(db *gorm.DB, tracker aggregateTracker) *GormProcessRepository {
	return &GormProcessRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new process to the database.
func (r *GormProcessRepository) Add(ctx context.Context, aggregate *process.Process) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing process to the database. The row version is
// checked against the version the aggregate was loaded with; a mismatch
// means another transaction advanced the process in the meantime.
func (r *GormProcessRepository) Update(ctx context.Context, aggregate *process.Process) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&ProcessDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&ProcessDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("process", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("process", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a process by ID.
func (r *GormProcessRepository) Get(ctx context.Context, id kernel.UUID) (*process.Process, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProcessDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("process", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
