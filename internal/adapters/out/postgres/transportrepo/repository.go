package transportrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transport"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransportRepository implements TransportRepository using GORM.
type GormTransportRepository struct {
	db *gorm.DB
}

// NewGormTransportRepository creates a new GORM transport repository.
func NewGormTransportRepository(db *gorm.DB) *GormTransportRepository {
	return &GormTransportRepository{db: db}
}

// Add saves a new transport to the database.
func (r *GormTransportRepository) Add(ctx context.Context, t *transport.Transport) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a transport by ID.
func (r *GormTransportRepository) Get(ctx context.Context, id kernel.UUID) (*transport.Transport, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
