// Package processrepo provides data transfer objects and mapping functions
// for process persistence.
package processrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"

	"github.com/google/uuid"
)

// ProcessDTO represents the database structure for persisting processes.
// TransportID, DeliveryID and ConfirmedAt are nullable: they are filled
// as the process advances through its stages.
type ProcessDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID      uuid.UUID `gorm:"type:uuid"`
	TransportID    *uuid.UUID `gorm:"type:uuid"`
	DeliveryID     *uuid.UUID `gorm:"type:uuid"`
	Stage          int
	Status         int
	ProcessType    int
	Resolution     int
	ComplaintNotes string `gorm:"type:text"`
	ConfirmedAt    *time.Time
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for process entities.
func (ProcessDTO) TableName() string {
	return "processes"
}

func fromDomain(p *process.Process) ProcessDTO {
	dto := ProcessDTO{
		ID:             p.ID().Bytes(),
		ProductID:      p.ProductID().Bytes(),
		Stage:          int(p.Stage()),
		Status:         int(p.Status()),
		ProcessType:    int(p.ProcessType()),
		Resolution:     int(p.Resolution()),
		ComplaintNotes: p.ComplaintNotes(),
		ConfirmedAt:    p.ConfirmedAt(),
		Version:        p.Version(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}

	if transportID := p.TransportID(); transportID != nil {
		id := transportID.Bytes()
		dto.TransportID = &id
	}
	if deliveryID := p.DeliveryID(); deliveryID != nil {
		id := deliveryID.Bytes()
		dto.DeliveryID = &id
	}

	return dto
}

func toDomain(dto ProcessDTO) (*process.Process, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var transportID *kernel.UUID
	if dto.TransportID != nil {
		restored, err := kernel.UUIDFromBytes(dto.TransportID[:])
		if err != nil {
			return nil, err
		}
		transportID = &restored
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		restored, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
		if err != nil {
			return nil, err
		}
		deliveryID = &restored
	}

	return process.RestoreProcess(
		id, productID, transportID, deliveryID,
		process.Stage(dto.Stage),
		process.Status(dto.Status),
		process.ProcessType(dto.ProcessType),
		process.Resolution(dto.Resolution),
		dto.ComplaintNotes,
		dto.ConfirmedAt,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
