// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"time"

	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
type DeliveryDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginPlace      string
	DestinationPlace string
	DepartureTime    time.Time
	DeliveryNotes    string `gorm:"type:text"`
	CompletedAt      time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:               d.ID().Bytes(),
		OriginPlace:      d.OriginPlace(),
		DestinationPlace: d.DestinationPlace(),
		DepartureTime:    d.DepartureTime(),
		DeliveryNotes:    d.DeliveryNotes(),
		CompletedAt:      d.CompletedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, dto.OriginPlace, dto.DestinationPlace,
		dto.DepartureTime, dto.DeliveryNotes, dto.CompletedAt,
	)
}
