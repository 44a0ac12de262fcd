// Package transportrepo provides data transfer objects and mapping functions
// for transport persistence.
package transportrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transport"

	"github.com/google/uuid"
)

// TransportDTO represents the database structure for persisting transports.
// DriverPhoto may carry a base64 blob, hence the text column.
type TransportDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverName    string
	LicenseNumber string
	VehicleType   int
	VehiclePlate  string
	DriverPhoto   string `gorm:"type:text"`
	Notes         string `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for transport entities.
func (TransportDTO) TableName() string {
	return "transports"
}

func fromDomain(t *transport.Transport) TransportDTO {
	return TransportDTO{
		ID:            t.ID().Bytes(),
		DriverName:    t.DriverName(),
		LicenseNumber: t.LicenseNumber(),
		VehicleType:   int(t.VehicleType()),
		VehiclePlate:  t.VehiclePlate(),
		DriverPhoto:   t.DriverPhoto(),
		Notes:         t.Notes(),
		CreatedAt:     t.CreatedAt(),
	}
}

func toDomain(dto TransportDTO) (*transport.Transport, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return transport.RestoreTransport(
		id, dto.DriverName, dto.LicenseNumber,
		transport.VehicleType(dto.VehicleType), dto.VehiclePlate,
		dto.DriverPhoto, dto.Notes, dto.CreatedAt,
	)
}
