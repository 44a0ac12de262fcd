package ports

import (
	"context"

	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery entities.
type DeliveryRepository interface {
	// Add persists a new delivery to storage.
	Add(ctx context.Context, d *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	// Returns an ObjectNotFoundError when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
}
