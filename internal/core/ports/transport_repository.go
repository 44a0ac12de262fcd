package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transport"
)

// TransportRepository defines the persistence contract for transport entities.
type TransportRepository interface {
	// Add persists a new transport to storage.
	Add(ctx context.Context, t *transport.Transport) error

	// Get retrieves a transport by its unique identifier.
	// Returns an ObjectNotFoundError when no such transport exists.
	Get(ctx context.Context, id kernel.UUID) (*transport.Transport, error)
}
