package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product entities.
// Products are written once at registration and read afterwards; there is
// no update path.
type ProductRepository interface {
	// Add persists a new product to storage.
	Add(ctx context.Context, p *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns an ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
