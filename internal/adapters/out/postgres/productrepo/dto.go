// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
// The regulation flags are flattened into boolean columns so the read side
// can filter on them without JSON gymnastics.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	LengthCm     float64
	WidthCm      float64
	HeightCm     float64
	WeightGrams  int
	Fragile      bool
	Lithium      bool
	Hazardous    bool
	Refrigerated bool
	Valuable     bool
	Oversized    bool
	FlowType     int
	CreatedAt    time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	regulations := p.Regulations()
	return ProductDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		LengthCm:     p.Dimensions().Length(),
		WidthCm:      p.Dimensions().Width(),
		HeightCm:     p.Dimensions().Height(),
		WeightGrams:  p.WeightGrams(),
		Fragile:      regulations.Fragile,
		Lithium:      regulations.Lithium,
		Hazardous:    regulations.Hazardous,
		Refrigerated: regulations.Refrigerated,
		Valuable:     regulations.Valuable,
		Oversized:    regulations.Oversized,
		FlowType:     int(p.FlowType()),
		CreatedAt:    p.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	dimensions, err := product.NewDimensions(dto.LengthCm, dto.WidthCm, dto.HeightCm)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.Name, dimensions, dto.WeightGrams,
		product.Regulations{
			Fragile:      dto.Fragile,
			Lithium:      dto.Lithium,
			Hazardous:    dto.Hazardous,
			Refrigerated: dto.Refrigerated,
			Valuable:     dto.Valuable,
			Oversized:    dto.Oversized,
		},
		product.FlowType(dto.FlowType),
		dto.CreatedAt,
	)
}
