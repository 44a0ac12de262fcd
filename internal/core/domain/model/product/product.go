package product

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct factory method or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is the immutable record of goods registered at event 1 of a process.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Dimensions must be constructed (all sides positive)
//   - Weight is expressed in grams and must be positive
//   - FlowType is either Inbound or Outbound and never changes
//
// A product is created exactly once and never updated or deleted; the owning
// process references it for its whole lifetime.
type Product struct {
	id          kernel.UUID
	name        string
	dimensions  Dimensions
	weightGrams int
	regulations Regulations
	flowType    FlowType
	createdAt   time.Time

	isConstructed bool
}

// NewProduct creates a validated Product stamped with the given creation time.
func NewProduct(
	id kernel.UUID,
	name string,
	dimensions Dimensions,
	weightGrams int,
	regulations Regulations,
	flowType FlowType,
	createdAt time.Time,
) (*Product, error) {
	p := &Product{
		regulations:   regulations,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDimensions(dimensions),
		p.setWeightGrams(weightGrams),
		p.setFlowType(flowType),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a Product from persistence.
// It applies the same validation as NewProduct.
func RestoreProduct(
	id kernel.UUID,
	name string,
	dimensions Dimensions,
	weightGrams int,
	regulations Regulations,
	flowType FlowType,
	createdAt time.Time,
) (*Product, error) {
	return NewProduct(id, name, dimensions, weightGrams, regulations, flowType, createdAt)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the registered product name.
func (p *Product) Name() string {
	return p.name
}

// Dimensions returns the product's bounding box.
func (p *Product) Dimensions() Dimensions {
	return p.dimensions
}

// WeightGrams returns the product weight in grams.
func (p *Product) WeightGrams() int {
	return p.weightGrams
}

// WeightKg returns the weight converted to kilograms for display.
func (p *Product) WeightKg() float64 {
	return float64(p.weightGrams) / 1000
}

// Regulations returns the handling flags declared at registration.
func (p *Product) Regulations() Regulations {
	return p.regulations
}

// FlowType reports whether the goods are inbound or outbound.
func (p *Product) FlowType() FlowType {
	return p.flowType
}

// CreatedAt returns the registration timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	p.dimensions = dimensions
	return nil
}

func (p *Product) setWeightGrams(weightGrams int) error {
	if weightGrams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%d is not greater than 0", weightGrams))
	}
	p.weightGrams = weightGrams
	return nil
}

func (p *Product) setFlowType(flowType FlowType) error {
	if err := flowType.Validate(); err != nil {
		return err
	}
	p.flowType = flowType
	return nil
}
