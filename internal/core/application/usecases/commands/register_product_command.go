package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRegisterProductCommandIsNotConstructed = errors.New(
		"RegisterProductCommand must be created via NewRegisterProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrWeightIsInvalid       = errors.New("weight must be greater than 0")
)

// RegisterProductCommand represents a request to register goods and open
// the process that tracks them. The flow type picks the event sequence the
// process will follow.
type RegisterProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	processID   kernel.UUID
	name        string
	lengthCm    float64
	widthCm     float64
	heightCm    float64
	weightGrams int
	regulations product.Regulations
	flowType    product.FlowType

	guard guard.ConstructorGuard
}

// NewRegisterProductCommand creates a command to register a product.
// Validates identifiers, the name, the weight, and the flow type; dimension
// bounds are enforced by the domain when the handler builds the value object.
func NewRegisterProductCommand(
	productID kernel.UUID,
	processID kernel.UUID,
	name string,
	lengthCm, widthCm, heightCm float64,
	weightGrams int,
	regulations product.Regulations,
	flowType product.FlowType,
) (RegisterProductCommand, error) {
	cmd := RegisterProductCommand{
		lengthCm:    lengthCm,
		widthCm:     widthCm,
		heightCm:    heightCm,
		regulations: regulations,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setProcessID(processID),
		cmd.setName(name),
		cmd.setWeightGrams(weightGrams),
		cmd.setFlowType(flowType),
	); err != nil {
		return RegisterProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProductCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c RegisterProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// ProcessID returns the identifier for the new process.
func (c RegisterProductCommand) ProcessID() kernel.UUID {
	return c.processID
}

// Name returns the product name.
func (c RegisterProductCommand) Name() string {
	return c.name
}

// LengthCm returns the length side in centimeters.
func (c RegisterProductCommand) LengthCm() float64 {
	return c.lengthCm
}

// WidthCm returns the width side in centimeters.
func (c RegisterProductCommand) WidthCm() float64 {
	return c.widthCm
}

// HeightCm returns the height side in centimeters.
func (c RegisterProductCommand) HeightCm() float64 {
	return c.heightCm
}

// WeightGrams returns the product weight in grams.
func (c RegisterProductCommand) WeightGrams() int {
	return c.weightGrams
}

// Regulations returns the declared handling flags.
func (c RegisterProductCommand) Regulations() product.Regulations {
	return c.regulations
}

// FlowType returns the declared goods direction.
func (c RegisterProductCommand) FlowType() product.FlowType {
	return c.flowType
}

func (c *RegisterProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RegisterProductCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	c.processID = processID
	return nil
}

func (c *RegisterProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterProductCommand) setWeightGrams(weightGrams int) error {
	if weightGrams <= 0 {
		return ErrWeightIsInvalid
	}

	c.weightGrams = weightGrams
	return nil
}

func (c *RegisterProductCommand) setFlowType(flowType product.FlowType) error {
	if err := flowType.Validate(); err != nil {
		return err
	}

	c.flowType = flowType
	return nil
}
