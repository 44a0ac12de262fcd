package product

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"

	"warehouse/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when a Dimensions instance was not
// created through the NewDimensions factory function.
var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions is an immutable value object describing a product's bounding box
// in centimeters. All three sides must be positive.
type Dimensions struct { //nolint:recvcheck //using for validation
	length float64
	width  float64
	height float64

	guard guard.ConstructorGuard
}

// NewDimensions creates validated Dimensions.
// Each side must be greater than zero.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setLength(length),
		d.setWidth(width),
		d.setHeight(height),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Validate ensures the Dimensions instance was properly constructed.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Length returns the length side in centimeters.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the width side in centimeters.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height side in centimeters.
func (d Dimensions) Height() float64 {
	return d.height
}

// String formats the dimensions as "LxWxH cm" for display and reports.
func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g cm", d.length, d.width, d.height)
}

func (d *Dimensions) setLength(length float64) error {
	if length <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("length",
			fmt.Errorf("%g is not greater than 0", length))
	}
	d.length = length
	return nil
}

func (d *Dimensions) setWidth(width float64) error {
	if width <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("width",
			fmt.Errorf("%g is not greater than 0", width))
	}
	d.width = width
	return nil
}

func (d *Dimensions) setHeight(height float64) error {
	if height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("height",
			fmt.Errorf("%g is not greater than 0", height))
	}
	d.height = height
	return nil
}
