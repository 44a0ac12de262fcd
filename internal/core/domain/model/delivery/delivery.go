// Package delivery provides the Delivery entity captured at event 3 of an
// outbound process: origin, destination, and departure time. Like the other
// leaf entities, a delivery record is immutable once created.
package delivery

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery factory method or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is the immutable record of an outbound shipment leg.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Origin and destination places are non-empty
//   - Departure time is a valid, non-zero timestamp
type Delivery struct {
	id               kernel.UUID
	originPlace      string
	destinationPlace string
	departureTime    time.Time
	deliveryNotes    string
	completedAt      time.Time

	isConstructed bool
}

// NewDelivery creates a validated Delivery. completedAt records when the
// delivery information was submitted, not when the goods arrived.
func NewDelivery(
	id kernel.UUID,
	originPlace string,
	destinationPlace string,
	departureTime time.Time,
	deliveryNotes string,
	completedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		deliveryNotes: deliveryNotes,
		completedAt:   completedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOriginPlace(originPlace),
		d.setDestinationPlace(destinationPlace),
		d.setDepartureTime(departureTime),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a Delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	originPlace string,
	destinationPlace string,
	departureTime time.Time,
	deliveryNotes string,
	completedAt time.Time,
) (*Delivery, error) {
	return NewDelivery(id, originPlace, destinationPlace, departureTime, deliveryNotes, completedAt)
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OriginPlace returns where the shipment departs from.
func (d *Delivery) OriginPlace() string {
	return d.originPlace
}

// DestinationPlace returns where the shipment is headed.
func (d *Delivery) DestinationPlace() string {
	return d.destinationPlace
}

// DepartureTime returns the scheduled departure timestamp.
func (d *Delivery) DepartureTime() time.Time {
	return d.departureTime
}

// DeliveryNotes returns the free-text notes, empty if none were supplied.
func (d *Delivery) DeliveryNotes() string {
	return d.deliveryNotes
}

// CompletedAt returns when the delivery information was recorded.
func (d *Delivery) CompletedAt() time.Time {
	return d.completedAt
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOriginPlace(originPlace string) error {
	if originPlace == "" {
		return errs.NewValueIsRequiredError("originPlace")
	}
	d.originPlace = originPlace
	return nil
}

func (d *Delivery) setDestinationPlace(destinationPlace string) error {
	if destinationPlace == "" {
		return errs.NewValueIsRequiredError("destinationPlace")
	}
	d.destinationPlace = destinationPlace
	return nil
}

func (d *Delivery) setDepartureTime(departureTime time.Time) error {
	if departureTime.IsZero() {
		return errs.NewValueIsRequiredError("departureTime")
	}
	d.departureTime = departureTime
	return nil
}
