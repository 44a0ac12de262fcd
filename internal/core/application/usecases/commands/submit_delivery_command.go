package commands

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrSubmitDeliveryCommandIsNotConstructed = errors.New(
		"SubmitDeliveryCommand must be created via NewSubmitDeliveryCommand constructor",
	)
	ErrOriginPlaceIsRequired      = errors.New("origin place is required")
	ErrDestinationPlaceIsRequired = errors.New("destination place is required")
	ErrDepartureTimeIsRequired    = errors.New("departure time is required")
)

// SubmitDeliveryCommand represents the event 3 form submission of an outbound
// process: where the goods leave from, where they go, and when.
type SubmitDeliveryCommand struct { //nolint:recvcheck //using for validation
	processID        kernel.UUID
	deliveryID       kernel.UUID
	originPlace      string
	destinationPlace string
	departureTime    time.Time
	deliveryNotes    string

	guard guard.ConstructorGuard
}

// NewSubmitDeliveryCommand creates a command to submit delivery details.
func NewSubmitDeliveryCommand(
	processID kernel.UUID,
	deliveryID kernel.UUID,
	originPlace string,
	destinationPlace string,
	departureTime time.Time,
	deliveryNotes string,
) (SubmitDeliveryCommand, error) {
	cmd := SubmitDeliveryCommand{
		deliveryNotes: deliveryNotes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProcessID(processID),
		cmd.setDeliveryID(deliveryID),
		cmd.setOriginPlace(originPlace),
		cmd.setDestinationPlace(destinationPlace),
		cmd.setDepartureTime(departureTime),
	); err != nil {
		return SubmitDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryCommandIsNotConstructed)
}

// ProcessID returns the process being advanced.
func (c SubmitDeliveryCommand) ProcessID() kernel.UUID {
	return c.processID
}

// DeliveryID returns the identifier for the new delivery record.
func (c SubmitDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OriginPlace returns where the goods depart from.
func (c SubmitDeliveryCommand) OriginPlace() string {
	return c.originPlace
}

// DestinationPlace returns where the goods are headed.
func (c SubmitDeliveryCommand) DestinationPlace() string {
	return c.destinationPlace
}

// DepartureTime returns when the goods leave.
func (c SubmitDeliveryCommand) DepartureTime() time.Time {
	return c.departureTime
}

// DeliveryNotes returns the optional free-text notes.
func (c SubmitDeliveryCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

func (c *SubmitDeliveryCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	c.processID = processID
	return nil
}

func (c *SubmitDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *SubmitDeliveryCommand) setOriginPlace(originPlace string) error {
	if originPlace == "" {
		return ErrOriginPlaceIsRequired
	}

	c.originPlace = originPlace
	return nil
}

func (c *SubmitDeliveryCommand) setDestinationPlace(destinationPlace string) error {
	if destinationPlace == "" {
		return ErrDestinationPlaceIsRequired
	}

	c.destinationPlace = destinationPlace
	return nil
}

func (c *SubmitDeliveryCommand) setDepartureTime(departureTime time.Time) error {
	if departureTime.IsZero() {
		return ErrDepartureTimeIsRequired
	}

	c.departureTime = departureTime
	return nil
}
