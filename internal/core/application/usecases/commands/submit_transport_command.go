package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/transport"
	"warehouse/internal/pkg/guard"
)

var (
	ErrSubmitTransportCommandIsNotConstructed = errors.New(
		"SubmitTransportCommand must be created via NewSubmitTransportCommand constructor",
	)
	ErrDriverNameIsRequired    = errors.New("driver name is required")
	ErrLicenseNumberIsRequired = errors.New("license number is required")
	ErrVehiclePlateIsRequired  = errors.New("vehicle plate is required")
)

// SubmitTransportCommand represents the event 2 form submission: transport
// details for a process waiting at event 1. After handling, the process sits
// at event 3 and the caller learns which branch comes next.
type SubmitTransportCommand struct { //nolint:recvcheck //using for validation
	processID     kernel.UUID
	transportID   kernel.UUID
	driverName    string
	licenseNumber string
	vehicleType   transport.VehicleType
	vehiclePlate  string
	driverPhoto   string
	notes         string

	guard guard.ConstructorGuard
}

// NewSubmitTransportCommand creates a command to submit transport details.
func NewSubmitTransportCommand(
	processID kernel.UUID,
	transportID kernel.UUID,
	driverName string,
	licenseNumber string,
	vehicleType transport.VehicleType,
	vehiclePlate string,
	driverPhoto string,
	notes string,
) (SubmitTransportCommand, error) {
	cmd := SubmitTransportCommand{
		driverPhoto: driverPhoto,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProcessID(processID),
		cmd.setTransportID(transportID),
		cmd.setDriverName(driverName),
		cmd.setLicenseNumber(licenseNumber),
		cmd.setVehicleType(vehicleType),
		cmd.setVehiclePlate(vehiclePlate),
	); err != nil {
		return SubmitTransportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitTransportCommand) Validate() error {
	return c.guard.Validate(ErrSubmitTransportCommandIsNotConstructed)
}

// ProcessID returns the process being advanced.
func (c SubmitTransportCommand) ProcessID() kernel.UUID {
	return c.processID
}

// TransportID returns the identifier for the new transport record.
func (c SubmitTransportCommand) TransportID() kernel.UUID {
	return c.transportID
}

// DriverName returns the driver's name.
func (c SubmitTransportCommand) DriverName() string {
	return c.driverName
}

// LicenseNumber returns the driver's license number.
func (c SubmitTransportCommand) LicenseNumber() string {
	return c.licenseNumber
}

// VehicleType returns the declared vehicle type.
func (c SubmitTransportCommand) VehicleType() transport.VehicleType {
	return c.vehicleType
}

// VehiclePlate returns the vehicle plate.
func (c SubmitTransportCommand) VehiclePlate() string {
	return c.vehiclePlate
}

// DriverPhoto returns the optional driver photo reference.
func (c SubmitTransportCommand) DriverPhoto() string {
	return c.driverPhoto
}

// Notes returns the optional free-text notes.
func (c SubmitTransportCommand) Notes() string {
	return c.notes
}

func (c *SubmitTransportCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	c.processID = processID
	return nil
}

func (c *SubmitTransportCommand) setTransportID(transportID kernel.UUID) error {
	if err := transportID.Validate(); err != nil {
		return err
	}

	c.transportID = transportID
	return nil
}

func (c *SubmitTransportCommand) setDriverName(driverName string) error {
	if driverName == "" {
		return ErrDriverNameIsRequired
	}

	c.driverName = driverName
	return nil
}

func (c *SubmitTransportCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}

func (c *SubmitTransportCommand) setVehicleType(vehicleType transport.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *SubmitTransportCommand) setVehiclePlate(vehiclePlate string) error {
	if vehiclePlate == "" {
		return ErrVehiclePlateIsRequired
	}

	c.vehiclePlate = vehiclePlate
	return nil
}
