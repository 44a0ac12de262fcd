// Package transport provides the Transport entity captured at event 2 of a
// warehouse process: the driver, the vehicle, and optional notes and photo
// reference. A transport record is immutable once created; the state machine
// links it to its process and never touches it again.
package transport

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrTransportIsNotConstructed is returned when a Transport instance was not
	// created through the NewTransport factory method or RestoreTransport.
	ErrTransportIsNotConstructed = errors.New("Transport must be created via NewTransport constructor")
)

// Transport is the immutable record of the transport leg of a process.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Driver name, license number, and vehicle plate are non-empty
//   - Vehicle type is one of the five valid types
//
// DriverPhoto is an opaque reference (file path or base64 blob) the core never
// interprets; Notes is free text. Both are optional.
type Transport struct {
	id            kernel.UUID
	driverName    string
	licenseNumber string
	vehicleType   VehicleType
	vehiclePlate  string
	driverPhoto   string
	notes         string
	createdAt     time.Time

	isConstructed bool
}

// NewTransport creates a validated Transport stamped with the given creation time.
func NewTransport(
	id kernel.UUID,
	driverName string,
	licenseNumber string,
	vehicleType VehicleType,
	vehiclePlate string,
	driverPhoto string,
	notes string,
	createdAt time.Time,
) (*Transport, error) {
	t := &Transport{
		driverPhoto:   driverPhoto,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setDriverName(driverName),
		t.setLicenseNumber(licenseNumber),
		t.setVehicleType(vehicleType),
		t.setVehiclePlate(vehiclePlate),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTransport rebuilds a Transport from persistence.
func RestoreTransport(
	id kernel.UUID,
	driverName string,
	licenseNumber string,
	vehicleType VehicleType,
	vehiclePlate string,
	driverPhoto string,
	notes string,
	createdAt time.Time,
) (*Transport, error) {
	return NewTransport(id, driverName, licenseNumber, vehicleType, vehiclePlate, driverPhoto, notes, createdAt)
}

// Validate ensures the Transport instance was properly constructed.
func (t *Transport) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransportIsNotConstructed
	}
	return nil
}

// IsEqual compares two transports by their unique identifiers.
func (t *Transport) IsEqual(other *Transport) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transport's unique identifier.
func (t *Transport) ID() kernel.UUID {
	return t.id
}

// DriverName returns the driver's full name.
func (t *Transport) DriverName() string {
	return t.driverName
}

// LicenseNumber returns the driver's license number.
func (t *Transport) LicenseNumber() string {
	return t.licenseNumber
}

// VehicleType returns the vehicle classification.
func (t *Transport) VehicleType() VehicleType {
	return t.vehicleType
}

// VehiclePlate returns the vehicle's license plate.
func (t *Transport) VehiclePlate() string {
	return t.vehiclePlate
}

// DriverPhoto returns the opaque photo reference, empty if none was supplied.
func (t *Transport) DriverPhoto() string {
	return t.driverPhoto
}

// Notes returns the free-text notes, empty if none were supplied.
func (t *Transport) Notes() string {
	return t.notes
}

// CreatedAt returns the record's creation timestamp.
func (t *Transport) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transport) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transport) setDriverName(driverName string) error {
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}
	t.driverName = driverName
	return nil
}

func (t *Transport) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	t.licenseNumber = licenseNumber
	return nil
}

func (t *Transport) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	t.vehicleType = vehicleType
	return nil
}

func (t *Transport) setVehiclePlate(vehiclePlate string) error {
	if vehiclePlate == "" {
		return errs.NewValueIsRequiredError("vehiclePlate")
	}
	t.vehiclePlate = vehiclePlate
	return nil
}
