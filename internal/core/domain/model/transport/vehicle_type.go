package transport

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// VehicleType classifies the vehicle used for the transport leg of a process.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// Truck is a heavy goods vehicle.
	Truck

	// Van is a light commercial vehicle.
	Van

	// BoxTruck is a medium cargo vehicle with an enclosed box.
	BoxTruck

	// Trailer is a tractor-trailer combination.
	Trailer

	// Motorcycle is a courier motorcycle for small parcels.
	Motorcycle
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown: "unknown",
		Truck:          "truck",
		Van:            "van",
		BoxTruck:       "box-truck",
		Trailer:        "trailer",
		Motorcycle:     "motorcycle",
	}
}

func getValidVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		Truck:      "truck",
		Van:        "van",
		BoxTruck:   "box-truck",
		Trailer:    "trailer",
		Motorcycle: "motorcycle",
	}
}

// VehicleTypeFromString parses the wire representation of a vehicle type.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, str := range getValidVehicleTypeStrings() {
		if str == s {
			return vt, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicleType",
		fmt.Errorf("%q is not a valid vehicle type", s))
}

// Validate checks if the VehicleType value is valid.
func (v VehicleType) Validate() error {
	if _, ok := getValidVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicleType",
			fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the wire name of the vehicle type.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}
