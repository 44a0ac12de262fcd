package product

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// FlowType indicates whether goods are arriving at or leaving the warehouse.
// It is fixed at product registration and copied onto the process that tracks
// the product, where it selects the valid event sequence.
type FlowType int

const (
	// FlowUnknown represents an invalid or undefined flow type.
	// This value (0) helps catch uninitialized FlowType values.
	FlowUnknown FlowType = iota

	// Inbound marks goods arriving at the warehouse.
	Inbound

	// Outbound marks goods leaving the warehouse.
	Outbound
)

func getFlowTypeStrings() map[FlowType]string {
	return map[FlowType]string{
		FlowUnknown: "unknown",
		Inbound:     "inbound",
		Outbound:    "outbound",
	}
}

func getValidFlowTypeStrings() map[FlowType]string {
	//nolint:exhaustive // FlowUnknown is intentionally excluded as it's invalid
	return map[FlowType]string{
		Inbound:  "inbound",
		Outbound: "outbound",
	}
}

// FlowTypeFromString parses the wire representation ("inbound"/"outbound").
// Returns an error for any other input.
func FlowTypeFromString(s string) (FlowType, error) {
	for flow, str := range getValidFlowTypeStrings() {
		if str == s {
			return flow, nil
		}
	}
	return FlowUnknown, errs.NewValueIsInvalidErrorWithCause("flowType",
		fmt.Errorf("%q is not a valid flow type", s))
}

// Validate checks if the FlowType value is valid.
// Valid flow types are Inbound and Outbound.
func (f FlowType) Validate() error {
	if _, ok := getValidFlowTypeStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("flowType",
			fmt.Errorf("%d is not a valid flow type", f))
	}
	return nil
}

// String returns the wire name of the flow type.
// Implements fmt.Stringer; safe to call on invalid values.
func (f FlowType) String() string {
	if str, ok := getFlowTypeStrings()[f]; ok {
		return str
	}
	return "unknown"
}
