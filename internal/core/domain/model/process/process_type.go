package process

import (
	"fmt"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
)

// ProcessType fixes the event sequence of a process. It is copied from the
// product's flow type at creation and never changes.
//
//	TypeInbound:  1 -> 3 -> terminal (confirmation or complaint)
//	TypeOutbound: 1 -> 3 -> 4 -> terminal (completion)
type ProcessType int

const (
	// TypeUnknown represents an invalid or undefined process type.
	TypeUnknown ProcessType = iota

	// TypeInbound tracks goods arriving at the warehouse.
	TypeInbound

	// TypeOutbound tracks goods leaving the warehouse.
	TypeOutbound
)

func getProcessTypeStrings() map[ProcessType]string {
	return map[ProcessType]string{
		TypeUnknown:  "unknown",
		TypeInbound:  "inbound",
		TypeOutbound: "outbound",
	}
}

func getValidProcessTypeStrings() map[ProcessType]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[ProcessType]string{
		TypeInbound:  "inbound",
		TypeOutbound: "outbound",
	}
}

// TypeFromFlow converts a product flow type into the matching process type.
// The process type must always be derived from the persisted product, never
// from client input.
func TypeFromFlow(flow product.FlowType) (ProcessType, error) {
	switch flow {
	case product.Inbound:
		return TypeInbound, nil
	case product.Outbound:
		return TypeOutbound, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("processType",
			fmt.Errorf("flow type %d has no matching process type", flow))
	}
}

// Validate checks if the ProcessType value is valid.
func (t ProcessType) Validate() error {
	if _, ok := getValidProcessTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("processType",
			fmt.Errorf("%d is not a valid process type", t))
	}
	return nil
}

// String returns the wire name of the process type.
func (t ProcessType) String() string {
	if str, ok := getProcessTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
