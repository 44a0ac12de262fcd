package process

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Resolution is the outcome of the inbound fulfillment step (event 3).
// ResolutionNone is the valid "not yet resolved" state; outbound processes
// keep it forever.
type Resolution int

const (
	// ResolutionNone means the inbound step has not been resolved yet.
	ResolutionNone Resolution = iota

	// Confirmed means the goods were received in order.
	Confirmed

	// ComplaintFiled means the goods were received with a complaint.
	ComplaintFiled
)

func getResolutionStrings() map[Resolution]string {
	return map[Resolution]string{
		ResolutionNone: "",
		Confirmed:      "confirmed",
		ComplaintFiled: "complaint",
	}
}

// ResolutionFromString parses the wire representation ("confirmed"/"complaint").
func ResolutionFromString(s string) (Resolution, error) {
	switch s {
	case "confirmed":
		return Confirmed, nil
	case "complaint":
		return ComplaintFiled, nil
	default:
		return ResolutionNone, errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q must be 'confirmed' or 'complaint'", s))
	}
}

// Validate checks that the resolution is an actionable outcome.
// ResolutionNone fails validation: it cannot be submitted, only stored.
func (r Resolution) Validate() error {
	if r != Confirmed && r != ComplaintFiled {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid resolution", r))
	}
	return nil
}

// String returns the wire name of the resolution, empty for ResolutionNone.
func (r Resolution) String() string {
	if str, ok := getResolutionStrings()[r]; ok {
		return str
	}
	return ""
}
