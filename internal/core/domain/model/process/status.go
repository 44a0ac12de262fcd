package process

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a process.
//
// State transitions:
//
//	InProgress <──> Paused
//	    │
//	    ├──> Completed   (outbound completion, or inbound confirmation)
//	    └──> Complaint   (inbound complaint)
//
// Completed and Complaint are terminal. Draft exists for historical data
// compatibility: the state machine always creates processes as InProgress,
// but older rows may carry Draft.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Draft is a process created but not yet started.
	// The state machine never produces it; it is accepted from persistence only.
	Draft

	// InProgress is the normal working status.
	InProgress

	// Paused is a temporarily suspended process; the stage is preserved.
	Paused

	// Completed is the terminal status of a successful process.
	Completed

	// Complaint is the terminal status of an inbound process closed with a complaint.
	Complaint
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Draft:         "draft",
		InProgress:    "in_progress",
		Paused:        "paused",
		Completed:     "completed",
		Complaint:     "complaint",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "draft",
		InProgress: "in_progress",
		Paused:     "paused",
		Completed:  "completed",
		Complaint:  "complaint",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the process still counts toward the active
// dashboard counters: in progress or paused, but not terminal.
func (s Status) IsActive() bool {
	return s == InProgress || s == Paused
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Complaint
}
