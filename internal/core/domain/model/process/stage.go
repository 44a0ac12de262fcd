package process

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Stage is the numbered event (1..4) a process is currently at.
//
// Both flows start at StageRegistration and jump straight to StageFulfillment
// when transport information is submitted: StageTransport is the screen the
// operator fills in, but no process ever rests there, which is why the number 2
// never appears in stored data.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown Stage = iota

	// StageRegistration is event 1: the product has been registered.
	StageRegistration

	// StageTransport is event 2: transport capture. Transitional only; a stored
	// process never has this stage.
	StageTransport

	// StageFulfillment is event 3: delivery submission (outbound) or receipt
	// confirmation (inbound).
	StageFulfillment

	// StageCompletion is event 4: outbound processes awaiting or past final
	// completion. Inbound processes never reach this stage.
	StageCompletion
)

func getValidStages() map[Stage]struct{} {
	//nolint:exhaustive // StageUnknown and StageTransport are not valid resting stages
	return map[Stage]struct{}{
		StageRegistration: {},
		StageFulfillment:  {},
		StageCompletion:   {},
	}
}

// Validate checks that the stage is a valid resting stage for a stored process.
func (s Stage) Validate() error {
	if _, ok := getValidStages()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// Number returns the event number as stored and displayed (1..4).
func (s Stage) Number() int {
	return int(s)
}
