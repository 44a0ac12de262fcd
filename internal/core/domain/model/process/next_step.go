package process

// NextStep tells the caller which screen follows the process's current stage.
// It is derived from the persisted process type, so the routing branch after
// transport submission never trusts client-supplied flow information.
type NextStep int

const (
	// NextStepNone means the process is terminal; nothing follows.
	NextStepNone NextStep = iota

	// NextStepTransport means transport information is the next submission.
	NextStepTransport

	// NextStepDelivery means delivery information is the next submission (outbound).
	NextStepDelivery

	// NextStepConfirmation means receipt confirmation or complaint is next (inbound).
	NextStepConfirmation

	// NextStepCompletion means the outbound process awaits its final completion call.
	NextStepCompletion
)

// String returns the wire name of the next step.
func (n NextStep) String() string {
	switch n {
	case NextStepTransport:
		return "transport"
	case NextStepDelivery:
		return "delivery"
	case NextStepConfirmation:
		return "confirmation"
	case NextStepCompletion:
		return "completion"
	default:
		return "none"
	}
}
