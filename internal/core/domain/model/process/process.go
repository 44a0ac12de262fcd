package process

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrProcessIsNotConstructed is returned when a Process instance was not created
	// through the NewProcess factory method or RestoreProcess.
	ErrProcessIsNotConstructed = errors.New("Process must be created via NewProcess constructor")

	// ErrComplaintNotesRequired is returned when a complaint is filed without notes.
	ErrComplaintNotesRequired = errs.NewValueIsRequiredError("notes")
)

// Process is the aggregate root of one end-to-end warehouse movement: exactly
// one product walked through the numbered events by one operator.
//
// Invariants:
//   - Always references exactly one existing product; the reference never changes
//   - transportID and deliveryID are unset until their event completes, then set once
//   - The stage only moves forward through the documented transitions
//   - The process type is fixed at creation and selects the valid event sequence
//   - Pause/Resume toggle the status without touching the stage
//   - Terminal statuses (Completed, Complaint) accept no further transitions
//
// The version field implements optimistic concurrency: repositories reject an
// update whose loaded version no longer matches the stored row.
type Process struct {
	id             kernel.UUID
	productID      kernel.UUID
	transportID    *kernel.UUID
	deliveryID     *kernel.UUID
	stage          Stage
	status         Status
	processType    ProcessType
	resolution     Resolution
	complaintNotes string
	confirmedAt    *time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewProcess creates a process at StageRegistration with status InProgress.
// The status is set here, explicitly, rather than relying on a storage default.
func NewProcess(id kernel.UUID, productID kernel.UUID, processType ProcessType, createdAt time.Time) (*Process, error) {
	p := &Process{
		stage:         StageRegistration,
		status:        InProgress,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setProductID(productID),
		p.setProcessType(processType),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProcess rebuilds a process from persistence, accepting any valid
// combination of stage, status, and linked entities.
func RestoreProcess(
	id kernel.UUID,
	productID kernel.UUID,
	transportID *kernel.UUID,
	deliveryID *kernel.UUID,
	stage Stage,
	status Status,
	processType ProcessType,
	resolution Resolution,
	complaintNotes string,
	confirmedAt *time.Time,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Process, error) {
	p := &Process{
		transportID:    transportID,
		deliveryID:     deliveryID,
		resolution:     resolution,
		complaintNotes: complaintNotes,
		confirmedAt:    confirmedAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setProductID(productID),
		p.setProcessType(processType),
		stage.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	p.stage = stage
	p.status = status
	return p, nil
}

// Validate ensures the Process instance was properly constructed.
func (p *Process) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProcessIsNotConstructed
	}
	return nil
}

// IsEqual compares two processes by their unique identifiers.
func (p *Process) IsEqual(other *Process) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the process's unique identifier.
func (p *Process) ID() kernel.UUID {
	return p.id
}

// ProductID returns the identifier of the product this process tracks.
func (p *Process) ProductID() kernel.UUID {
	return p.productID
}

// TransportID returns the linked transport's ID, nil until event 2 completes.
func (p *Process) TransportID() *kernel.UUID {
	return p.transportID
}

// DeliveryID returns the linked delivery's ID, nil unless an outbound process
// has passed event 3.
func (p *Process) DeliveryID() *kernel.UUID {
	return p.deliveryID
}

// Stage returns the numbered event the process is currently at.
func (p *Process) Stage() Stage {
	return p.stage
}

// Status returns the current lifecycle status.
func (p *Process) Status() Status {
	return p.status
}

// ProcessType reports whether this is an inbound or outbound process.
func (p *Process) ProcessType() ProcessType {
	return p.processType
}

// Resolution returns the inbound fulfillment outcome, ResolutionNone until the
// inbound step is resolved.
func (p *Process) Resolution() Resolution {
	return p.resolution
}

// ComplaintNotes returns the notes filed with a complaint, empty otherwise.
func (p *Process) ComplaintNotes() string {
	return p.complaintNotes
}

// ConfirmedAt returns when an inbound process was confirmed, nil otherwise.
func (p *Process) ConfirmedAt() *time.Time {
	return p.confirmedAt
}

// Version returns the optimistic concurrency token loaded from persistence.
// A freshly created process has version 0.
func (p *Process) Version() int {
	return p.version
}

// CreatedAt returns the creation timestamp.
func (p *Process) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (p *Process) UpdatedAt() time.Time {
	return p.updatedAt
}

// NextStep reports which submission follows the current stage, derived from
// the persisted process type. Terminal processes have no next step.
func (p *Process) NextStep() NextStep {
	if p.status.IsTerminal() {
		return NextStepNone
	}

	switch p.stage {
	case StageRegistration:
		return NextStepTransport
	case StageFulfillment:
		if p.processType == TypeInbound {
			return NextStepConfirmation
		}
		return NextStepDelivery
	case StageCompletion:
		return NextStepCompletion
	default:
		return NextStepNone
	}
}

// AttachTransport links the transport created at event 2 and advances the
// process to StageFulfillment. Event 2 is always skipped numerically: both
// flows jump from 1 straight to 3.
func (p *Process) AttachTransport(transportID kernel.UUID, now time.Time) error {
	if err := transportID.Validate(); err != nil {
		return err
	}

	if p.stage != StageRegistration {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("transport can only be submitted at event %d, process is at event %d",
				StageRegistration.Number(), p.stage.Number()))
	}
	if p.status != InProgress {
		return p.notInProgressError("attach transport to")
	}

	p.transportID = &transportID
	p.stage = StageFulfillment
	p.touch(now)
	return nil
}

// AttachDelivery links the delivery created at event 3 of an outbound process
// and advances it to StageCompletion. Inbound processes have no delivery step
// and are rejected here rather than relying on client routing discipline.
func (p *Process) AttachDelivery(deliveryID kernel.UUID, now time.Time) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	if p.processType != TypeOutbound {
		return errs.NewValueIsInvalidErrorWithCause("processType",
			errors.New("inbound process has no delivery step"))
	}
	if p.stage != StageFulfillment {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("delivery can only be submitted at event %d, process is at event %d",
				StageFulfillment.Number(), p.stage.Number()))
	}
	if p.status != InProgress {
		return p.notInProgressError("attach delivery to")
	}

	p.deliveryID = &deliveryID
	p.stage = StageCompletion
	p.touch(now)
	return nil
}

// ConfirmReceipt closes an inbound process at event 3 with a confirmation.
// Terminal: the status becomes Completed and confirmedAt is stamped.
func (p *Process) ConfirmReceipt(now time.Time) error {
	if err := p.validateInboundResolution(); err != nil {
		return err
	}

	p.resolution = Confirmed
	p.status = Completed
	p.confirmedAt = &now
	p.touch(now)
	return nil
}

// FileComplaint closes an inbound process at event 3 with a complaint.
// Notes are mandatory. Terminal: the status becomes Complaint; the stage
// stays at event 3.
func (p *Process) FileComplaint(notes string, now time.Time) error {
	if err := p.validateInboundResolution(); err != nil {
		return err
	}
	if notes == "" {
		return ErrComplaintNotesRequired
	}

	p.resolution = ComplaintFiled
	p.status = Complaint
	p.complaintNotes = notes
	p.touch(now)
	return nil
}

// Complete closes an outbound process at event 4. The stage stays 4.
func (p *Process) Complete(now time.Time) error {
	if p.processType != TypeOutbound {
		return errs.NewValueIsInvalidErrorWithCause("processType",
			errors.New("inbound process is completed via receipt confirmation"))
	}
	if p.stage != StageCompletion {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("process can only be completed at event %d, process is at event %d",
				StageCompletion.Number(), p.stage.Number()))
	}
	if p.status != InProgress {
		return p.notInProgressError("complete")
	}

	p.status = Completed
	p.touch(now)
	return nil
}

// Pause suspends an in-progress process. Stage and type are preserved.
func (p *Process) Pause(now time.Time) error {
	if p.status != InProgress {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s process cannot be paused", p.status))
	}

	p.status = Paused
	p.touch(now)
	return nil
}

// Resume returns a paused process to InProgress at the stage it was paused at.
func (p *Process) Resume(now time.Time) error {
	if p.status != Paused {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s process cannot be resumed", p.status))
	}

	p.status = InProgress
	p.touch(now)
	return nil
}

func (p *Process) validateInboundResolution() error {
	if p.processType != TypeInbound {
		return errs.NewValueIsInvalidErrorWithCause("processType",
			errors.New("outbound process has no receipt confirmation step"))
	}
	if p.stage != StageFulfillment {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("inbound resolution is only valid at event %d, process is at event %d",
				StageFulfillment.Number(), p.stage.Number()))
	}
	if p.status != InProgress {
		return p.notInProgressError("resolve")
	}
	return nil
}

func (p *Process) notInProgressError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("cannot %s a %s process", action, p.status))
}

func (p *Process) touch(now time.Time) {
	p.updatedAt = now
}

func (p *Process) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Process) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId", err)
	}
	p.productID = productID
	return nil
}

func (p *Process) setProcessType(processType ProcessType) error {
	if err := processType.Validate(); err != nil {
		return err
	}
	p.processType = processType
	return nil
}
