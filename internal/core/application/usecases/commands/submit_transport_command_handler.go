package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/transport"
)

// SubmitTransportCommandHandler handles event 2 of the workflow: it creates
// the transport record and advances the process from event 1 to event 3 in
// one transaction.
type SubmitTransportCommandHandler struct {
	uowFactory TransportUoWFactory
}

// NewSubmitTransportCommandHandler creates a handler for transport submission.
func NewSubmitTransportCommandHandler(uowFactory TransportUoWFactory) SubmitTransportCommandHandler {
	return SubmitTransportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transport submission and returns the branch the caller
// should route to next: confirmation for inbound, delivery for outbound. The
// branch is derived from the stored process, never from the request.
func (h *SubmitTransportCommandHandler) Handle(
	ctx context.Context, cmd SubmitTransportCommand,
) (process.NextStep, error) {
	if err := cmd.Validate(); err != nil {
		return process.NextStepNone, err
	}

	now := time.Now().UTC()

	newTransport, err := transport.NewTransport(
		cmd.TransportID(), cmd.DriverName(), cmd.LicenseNumber(),
		cmd.VehicleType(), cmd.VehiclePlate(), cmd.DriverPhoto(), cmd.Notes(), now,
	)
	if err != nil {
		return process.NextStepNone, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return process.NextStepNone, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	proc, err := uow.ProcessRepository().Get(ctx, cmd.ProcessID())
	if err != nil {
		return process.NextStepNone, err
	}

	if err = proc.AttachTransport(newTransport.ID(), now); err != nil {
		return process.NextStepNone, err
	}

	if err = uow.TransportRepository().Add(ctx, newTransport); err != nil {
		return process.NextStepNone, err
	}

	if err = uow.ProcessRepository().Update(ctx, proc); err != nil {
		return process.NextStepNone, err
	}

	if err = uow.Commit(ctx); err != nil {
		return process.NextStepNone, err
	}

	return proc.NextStep(), nil
}
