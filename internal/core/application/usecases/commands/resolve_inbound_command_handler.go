package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/process"
)

// ResolveInboundCommandHandler closes an inbound process at event 3 with
// either a receipt confirmation or a complaint.
type ResolveInboundCommandHandler struct {
	uowFactory ProcessUoWFactory
}

// NewResolveInboundCommandHandler creates a handler for inbound resolution.
func NewResolveInboundCommandHandler(uowFactory ProcessUoWFactory) ResolveInboundCommandHandler {
	return ResolveInboundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
func (h *ResolveInboundCommandHandler) Handle(ctx context.Context, cmd ResolveInboundCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	proc, err := uow.ProcessRepository().Get(ctx, cmd.ProcessID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	if cmd.Resolution() == process.Confirmed {
		err = proc.ConfirmReceipt(now)
	} else {
		err = proc.FileComplaint(cmd.Notes(), now)
	}
	if err != nil {
		return err
	}

	if err = uow.ProcessRepository().Update(ctx, proc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
