package commands

import (
	"context"
	"time"
)

// CompleteProcessCommandHandler closes an outbound process at event 4.
type CompleteProcessCommandHandler struct {
	uowFactory ProcessUoWFactory
}

// NewCompleteProcessCommandHandler creates a handler for process completion.
func NewCompleteProcessCommandHandler(uowFactory ProcessUoWFactory) CompleteProcessCommandHandler {
	return CompleteProcessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteProcessCommandHandler) Handle(ctx context.Context, cmd CompleteProcessCommand) error {
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

	if err = proc.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ProcessRepository().Update(ctx, proc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
