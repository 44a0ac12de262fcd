package commands

import (
	"context"
	"time"
)

// PauseProcessCommandHandler suspends an in-progress process.
type PauseProcessCommandHandler struct {
	uowFactory ProcessUoWFactory
}

// NewPauseProcessCommandHandler creates a handler for pausing processes.
func NewPauseProcessCommandHandler(uowFactory ProcessUoWFactory) PauseProcessCommandHandler {
	return PauseProcessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pause command.
func (h *PauseProcessCommandHandler) Handle(ctx context.Context, cmd PauseProcessCommand) error {
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

	if err = proc.Pause(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ProcessRepository().Update(ctx, proc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
