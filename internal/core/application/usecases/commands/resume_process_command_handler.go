package commands

import (
	"context"
	"time"
)

// ResumeProcessCommandHandler returns a paused process to in_progress.
type ResumeProcessCommandHandler struct {
	uowFactory ProcessUoWFactory
}

// NewResumeProcessCommandHandler creates a handler for resuming processes.
func NewResumeProcessCommandHandler(uowFactory ProcessUoWFactory) ResumeProcessCommandHandler {
	return ResumeProcessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resume command.
func (h *ResumeProcessCommandHandler) Handle(ctx context.Context, cmd ResumeProcessCommand) error {
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

	if err = proc.Resume(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.ProcessRepository().Update(ctx, proc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
