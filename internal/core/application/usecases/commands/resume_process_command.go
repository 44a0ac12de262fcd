package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrResumeProcessCommandIsNotConstructed = errors.New(
	"ResumeProcessCommand must be created via NewResumeProcessCommand constructor",
)

// ResumeProcessCommand represents a request to return a paused process to
// in_progress at the stage it was paused at.
type ResumeProcessCommand struct { //nolint:recvcheck //using for validation
	processID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeProcessCommand creates a command to resume a paused process.
func NewResumeProcessCommand(processID kernel.UUID) (ResumeProcessCommand, error) {
	cmd := ResumeProcessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProcessID(processID); err != nil {
		return ResumeProcessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeProcessCommand) Validate() error {
	return c.guard.Validate(ErrResumeProcessCommandIsNotConstructed)
}

// ProcessID returns the process being resumed.
func (c ResumeProcessCommand) ProcessID() kernel.UUID {
	return c.processID
}

func (c *ResumeProcessCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	c.processID = processID
	return nil
}
