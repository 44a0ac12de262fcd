package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrPauseProcessCommandIsNotConstructed = errors.New(
	"PauseProcessCommand must be created via NewPauseProcessCommand constructor",
)

// PauseProcessCommand represents a request to suspend an in-progress process.
// The stage is preserved; only the status changes.
type PauseProcessCommand struct { //nolint:recvcheck //using for validation
	processID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPauseProcessCommand creates a command to pause a process.
func NewPauseProcessCommand(processID kernel.UUID) (PauseProcessCommand, error) {
	cmd := PauseProcessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProcessID(processID); err != nil {
		return PauseProcessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseProcessCommand) Validate() error {
	return c.guard.Validate(ErrPauseProcessCommandIsNotConstructed)
}

// ProcessID returns the process being paused.
func (c PauseProcessCommand) ProcessID() kernel.UUID {
	return c.processID
}

func (c *PauseProcessCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	c.processID = processID
	return nil
}
