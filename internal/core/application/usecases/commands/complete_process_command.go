package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrCompleteProcessCommandIsNotConstructed = errors.New(
	"CompleteProcessCommand must be created via NewCompleteProcessCommand constructor",
)

// CompleteProcessCommand represents the event 4 closing of an outbound process.
type CompleteProcessCommand struct { //nolint:recvcheck //using for validation
	processID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteProcessCommand creates a command to complete an outbound process.
func NewCompleteProcessCommand(processID kernel.UUID) (CompleteProcessCommand, error) {
	cmd := CompleteProcessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProcessID(processID); err != nil {
		return CompleteProcessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteProcessCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProcessCommandIsNotConstructed)
}

// ProcessID returns the process being completed.
func (c CompleteProcessCommand) ProcessID() kernel.UUID {
	return c.processID
}

func (c *CompleteProcessCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	c.processID = processID
	return nil
}
