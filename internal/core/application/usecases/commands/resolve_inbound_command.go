package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/pkg/guard"
)

var (
	ErrResolveInboundCommandIsNotConstructed = errors.New(
		"ResolveInboundCommand must be created via NewResolveInboundCommand constructor",
	)
	ErrComplaintNotesAreRequired = errors.New("complaint notes are required")
)

// ResolveInboundCommand represents the terminal decision of an inbound
// process at event 3: either the goods are confirmed received, or a
// complaint is filed with mandatory notes.
type ResolveInboundCommand struct { //nolint:recvcheck //using for validation
	processID  kernel.UUID
	resolution process.Resolution
	notes      string

	guard guard.ConstructorGuard
}

// NewResolveInboundCommand creates a command to resolve an inbound process.
// Notes are required when the resolution is a complaint and ignored otherwise.
func NewResolveInboundCommand(
	processID kernel.UUID,
	resolution process.Resolution,
	notes string,
) (ResolveInboundCommand, error) {
	cmd := ResolveInboundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProcessID(processID),
		cmd.setResolution(resolution, notes),
	); err != nil {
		return ResolveInboundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveInboundCommand) Validate() error {
	return c.guard.Validate(ErrResolveInboundCommandIsNotConstructed)
}

// ProcessID returns the process being resolved.
func (c ResolveInboundCommand) ProcessID() kernel.UUID {
	return c.processID
}

// Resolution returns the chosen outcome.
func (c ResolveInboundCommand) Resolution() process.Resolution {
	return c.resolution
}

// Notes returns the complaint notes, empty for confirmations.
func (c ResolveInboundCommand) Notes() string {
	return c.notes
}

func (c *ResolveInboundCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	c.processID = processID
	return nil
}

func (c *ResolveInboundCommand) setResolution(resolution process.Resolution, notes string) error {
	if err := resolution.Validate(); err != nil {
		return err
	}

	if resolution == process.ComplaintFiled && notes == "" {
		return ErrComplaintNotesAreRequired
	}

	c.resolution = resolution
	if resolution == process.ComplaintFiled {
		c.notes = notes
	}
	return nil
}
