package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
)

// ProcessRepository defines the persistence contract for process aggregates.
type ProcessRepository interface {
	// Add persists a new process aggregate to storage.
	Add(ctx context.Context, aggregate *process.Process) error

	// Update persists changes to an existing process aggregate with an
	// optimistic concurrency check: the update only applies when the stored
	// version still matches the aggregate's loaded version, otherwise a
	// VersionConflictError is returned.
	Update(ctx context.Context, aggregate *process.Process) error

	// Get retrieves a process aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such process exists.
	Get(ctx context.Context, id kernel.UUID) (*process.Process, error)
}
