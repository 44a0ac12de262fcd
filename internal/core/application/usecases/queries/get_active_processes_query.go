package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetActiveProcessesQueryIsNotConstructed = errors.New(
	"GetActiveProcessesQuery must be created via NewGetActiveProcessesQuery constructor",
)

// GetActiveProcessesQuery retrieves processes that still need operator
// attention: in progress or paused, not terminal.
type GetActiveProcessesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveProcessesQuery creates a parameterless query for active processes.
func NewGetActiveProcessesQuery() GetActiveProcessesQuery {
	return GetActiveProcessesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveProcessesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveProcessesQueryIsNotConstructed)
}
