package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetAllProcessesQueryIsNotConstructed = errors.New(
	"GetAllProcessesQuery must be created via NewGetAllProcessesQuery constructor",
)

// GetAllProcessesQuery retrieves every process with its details, in
// creation order.
type GetAllProcessesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProcessesQuery creates a parameterless query for all processes.
func NewGetAllProcessesQuery() GetAllProcessesQuery {
	return GetAllProcessesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProcessesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProcessesQueryIsNotConstructed)
}
