package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetProcessQueryIsNotConstructed = errors.New(
	"GetProcessQuery must be created via NewGetProcessQuery constructor",
)

// GetProcessQuery retrieves one process with its full details: product,
// optional transport and delivery, and the pdf audit trail.
type GetProcessQuery struct { //nolint:recvcheck //using for validation
	processID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProcessQuery creates a query for a single process.
func NewGetProcessQuery(processID kernel.UUID) (GetProcessQuery, error) {
	q := GetProcessQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setProcessID(processID); err != nil {
		return GetProcessQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProcessQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessQueryIsNotConstructed)
}

// ProcessID returns the requested process identifier.
func (q GetProcessQuery) ProcessID() kernel.UUID {
	return q.processID
}

func (q *GetProcessQuery) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	q.processID = processID
	return nil
}
