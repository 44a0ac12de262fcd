package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetPdfHistoryQueryIsNotConstructed = errors.New(
	"GetPdfHistoryQuery must be created via NewGetPdfHistoryQuery constructor",
)

// GetPdfHistoryQuery retrieves every process that owns at least one pdf
// record, with details and the full audit trail.
type GetPdfHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPdfHistoryQuery creates a parameterless pdf history query.
func NewGetPdfHistoryQuery() GetPdfHistoryQuery {
	return GetPdfHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPdfHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPdfHistoryQueryIsNotConstructed)
}
