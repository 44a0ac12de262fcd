package queries

import (
	"context"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProcessQueryHandler retrieves one process with all linked entities.
// A process whose product row is missing is treated as not found: the join
// is the read side's referential integrity check.
type GetProcessQueryHandler struct {
	db *gorm.DB
}

// NewGetProcessQueryHandler creates a handler for single-process lookups.
func NewGetProcessQueryHandler(db *gorm.DB) GetProcessQueryHandler {
	return GetProcessQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError for unknown IDs.
func (h GetProcessQueryHandler) Handle(ctx context.Context, query GetProcessQuery) (ProcessDetails, error) {
	if err := query.Validate(); err != nil {
		return ProcessDetails{}, err
	}

	loader := processDetailsLoader{db: h.db}
	details, err := loader.load(ctx, "\tWHERE pr.id = ?", query.ProcessID().String())
	if err != nil {
		return ProcessDetails{}, err
	}

	if len(details) == 0 {
		return ProcessDetails{}, errs.NewObjectNotFoundError("processId", query.ProcessID().String())
	}

	return details[0], nil
}
