package queries

import (
	"context"

	"warehouse/internal/core/domain/model/process"

	"gorm.io/gorm"
)

// GetActiveProcessesQueryHandler lists processes with status in_progress or
// paused, in creation order.
type GetActiveProcessesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveProcessesQueryHandler creates a handler for the active list.
func NewGetActiveProcessesQueryHandler(db *gorm.DB) GetActiveProcessesQueryHandler {
	return GetActiveProcessesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetActiveProcessesQueryHandler) Handle(
	ctx context.Context, query GetActiveProcessesQuery,
) ([]ProcessDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loader := processDetailsLoader{db: h.db}
	return loader.load(ctx, "\tWHERE pr.status IN ?",
		[]int{int(process.InProgress), int(process.Paused)})
}
