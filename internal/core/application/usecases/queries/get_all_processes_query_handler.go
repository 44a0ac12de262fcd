package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllProcessesQueryHandler lists every process for the dashboard.
type GetAllProcessesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProcessesQueryHandler creates a handler for the full process list.
func NewGetAllProcessesQueryHandler(db *gorm.DB) GetAllProcessesQueryHandler {
	return GetAllProcessesQueryHandler{db: db}
}

// Handle executes the query. An empty store yields an empty slice.
func (h GetAllProcessesQueryHandler) Handle(
	ctx context.Context, query GetAllProcessesQuery,
) ([]ProcessDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loader := processDetailsLoader{db: h.db}
	return loader.load(ctx, "")
}
