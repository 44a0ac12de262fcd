package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPdfHistoryQueryHandler lists processes with generated documents.
type GetPdfHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetPdfHistoryQueryHandler creates a handler for the pdf history query.
func NewGetPdfHistoryQueryHandler(db *gorm.DB) GetPdfHistoryQueryHandler {
	return GetPdfHistoryQueryHandler{db: db}
}

// Handle executes the query.
func (h GetPdfHistoryQueryHandler) Handle(
	ctx context.Context, query GetPdfHistoryQuery,
) ([]ProcessDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loader := processDetailsLoader{db: h.db}
	return loader.load(ctx,
		"\tWHERE EXISTS (SELECT 1 FROM pdf_records pf WHERE pf.process_id = pr.id)")
}
