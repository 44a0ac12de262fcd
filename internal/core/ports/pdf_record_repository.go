package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"
)

// PdfRecordRepository defines the persistence contract for the pdf audit
// trail. Records are append-only: there is no update or delete path.
type PdfRecordRepository interface {
	// Add appends a new pdf record to storage.
	Add(ctx context.Context, record *report.PdfRecord) error

	// GetByProcess retrieves all pdf records generated for a process,
	// newest first. An unknown process yields an empty slice, not an error.
	GetByProcess(ctx context.Context, processID kernel.UUID) ([]*report.PdfRecord, error)
}
