package pdfrecordrepo

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"

	"gorm.io/gorm"
)

// GormPdfRecordRepository implements PdfRecordRepository using GORM.
type GormPdfRecordRepository struct {
	db *gorm.DB
}

// NewGormPdfRecordRepository creates a new GORM pdf record repository.
func NewGormPdfRecordRepository(db *gorm.DB) *GormPdfRecordRepository {
	return &GormPdfRecordRepository{db: db}
}

// Add saves a new pdf record to the database.
func (r *GormPdfRecordRepository) Add(ctx context.Context, record *report.PdfRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByProcess retrieves the pdf records generated for a process,
// newest first. A process without records yields an empty slice.
func (r *GormPdfRecordRepository) GetByProcess(ctx context.Context, processID kernel.UUID) ([]*report.PdfRecord, error) {
	if err := processID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PdfRecordDTO
	if err := r.db.WithContext(ctx).
		Where("process_id = ?", processID.Bytes()).
		Order("generated_at DESC, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*report.PdfRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
