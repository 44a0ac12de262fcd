// Package pdfrecordrepo provides data transfer objects and mapping functions
// for generated-document bookkeeping.
package pdfrecordrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"

	"github.com/google/uuid"
)

// PdfRecordDTO represents the database structure for persisting pdf records.
type PdfRecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProcessID   uuid.UUID `gorm:"type:uuid;index"`
	PdfType     int
	FileName    string
	FilePath    string
	GeneratedAt time.Time
}

// TableName specifies the database table name for pdf record entities.
func (PdfRecordDTO) TableName() string {
	return "pdf_records"
}

func fromDomain(record *report.PdfRecord) PdfRecordDTO {
	return PdfRecordDTO{
		ID:          record.ID().Bytes(),
		ProcessID:   record.ProcessID().Bytes(),
		PdfType:     int(record.PdfType()),
		FileName:    record.FileName(),
		FilePath:    record.FilePath(),
		GeneratedAt: record.GeneratedAt(),
	}
}

func toDomain(dto PdfRecordDTO) (*report.PdfRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	processID, err := kernel.UUIDFromBytes(dto.ProcessID[:])
	if err != nil {
		return nil, err
	}

	return report.RestorePdfRecord(
		id, processID,
		report.PdfType(dto.PdfType),
		dto.FileName, dto.FilePath, dto.GeneratedAt,
	)
}
