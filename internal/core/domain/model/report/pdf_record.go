package report

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrPdfRecordIsNotConstructed is returned when a PdfRecord instance was not
// created through NewPdfRecord or RestorePdfRecord.
var ErrPdfRecordIsNotConstructed = errors.New("PdfRecord must be created via NewPdfRecord constructor")

// PdfRecord is an append-only audit row: one generated document for one
// process. Records are never mutated or deleted.
type PdfRecord struct {
	id          kernel.UUID
	processID   kernel.UUID
	pdfType     PdfType
	fileName    string
	filePath    string
	generatedAt time.Time

	isConstructed bool
}

// NewPdfRecord creates a pdf record for a generated document.
// filePath is optional: documents streamed straight to the client have none.
func NewPdfRecord(
	id kernel.UUID,
	processID kernel.UUID,
	pdfType PdfType,
	fileName string,
	filePath string,
	generatedAt time.Time,
) (*PdfRecord, error) {
	r := &PdfRecord{
		filePath:      filePath,
		generatedAt:   generatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setProcessID(processID),
		r.setPdfType(pdfType),
		r.setFileName(fileName),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestorePdfRecord rebuilds a pdf record from persistence.
func RestorePdfRecord(
	id kernel.UUID,
	processID kernel.UUID,
	pdfType PdfType,
	fileName string,
	filePath string,
	generatedAt time.Time,
) (*PdfRecord, error) {
	return NewPdfRecord(id, processID, pdfType, fileName, filePath, generatedAt)
}

// Validate ensures the PdfRecord instance was properly constructed.
func (r *PdfRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrPdfRecordIsNotConstructed
	}
	return nil
}

// IsEqual compares two pdf records by their unique identifiers.
func (r *PdfRecord) IsEqual(other *PdfRecord) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *PdfRecord) ID() kernel.UUID {
	return r.id
}

// ProcessID returns the process the document belongs to.
func (r *PdfRecord) ProcessID() kernel.UUID {
	return r.processID
}

// PdfType returns the kind of document generated.
func (r *PdfRecord) PdfType() PdfType {
	return r.pdfType
}

// FileName returns the generated document's file name.
func (r *PdfRecord) FileName() string {
	return r.fileName
}

// FilePath returns the stored location of the document, empty when the
// document was streamed to the client without being kept.
func (r *PdfRecord) FilePath() string {
	return r.filePath
}

// GeneratedAt returns when the document was produced.
func (r *PdfRecord) GeneratedAt() time.Time {
	return r.generatedAt
}

func (r *PdfRecord) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *PdfRecord) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("processId", err)
	}
	r.processID = processID
	return nil
}

func (r *PdfRecord) setPdfType(pdfType PdfType) error {
	if err := pdfType.Validate(); err != nil {
		return err
	}
	r.pdfType = pdfType
	return nil
}

func (r *PdfRecord) setFileName(fileName string) error {
	if fileName == "" {
		return errs.NewValueIsRequiredError("fileName")
	}
	r.fileName = fileName
	return nil
}
