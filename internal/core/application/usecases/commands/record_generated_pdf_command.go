package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRecordGeneratedPdfCommandIsNotConstructed = errors.New(
		"RecordGeneratedPdfCommand must be created via NewRecordGeneratedPdfCommand constructor",
	)
	ErrFileNameIsRequired = errors.New("file name is required")
)

// RecordGeneratedPdfCommand represents a request to append one row to the pdf
// audit trail after a document has been generated for a process.
type RecordGeneratedPdfCommand struct { //nolint:recvcheck //using for validation
	recordID  kernel.UUID
	processID kernel.UUID
	pdfType   report.PdfType
	fileName  string
	filePath  string

	guard guard.ConstructorGuard
}

// NewRecordGeneratedPdfCommand creates a command to record a generated pdf.
// filePath is optional; fileName is not.
func NewRecordGeneratedPdfCommand(
	recordID kernel.UUID,
	processID kernel.UUID,
	pdfType report.PdfType,
	fileName string,
	filePath string,
) (RecordGeneratedPdfCommand, error) {
	cmd := RecordGeneratedPdfCommand{
		filePath: filePath,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setProcessID(processID),
		cmd.setPdfType(pdfType),
		cmd.setFileName(fileName),
	); err != nil {
		return RecordGeneratedPdfCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordGeneratedPdfCommand) Validate() error {
	return c.guard.Validate(ErrRecordGeneratedPdfCommandIsNotConstructed)
}

// RecordID returns the identifier for the new audit row.
func (c RecordGeneratedPdfCommand) RecordID() kernel.UUID {
	return c.recordID
}

// ProcessID returns the process the document belongs to.
func (c RecordGeneratedPdfCommand) ProcessID() kernel.UUID {
	return c.processID
}

// PdfType returns the kind of generated document.
func (c RecordGeneratedPdfCommand) PdfType() report.PdfType {
	return c.pdfType
}

// FileName returns the generated document's file name.
func (c RecordGeneratedPdfCommand) FileName() string {
	return c.fileName
}

// FilePath returns the optional stored location of the document.
func (c RecordGeneratedPdfCommand) FilePath() string {
	return c.filePath
}

func (c *RecordGeneratedPdfCommand) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	c.recordID = recordID
	return nil
}

func (c *RecordGeneratedPdfCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}

	c.processID = processID
	return nil
}

func (c *RecordGeneratedPdfCommand) setPdfType(pdfType report.PdfType) error {
	if err := pdfType.Validate(); err != nil {
		return err
	}

	c.pdfType = pdfType
	return nil
}

func (c *RecordGeneratedPdfCommand) setFileName(fileName string) error {
	if fileName == "" {
		return ErrFileNameIsRequired
	}

	c.fileName = fileName
	return nil
}
