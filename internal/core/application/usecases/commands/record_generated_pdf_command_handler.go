package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/report"
)

// RecordGeneratedPdfCommandHandler appends a pdf audit row. The owning
// process is loaded first so a record can never reference a missing process.
type RecordGeneratedPdfCommandHandler struct {
	uowFactory PdfUoWFactory
}

// NewRecordGeneratedPdfCommandHandler creates a handler for pdf audit records.
func NewRecordGeneratedPdfCommandHandler(uowFactory PdfUoWFactory) RecordGeneratedPdfCommandHandler {
	return RecordGeneratedPdfCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the record command.
func (h *RecordGeneratedPdfCommandHandler) Handle(ctx context.Context, cmd RecordGeneratedPdfCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record, err := report.NewPdfRecord(
		cmd.RecordID(), cmd.ProcessID(), cmd.PdfType(),
		cmd.FileName(), cmd.FilePath(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.ProcessRepository().Get(ctx, cmd.ProcessID()); err != nil {
		return err
	}

	if err = uow.PdfRecordRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
