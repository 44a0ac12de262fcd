package reports

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/pkg/errs"
)

// ErrEntryReportIsInboundOnly rejects entry reports for outbound processes.
var ErrEntryReportIsInboundOnly = errors.New("entry report is only available for inbound processes")

// EntryReport is the inbound receipt confirmation document. It carries the
// event 3 resolution alongside the goods and transport details.
type EntryReport struct {
	Title          string
	ProcessID      string
	ProcessType    string
	Date           string
	Product        ProductSummary
	Transport      *TransportSummary
	Status         string
	Resolution     string
	ComplaintNotes string
	ConfirmedAt    *time.Time
	CreatedAt      time.Time

	PdfType  report.PdfType
	FileName string
}

// NewEntryReport builds the entry report projection.
// Only inbound processes receive goods, so other flows are rejected.
func NewEntryReport(details queries.ProcessDetails, now time.Time) (EntryReport, error) {
	if details.Process.ProcessType != process.TypeInbound {
		return EntryReport{}, errs.NewValueIsInvalidErrorWithCause("processType", ErrEntryReportIsInboundOnly)
	}

	return EntryReport{
		Title:          "Warehouse Entry Report",
		ProcessID:      details.Process.ID.String(),
		ProcessType:    details.Process.ProcessType.String(),
		Date:           now.Format("2006-01-02"),
		Product:        newProductSummary(details.Product, handlingLabels),
		Transport:      newTransportSummary(details.Transport),
		Status:         details.Process.Status.String(),
		Resolution:     details.Process.Resolution.String(),
		ComplaintNotes: details.Process.ComplaintNotes,
		ConfirmedAt:    details.Process.ConfirmedAt,
		CreatedAt:      details.Process.CreatedAt,

		PdfType:  report.EntryReport,
		FileName: fmt.Sprintf("entry-report-%s.pdf", details.Process.ID.String()),
	}, nil
}
