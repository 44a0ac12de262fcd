package reports

import (
	"fmt"
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/report"
)

// TransportReport is the transport details document. The transport and route
// blocks are nil when the process has not reached the corresponding event.
type TransportReport struct {
	Title       string
	ProcessID   string
	ProcessType string
	Date        string
	Product     ProductSummary
	Transport   *TransportSummary
	Route       *DeliverySummary
	Status      string
	CreatedAt   time.Time

	PdfType  report.PdfType
	FileName string
}

// NewTransportReport builds the transport report projection.
func NewTransportReport(details queries.ProcessDetails, now time.Time) TransportReport {
	return TransportReport{
		Title:       "Transport Report",
		ProcessID:   details.Process.ID.String(),
		ProcessType: details.Process.ProcessType.String(),
		Date:        now.Format("2006-01-02"),
		Product:     newProductSummary(details.Product, handlingLabels),
		Transport:   newTransportSummary(details.Transport),
		Route:       newDeliverySummary(details.Delivery),
		Status:      details.Process.Status.String(),
		CreatedAt:   details.Process.CreatedAt,

		PdfType:  report.TransportReport,
		FileName: fmt.Sprintf("transport-report-%s.pdf", details.Process.ID.String()),
	}
}
