package reports

import (
	"fmt"
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/report"
)

// WarehouseReport is the general process summary document. It is available
// for every process regardless of flow or status.
type WarehouseReport struct {
	Title       string
	ProcessID   string
	ProcessType string
	Date        string
	Product     ProductSummary
	Transport   *TransportSummary
	Delivery    *DeliverySummary
	Status      string
	Stage       int
	CreatedAt   time.Time

	PdfType  report.PdfType
	FileName string
}

// NewWarehouseReport builds the warehouse report projection.
func NewWarehouseReport(details queries.ProcessDetails, now time.Time) WarehouseReport {
	return WarehouseReport{
		Title:       "Warehouse Report",
		ProcessID:   details.Process.ID.String(),
		ProcessType: details.Process.ProcessType.String(),
		Date:        now.Format("2006-01-02"),
		Product:     newProductSummary(details.Product, handlingLabels),
		Transport:   newTransportSummary(details.Transport),
		Delivery:    newDeliverySummary(details.Delivery),
		Status:      details.Process.Status.String(),
		Stage:       int(details.Process.Stage),
		CreatedAt:   details.Process.CreatedAt,

		PdfType:  report.WarehouseReport,
		FileName: fmt.Sprintf("warehouse-report-%s.pdf", details.Process.ID.String()),
	}
}
