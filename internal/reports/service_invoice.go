package reports

import (
	"fmt"
	"math"
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/report"
)

// Warehouse service rates. Amounts are in the smallest currency unit.
const (
	intakeServiceRate    = 25000
	transportServiceRate = 35000
	deliveryServiceRate  = 15000
)

// ServiceLine is one billable warehouse service on the invoice.
type ServiceLine struct {
	Description string
	Quantity    int
	UnitPrice   int
	Total       int
}

// ServiceInvoice is the billing document for the warehouse services a
// process consumed. Lines appear only for steps the process went through.
type ServiceInvoice struct {
	Title         string
	InvoiceNumber string
	Date          string
	ProcessID     string
	ProcessType   string
	Product       ProductSummary
	Services      []ServiceLine
	Subtotal      int
	Tax           int
	Total         int
	Status        string
	CreatedAt     time.Time

	PdfType  report.PdfType
	FileName string
}

// NewServiceInvoice builds the service invoice projection.
func NewServiceInvoice(details queries.ProcessDetails, now time.Time) ServiceInvoice {
	intakeDescription := "Shipment preparation"
	if details.Process.ProcessType == process.TypeInbound {
		intakeDescription = "Warehouse reception"
	}

	services := []ServiceLine{
		{Description: intakeDescription, Quantity: 1, UnitPrice: intakeServiceRate, Total: intakeServiceRate},
	}
	if details.Transport != nil {
		services = append(services, ServiceLine{
			Description: "Transport service", Quantity: 1,
			UnitPrice: transportServiceRate, Total: transportServiceRate,
		})
	}
	if details.Delivery != nil {
		services = append(services, ServiceLine{
			Description: "Destination delivery", Quantity: 1,
			UnitPrice: deliveryServiceRate, Total: deliveryServiceRate,
		})
	}

	subtotal := 0
	for _, line := range services {
		subtotal += line.Total
	}
	tax := int(math.Round(float64(subtotal) * taxRate))

	return ServiceInvoice{
		Title:         "Logistics Services Invoice",
		InvoiceNumber: invoiceNumber("SI", details),
		Date:          now.Format("2006-01-02"),
		ProcessID:     details.Process.ID.String(),
		ProcessType:   details.Process.ProcessType.String(),
		Product:       newProductSummary(details.Product, serviceLabels),
		Services:      services,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
		Status:        details.Process.Status.String(),
		CreatedAt:     details.Process.CreatedAt,

		PdfType:  report.ServiceInvoice,
		FileName: fmt.Sprintf("service-invoice-%s.pdf", details.Process.ID.String()),
	}
}
