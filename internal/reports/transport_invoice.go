package reports

import (
	"fmt"
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/pkg/errs"
)

// Transport billing rates. Amounts are in the smallest currency unit.
const (
	transportBaseRate  = 50000.0
	transportPerKgRate = 5000.0
	taxRate            = 0.19
)

// TransportInvoice is the billing document the external carrier issues for
// the transport leg. The amount grows with the weight of the goods.
type TransportInvoice struct {
	Title         string
	InvoiceNumber string
	Date          string
	DueDate       string
	ProcessID     string
	Product       string
	WeightKg      float64
	Driver        string
	Vehicle       string
	ServiceDate   string
	Subtotal      float64
	Tax           float64
	Total         float64
	Notes         string

	PdfType  report.PdfType
	FileName string
}

// NewTransportInvoice builds the transport invoice projection.
// A process without a transport leg has nothing to bill.
func NewTransportInvoice(details queries.ProcessDetails, now time.Time) (TransportInvoice, error) {
	if details.Transport == nil {
		return TransportInvoice{}, errs.NewObjectNotFoundError("transport", details.Process.ID.String())
	}

	weightKg := details.Product.WeightKg()
	subtotal := transportBaseRate + weightKg*transportPerKgRate
	tax := subtotal * taxRate

	return TransportInvoice{
		Title:         "Transport Invoice",
		InvoiceNumber: invoiceNumber("TI", details),
		Date:          now.Format("2006-01-02"),
		DueDate:       now.AddDate(0, 0, 30).Format("2006-01-02"),
		ProcessID:     details.Process.ID.String(),
		Product:       details.Product.Name,
		WeightKg:      weightKg,
		Driver:        details.Transport.DriverName,
		Vehicle:       fmt.Sprintf("%s - %s", details.Transport.VehicleType, details.Transport.VehiclePlate),
		ServiceDate:   details.Process.CreatedAt.Format("2006-01-02"),
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
		Notes:         orDefault(details.Transport.Notes, "transport service completed"),

		PdfType:  report.TransportInvoice,
		FileName: fmt.Sprintf("transport-invoice-%s.pdf", details.Process.ID.String()),
	}, nil
}
