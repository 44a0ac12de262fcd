// Package reports renders process read models into plain display-data
// structs for the PDF renderer. Layout and drawing live elsewhere; this
// package only decides what each document says.
package reports

import (
	"fmt"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/product"
)

// ProductSummary is the goods block shared by every document.
type ProductSummary struct {
	Name        string
	WeightKg    float64
	Dimensions  string
	Regulations []string
}

// TransportSummary is the transport block shared by every document.
type TransportSummary struct {
	Driver  string
	License string
	Vehicle string
	Notes   string
}

// DeliverySummary is the shipment block for outbound documents.
type DeliverySummary struct {
	Origin        string
	Destination   string
	DepartureTime string
	Notes         string
}

func newProductSummary(v queries.ProductView, labels func(product.Regulations) []string) ProductSummary {
	return ProductSummary{
		Name:        v.Name,
		WeightKg:    v.WeightKg(),
		Dimensions:  v.Dimensions.String(),
		Regulations: labels(v.Regulations),
	}
}

func newTransportSummary(v *queries.TransportView) *TransportSummary {
	if v == nil {
		return nil
	}
	return &TransportSummary{
		Driver:  v.DriverName,
		License: v.LicenseNumber,
		Vehicle: fmt.Sprintf("%s - %s", v.VehicleType, v.VehiclePlate),
		Notes:   orDefault(v.Notes, "no remarks"),
	}
}

func newDeliverySummary(v *queries.DeliveryView) *DeliverySummary {
	if v == nil {
		return nil
	}
	return &DeliverySummary{
		Origin:        v.OriginPlace,
		Destination:   v.DestinationPlace,
		DepartureTime: v.DepartureTime.Format("2006-01-02 15:04"),
		Notes:         orDefault(v.DeliveryNotes, "no remarks"),
	}
}

// handlingLabels maps set regulation flags to the display labels used on
// warehouse-facing documents. Order is fixed so documents are reproducible.
func handlingLabels(r product.Regulations) []string {
	var labels []string
	for _, f := range []struct {
		set   bool
		label string
	}{
		{r.Fragile, "Fragile"},
		{r.Lithium, "Lithium battery"},
		{r.Hazardous, "Hazardous"},
		{r.Refrigerated, "Refrigerated"},
		{r.Valuable, "Valuable"},
		{r.Oversized, "Oversized"},
	} {
		if f.set {
			labels = append(labels, f.label)
		}
	}
	return labels
}

// serviceLabels maps set regulation flags to the billable surcharge labels
// used on the service invoice.
func serviceLabels(r product.Regulations) []string {
	var labels []string
	for _, f := range []struct {
		set   bool
		label string
	}{
		{r.Fragile, "Special fragile handling"},
		{r.Lithium, "Lithium battery transport"},
		{r.Hazardous, "Hazardous material"},
		{r.Refrigerated, "Cold chain"},
		{r.Valuable, "Additional insurance"},
		{r.Oversized, "Oversized cargo"},
	} {
		if f.set {
			labels = append(labels, f.label)
		}
	}
	return labels
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// invoiceNumber derives a stable human-readable invoice number from the
// process identifier.
func invoiceNumber(prefix string, details queries.ProcessDetails) string {
	id := details.Process.ID.String()
	return fmt.Sprintf("%s-%s", prefix, id[:8])
}
