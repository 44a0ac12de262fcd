package report

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// PdfType identifies which document a pdf record describes.
type PdfType int

const (
	// PdfTypeUnknown represents an invalid or undefined pdf type.
	PdfTypeUnknown PdfType = iota

	// WarehouseReport is the general process summary document.
	WarehouseReport

	// EntryReport is the inbound receipt confirmation document.
	EntryReport

	// TransportReport is the transport details document.
	TransportReport

	// TransportInvoice is the weight-based transport billing document.
	TransportInvoice

	// ServiceInvoice is the per-step warehouse services billing document.
	ServiceInvoice
)

func getPdfTypeStrings() map[PdfType]string {
	return map[PdfType]string{
		PdfTypeUnknown:   "unknown",
		WarehouseReport:  "warehouse_report",
		EntryReport:      "entry_report",
		TransportReport:  "transport_report",
		TransportInvoice: "transport_invoice",
		ServiceInvoice:   "service_invoice",
	}
}

func getValidPdfTypeStrings() map[PdfType]string {
	//nolint:exhaustive // PdfTypeUnknown is intentionally excluded as it's invalid
	return map[PdfType]string{
		WarehouseReport:  "warehouse_report",
		EntryReport:      "entry_report",
		TransportReport:  "transport_report",
		TransportInvoice: "transport_invoice",
		ServiceInvoice:   "service_invoice",
	}
}

// PdfTypeFromString parses the wire representation of a pdf type.
func PdfTypeFromString(s string) (PdfType, error) {
	for t, str := range getValidPdfTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return PdfTypeUnknown, errs.NewValueIsInvalidErrorWithCause("pdfType",
		fmt.Errorf("%q is not a valid pdf type", s))
}

// Validate checks if the PdfType value is valid.
func (t PdfType) Validate() error {
	if _, ok := getValidPdfTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pdfType",
			fmt.Errorf("%d is not a valid pdf type", t))
	}
	return nil
}

// String returns the wire name of the pdf type.
func (t PdfType) String() string {
	if str, ok := getPdfTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
