// Package queries contains read-only operations over the database.
// Implements the Query side of the CQRS architecture: handlers run raw SQL
// against the store and return display-oriented view structs, bypassing the
// aggregates entirely.
package queries

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/domain/model/transport"
)

// ProcessView is the read model of one process row.
type ProcessView struct {
	ID             kernel.UUID
	Stage          process.Stage
	Status         process.Status
	ProcessType    process.ProcessType
	Resolution     process.Resolution
	ComplaintNotes string
	ConfirmedAt    *time.Time
	NextStep       process.NextStep
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProductView is the read model of the registered goods.
type ProductView struct {
	ID          kernel.UUID
	Name        string
	Dimensions  product.Dimensions
	WeightGrams int
	Regulations product.Regulations
	FlowType    product.FlowType
	CreatedAt   time.Time
}

// WeightKg returns the weight converted to kilograms for display.
func (v ProductView) WeightKg() float64 {
	return float64(v.WeightGrams) / 1000
}

// TransportView is the read model of the transport leg.
type TransportView struct {
	ID            kernel.UUID
	DriverName    string
	LicenseNumber string
	VehicleType   transport.VehicleType
	VehiclePlate  string
	DriverPhoto   string
	Notes         string
	CreatedAt     time.Time
}

// DeliveryView is the read model of the outbound shipment leg.
type DeliveryView struct {
	ID               kernel.UUID
	OriginPlace      string
	DestinationPlace string
	DepartureTime    time.Time
	DeliveryNotes    string
	CompletedAt      time.Time
}

// PdfRecordView is the read model of one pdf audit row.
type PdfRecordView struct {
	ID          kernel.UUID
	PdfType     report.PdfType
	FileName    string
	FilePath    string
	GeneratedAt time.Time
}

// ProcessDetails is the composite read model the API serves: the process, its
// product (always present), the optional transport and delivery legs, and the
// pdf audit trail, newest first.
type ProcessDetails struct {
	Process    ProcessView
	Product    ProductView
	Transport  *TransportView
	Delivery   *DeliveryView
	PdfRecords []PdfRecordView
}
