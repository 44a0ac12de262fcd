package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/domain/model/transport"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// processDetailsSelect joins a process with its product and optional legs.
// Every column is aliased so one flat row scan covers all four tables.
const processDetailsSelect = `
	SELECT
		pr.id AS process_id,
		pr.stage,
		pr.status,
		pr.process_type,
		pr.resolution,
		pr.complaint_notes,
		pr.confirmed_at,
		pr.version,
		pr.created_at AS process_created_at,
		pr.updated_at AS process_updated_at,
		p.id AS product_id,
		p.name AS product_name,
		p.length_cm,
		p.width_cm,
		p.height_cm,
		p.weight_grams,
		p.fragile,
		p.lithium,
		p.hazardous,
		p.refrigerated,
		p.valuable,
		p.oversized,
		p.flow_type,
		p.created_at AS product_created_at,
		t.id AS transport_id,
		t.driver_name,
		t.license_number,
		t.vehicle_type,
		t.vehicle_plate,
		t.driver_photo,
		t.notes AS transport_notes,
		t.created_at AS transport_created_at,
		d.id AS delivery_id,
		d.origin_place,
		d.destination_place,
		d.departure_time,
		d.delivery_notes,
		d.completed_at AS delivery_completed_at
	FROM processes pr
	JOIN products p ON p.id = pr.product_id
	LEFT JOIN transports t ON t.id = pr.transport_id
	LEFT JOIN deliveries d ON d.id = pr.delivery_id
`

type processDetailsRow struct {
	ProcessID        uuid.UUID  `gorm:"column:process_id"`
	Stage            int        `gorm:"column:stage"`
	Status           int        `gorm:"column:status"`
	ProcessType      int        `gorm:"column:process_type"`
	Resolution       int        `gorm:"column:resolution"`
	ComplaintNotes   string     `gorm:"column:complaint_notes"`
	ConfirmedAt      *time.Time `gorm:"column:confirmed_at"`
	Version          int        `gorm:"column:version"`
	ProcessCreatedAt time.Time  `gorm:"column:process_created_at"`
	ProcessUpdatedAt time.Time  `gorm:"column:process_updated_at"`

	ProductID        uuid.UUID `gorm:"column:product_id"`
	ProductName      string    `gorm:"column:product_name"`
	LengthCm         float64   `gorm:"column:length_cm"`
	WidthCm          float64   `gorm:"column:width_cm"`
	HeightCm         float64   `gorm:"column:height_cm"`
	WeightGrams      int       `gorm:"column:weight_grams"`
	Fragile          bool      `gorm:"column:fragile"`
	Lithium          bool      `gorm:"column:lithium"`
	Hazardous        bool      `gorm:"column:hazardous"`
	Refrigerated     bool      `gorm:"column:refrigerated"`
	Valuable         bool      `gorm:"column:valuable"`
	Oversized        bool      `gorm:"column:oversized"`
	FlowType         int       `gorm:"column:flow_type"`
	ProductCreatedAt time.Time `gorm:"column:product_created_at"`

	TransportID        *uuid.UUID `gorm:"column:transport_id"`
	DriverName         *string    `gorm:"column:driver_name"`
	LicenseNumber      *string    `gorm:"column:license_number"`
	VehicleType        *int       `gorm:"column:vehicle_type"`
	VehiclePlate       *string    `gorm:"column:vehicle_plate"`
	DriverPhoto        *string    `gorm:"column:driver_photo"`
	TransportNotes     *string    `gorm:"column:transport_notes"`
	TransportCreatedAt *time.Time `gorm:"column:transport_created_at"`

	DeliveryID          *uuid.UUID `gorm:"column:delivery_id"`
	OriginPlace         *string    `gorm:"column:origin_place"`
	DestinationPlace    *string    `gorm:"column:destination_place"`
	DepartureTime       *time.Time `gorm:"column:departure_time"`
	DeliveryNotes       *string    `gorm:"column:delivery_notes"`
	DeliveryCompletedAt *time.Time `gorm:"column:delivery_completed_at"`
}

// processDetailsLoader turns joined rows into ProcessDetails and batches the
// pdf record lookup so list queries cost two statements, not N+1.
type processDetailsLoader struct {
	db *gorm.DB
}

func (l processDetailsLoader) load(ctx context.Context, where string, args ...any) ([]ProcessDetails, error) {
	var rows []processDetailsRow

	query := processDetailsSelect + where + "\n\tORDER BY pr.created_at, pr.id"
	if err := l.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []ProcessDetails{}, nil
	}

	processIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		processIDs = append(processIDs, row.ProcessID)
	}

	pdfsByProcess, err := l.loadPdfRecords(ctx, processIDs)
	if err != nil {
		return nil, err
	}

	details := make([]ProcessDetails, 0, len(rows))
	for _, row := range rows {
		detail, buildErr := buildProcessDetails(row, pdfsByProcess[row.ProcessID])
		if buildErr != nil {
			return nil, buildErr
		}
		details = append(details, detail)
	}

	return details, nil
}

type pdfRecordRow struct {
	ID          uuid.UUID `gorm:"column:id"`
	ProcessID   uuid.UUID `gorm:"column:process_id"`
	PdfType     int       `gorm:"column:pdf_type"`
	FileName    string    `gorm:"column:file_name"`
	FilePath    string    `gorm:"column:file_path"`
	GeneratedAt time.Time `gorm:"column:generated_at"`
}

func (l processDetailsLoader) loadPdfRecords(
	ctx context.Context, processIDs []uuid.UUID,
) (map[uuid.UUID][]PdfRecordView, error) {
	var rows []pdfRecordRow

	err := l.db.WithContext(ctx).Raw(`
		SELECT
			id,
			process_id,
			pdf_type,
			file_name,
			file_path,
			generated_at
		FROM pdf_records
		WHERE process_id IN ?
		ORDER BY generated_at DESC, id
	`, processIDs).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byProcess := make(map[uuid.UUID][]PdfRecordView, len(processIDs))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		byProcess[row.ProcessID] = append(byProcess[row.ProcessID], PdfRecordView{
			ID:          id,
			PdfType:     report.PdfType(row.PdfType),
			FileName:    row.FileName,
			FilePath:    row.FilePath,
			GeneratedAt: row.GeneratedAt,
		})
	}

	return byProcess, nil
}

// buildProcessDetails restores the aggregate from the row so the routing hint
// comes from the same NextStep logic the write side uses.
func buildProcessDetails(row processDetailsRow, pdfs []PdfRecordView) (ProcessDetails, error) {
	processID, err := kernel.UUIDFromBytes(row.ProcessID[:])
	if err != nil {
		return ProcessDetails{}, err
	}

	productID, err := kernel.UUIDFromBytes(row.ProductID[:])
	if err != nil {
		return ProcessDetails{}, err
	}

	var transportID, deliveryID *kernel.UUID
	if row.TransportID != nil {
		id, idErr := kernel.UUIDFromBytes(row.TransportID[:])
		if idErr != nil {
			return ProcessDetails{}, idErr
		}
		transportID = &id
	}
	if row.DeliveryID != nil {
		id, idErr := kernel.UUIDFromBytes(row.DeliveryID[:])
		if idErr != nil {
			return ProcessDetails{}, idErr
		}
		deliveryID = &id
	}

	proc, err := process.RestoreProcess(
		processID, productID, transportID, deliveryID,
		process.Stage(row.Stage), process.Status(row.Status),
		process.ProcessType(row.ProcessType), process.Resolution(row.Resolution),
		row.ComplaintNotes, row.ConfirmedAt,
		row.Version, row.ProcessCreatedAt, row.ProcessUpdatedAt,
	)
	if err != nil {
		return ProcessDetails{}, err
	}

	dimensions, err := product.NewDimensions(row.LengthCm, row.WidthCm, row.HeightCm)
	if err != nil {
		return ProcessDetails{}, err
	}

	if pdfs == nil {
		pdfs = []PdfRecordView{}
	}

	details := ProcessDetails{
		Process: ProcessView{
			ID:             processID,
			Stage:          proc.Stage(),
			Status:         proc.Status(),
			ProcessType:    proc.ProcessType(),
			Resolution:     proc.Resolution(),
			ComplaintNotes: proc.ComplaintNotes(),
			ConfirmedAt:    proc.ConfirmedAt(),
			NextStep:       proc.NextStep(),
			Version:        proc.Version(),
			CreatedAt:      proc.CreatedAt(),
			UpdatedAt:      proc.UpdatedAt(),
		},
		Product: ProductView{
			ID:          productID,
			Name:        row.ProductName,
			Dimensions:  dimensions,
			WeightGrams: row.WeightGrams,
			Regulations: product.Regulations{
				Fragile:      row.Fragile,
				Lithium:      row.Lithium,
				Hazardous:    row.Hazardous,
				Refrigerated: row.Refrigerated,
				Valuable:     row.Valuable,
				Oversized:    row.Oversized,
			},
			FlowType:  product.FlowType(row.FlowType),
			CreatedAt: row.ProductCreatedAt,
		},
		PdfRecords: pdfs,
	}

	if transportID != nil && row.DriverName != nil {
		details.Transport = &TransportView{
			ID:            *transportID,
			DriverName:    *row.DriverName,
			LicenseNumber: deref(row.LicenseNumber),
			VehicleType:   transport.VehicleType(derefInt(row.VehicleType)),
			VehiclePlate:  deref(row.VehiclePlate),
			DriverPhoto:   deref(row.DriverPhoto),
			Notes:         deref(row.TransportNotes),
			CreatedAt:     derefTime(row.TransportCreatedAt),
		}
	}

	if deliveryID != nil && row.OriginPlace != nil {
		details.Delivery = &DeliveryView{
			ID:               *deliveryID,
			OriginPlace:      *row.OriginPlace,
			DestinationPlace: deref(row.DestinationPlace),
			DepartureTime:    derefTime(row.DepartureTime),
			DeliveryNotes:    deref(row.DeliveryNotes),
			CompletedAt:      derefTime(row.DeliveryCompletedAt),
		}
	}

	return details, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
