package http

import (
	"time"

	"warehouse/internal/core/application/usecases/queries"
)

// Request bodies.

type registerProcessRequest struct {
	Name        string             `json:"name"`
	LengthCm    float64            `json:"lengthCm"`
	WidthCm     float64            `json:"widthCm"`
	HeightCm    float64            `json:"heightCm"`
	WeightGrams int                `json:"weightGrams"`
	Regulations regulationsPayload `json:"regulations"`
	FlowType    string             `json:"flowType"`
}

type regulationsPayload struct {
	Fragile      bool `json:"fragile"`
	Lithium      bool `json:"lithium"`
	Hazardous    bool `json:"hazardous"`
	Refrigerated bool `json:"refrigerated"`
	Valuable     bool `json:"valuable"`
	Oversized    bool `json:"oversized"`
}

type submitTransportRequest struct {
	DriverName    string `json:"driverName"`
	LicenseNumber string `json:"licenseNumber"`
	VehicleType   string `json:"vehicleType"`
	VehiclePlate  string `json:"vehiclePlate"`
	DriverPhoto   string `json:"driverPhoto,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type submitDeliveryRequest struct {
	OriginPlace      string    `json:"originPlace"`
	DestinationPlace string    `json:"destinationPlace"`
	DepartureTime    time.Time `json:"departureTime"`
	DeliveryNotes    string    `json:"deliveryNotes,omitempty"`
}

type resolveInboundRequest struct {
	Resolution string `json:"resolution"`
	Notes      string `json:"notes,omitempty"`
}

type recordPdfRequest struct {
	ProcessID string `json:"processId"`
	PdfType   string `json:"pdfType"`
	FileName  string `json:"fileName"`
	FilePath  string `json:"filePath,omitempty"`
}

// Response bodies.

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type processResponse struct {
	ID             string     `json:"id"`
	Stage          int        `json:"stage"`
	Status         string     `json:"status"`
	ProcessType    string     `json:"processType"`
	Resolution     string     `json:"resolution,omitempty"`
	ComplaintNotes string     `json:"complaintNotes,omitempty"`
	ConfirmedAt    *time.Time `json:"confirmedAt,omitempty"`
	NextStep       string     `json:"nextStep"`
	Version        int        `json:"version"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type productResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	LengthCm    float64            `json:"lengthCm"`
	WidthCm     float64            `json:"widthCm"`
	HeightCm    float64            `json:"heightCm"`
	WeightGrams int                `json:"weightGrams"`
	WeightKg    float64            `json:"weightKg"`
	Regulations regulationsPayload `json:"regulations"`
	FlowType    string             `json:"flowType"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type transportResponse struct {
	ID            string    `json:"id"`
	DriverName    string    `json:"driverName"`
	LicenseNumber string    `json:"licenseNumber"`
	VehicleType   string    `json:"vehicleType"`
	VehiclePlate  string    `json:"vehiclePlate"`
	DriverPhoto   string    `json:"driverPhoto,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type deliveryResponse struct {
	ID               string    `json:"id"`
	OriginPlace      string    `json:"originPlace"`
	DestinationPlace string    `json:"destinationPlace"`
	DepartureTime    time.Time `json:"departureTime"`
	DeliveryNotes    string    `json:"deliveryNotes,omitempty"`
	CompletedAt      time.Time `json:"completedAt"`
}

type pdfRecordResponse struct {
	ID          string    `json:"id"`
	PdfType     string    `json:"pdfType"`
	FileName    string    `json:"fileName"`
	FilePath    string    `json:"filePath,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type processDetailsResponse struct {
	Process    processResponse     `json:"process"`
	Product    productResponse     `json:"product"`
	Transport  *transportResponse  `json:"transport,omitempty"`
	Delivery   *deliveryResponse   `json:"delivery,omitempty"`
	PdfRecords []pdfRecordResponse `json:"pdfRecords"`
}

type statsResponse struct {
	TotalProducts   int `json:"totalProducts"`
	InTransit       int `json:"inTransit"`
	Delivered       int `json:"delivered"`
	ActiveProcesses int `json:"activeProcesses"`
}

func toProcessDetailsResponse(details queries.ProcessDetails) processDetailsResponse {
	response := processDetailsResponse{
		Process: processResponse{
			ID:             details.Process.ID.String(),
			Stage:          int(details.Process.Stage),
			Status:         details.Process.Status.String(),
			ProcessType:    details.Process.ProcessType.String(),
			Resolution:     details.Process.Resolution.String(),
			ComplaintNotes: details.Process.ComplaintNotes,
			ConfirmedAt:    details.Process.ConfirmedAt,
			NextStep:       details.Process.NextStep.String(),
			Version:        details.Process.Version,
			CreatedAt:      details.Process.CreatedAt,
			UpdatedAt:      details.Process.UpdatedAt,
		},
		Product: productResponse{
			ID:          details.Product.ID.String(),
			Name:        details.Product.Name,
			LengthCm:    details.Product.Dimensions.Length(),
			WidthCm:     details.Product.Dimensions.Width(),
			HeightCm:    details.Product.Dimensions.Height(),
			WeightGrams: details.Product.WeightGrams,
			WeightKg:    details.Product.WeightKg(),
			Regulations: regulationsPayload{
				Fragile:      details.Product.Regulations.Fragile,
				Lithium:      details.Product.Regulations.Lithium,
				Hazardous:    details.Product.Regulations.Hazardous,
				Refrigerated: details.Product.Regulations.Refrigerated,
				Valuable:     details.Product.Regulations.Valuable,
				Oversized:    details.Product.Regulations.Oversized,
			},
			FlowType:  details.Product.FlowType.String(),
			CreatedAt: details.Product.CreatedAt,
		},
		PdfRecords: make([]pdfRecordResponse, 0, len(details.PdfRecords)),
	}

	if details.Transport != nil {
		response.Transport = &transportResponse{
			ID:            details.Transport.ID.String(),
			DriverName:    details.Transport.DriverName,
			LicenseNumber: details.Transport.LicenseNumber,
			VehicleType:   details.Transport.VehicleType.String(),
			VehiclePlate:  details.Transport.VehiclePlate,
			DriverPhoto:   details.Transport.DriverPhoto,
			Notes:         details.Transport.Notes,
			CreatedAt:     details.Transport.CreatedAt,
		}
	}

	if details.Delivery != nil {
		response.Delivery = &deliveryResponse{
			ID:               details.Delivery.ID.String(),
			OriginPlace:      details.Delivery.OriginPlace,
			DestinationPlace: details.Delivery.DestinationPlace,
			DepartureTime:    details.Delivery.DepartureTime,
			DeliveryNotes:    details.Delivery.DeliveryNotes,
			CompletedAt:      details.Delivery.CompletedAt,
		}
	}

	for _, record := range details.PdfRecords {
		response.PdfRecords = append(response.PdfRecords, pdfRecordResponse{
			ID:          record.ID.String(),
			PdfType:     record.PdfType.String(),
			FileName:    record.FileName,
			FilePath:    record.FilePath,
			GeneratedAt: record.GeneratedAt,
		})
	}

	return response
}

func toProcessDetailsResponses(details []queries.ProcessDetails) []processDetailsResponse {
	responses := make([]processDetailsResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, toProcessDetailsResponse(d))
	}
	return responses
}
