// Package http exposes the process tracker over a REST API built on echo.
// Handlers translate JSON payloads into commands and queries; mutating
// routes answer with the freshly composed process details so clients never
// need a follow-up read.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/domain/model/transport"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/reports"

	"github.com/labstack/echo/v4"
)

// Read-side dependencies of the server. The SQL-backed query handlers
// satisfy these; tests substitute readers over the in-memory store.
type (
	// ProcessDetailsReader loads one process with its full context.
	ProcessDetailsReader interface {
		Handle(ctx context.Context, query queries.GetProcessQuery) (queries.ProcessDetails, error)
	}

	// AllProcessesReader lists every process.
	AllProcessesReader interface {
		Handle(ctx context.Context, query queries.GetAllProcessesQuery) ([]queries.ProcessDetails, error)
	}

	// ActiveProcessesReader lists processes still being worked.
	ActiveProcessesReader interface {
		Handle(ctx context.Context, query queries.GetActiveProcessesQuery) ([]queries.ProcessDetails, error)
	}

	// StatsReader computes the dashboard counters.
	StatsReader interface {
		Handle(ctx context.Context, query queries.GetStatsQuery) (queries.GetStatsQueryResponse, error)
	}

	// PdfHistoryReader lists processes that own generated documents.
	PdfHistoryReader interface {
		Handle(ctx context.Context, query queries.GetPdfHistoryQuery) ([]queries.ProcessDetails, error)
	}
)

// Commands bundles the write-side handlers the server dispatches to.
type Commands struct {
	RegisterProduct commands.RegisterProductCommandHandler
	SubmitTransport commands.SubmitTransportCommandHandler
	SubmitDelivery  commands.SubmitDeliveryCommandHandler
	ResolveInbound  commands.ResolveInboundCommandHandler
	CompleteProcess commands.CompleteProcessCommandHandler
	PauseProcess    commands.PauseProcessCommandHandler
	ResumeProcess   commands.ResumeProcessCommandHandler
	RecordPdf       commands.RecordGeneratedPdfCommandHandler
}

// Queries bundles the read-side handlers the server dispatches to.
type Queries struct {
	GetProcess         ProcessDetailsReader
	GetAllProcesses    AllProcessesReader
	GetActiveProcesses ActiveProcessesReader
	GetStats           StatsReader
	GetPdfHistory      PdfHistoryReader
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(c Commands, q Queries) *Server {
	return &Server{commands: c, queries: q}
}

// RegisterRoutes mounts every route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/processes", s.RegisterProcess)
	api.GET("/processes", s.GetProcesses)
	api.GET("/processes/active", s.GetActiveProcesses)
	api.GET("/processes/:id", s.GetProcess)
	api.POST("/processes/:id/transport", s.SubmitTransport)
	api.POST("/processes/:id/delivery", s.SubmitDelivery)
	api.POST("/processes/:id/confirmation", s.ResolveInbound)
	api.POST("/processes/:id/complete", s.CompleteProcess)
	api.POST("/processes/:id/pause", s.PauseProcess)
	api.POST("/processes/:id/resume", s.ResumeProcess)
	api.GET("/processes/:id/reports/warehouse", s.WarehouseReport)
	api.GET("/processes/:id/reports/entry", s.EntryReport)
	api.GET("/processes/:id/reports/transport", s.TransportReport)
	api.GET("/processes/:id/reports/transport-invoice", s.TransportInvoice)
	api.GET("/processes/:id/reports/invoice", s.ServiceInvoice)
	api.POST("/pdfs", s.RecordPdf)
	api.GET("/pdfs/history", s.GetPdfHistory)
	api.GET("/stats", s.GetStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// RegisterProcess handles POST /api/v1/processes - registers goods and opens
// the process that tracks them.
func (s *Server) RegisterProcess(ctx echo.Context) error {
	var body registerProcessRequest
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, err)
	}

	flowType, err := product.FlowTypeFromString(body.FlowType)
	if err != nil {
		return writeError(ctx, err)
	}

	processID := kernel.NewUUID()
	cmd, err := commands.NewRegisterProductCommand(
		kernel.NewUUID(), processID, body.Name,
		body.LengthCm, body.WidthCm, body.HeightCm,
		body.WeightGrams,
		product.Regulations{
			Fragile:      body.Regulations.Fragile,
			Lithium:      body.Regulations.Lithium,
			Hazardous:    body.Regulations.Hazardous,
			Refrigerated: body.Regulations.Refrigerated,
			Valuable:     body.Regulations.Valuable,
			Oversized:    body.Regulations.Oversized,
		},
		flowType,
	)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	if err := s.commands.RegisterProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDetails(ctx, http.StatusCreated, processID)
}

// SubmitTransport handles POST /api/v1/processes/:id/transport - event 1.
func (s *Server) SubmitTransport(ctx echo.Context) error {
	processID, err := parseProcessID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body submitTransportRequest
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, err)
	}

	vehicleType, err := transport.VehicleTypeFromString(body.VehicleType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitTransportCommand(
		processID, kernel.NewUUID(),
		body.DriverName, body.LicenseNumber, vehicleType,
		body.VehiclePlate, body.DriverPhoto, body.Notes,
	)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	if _, err := s.commands.SubmitTransport.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDetails(ctx, http.StatusOK, processID)
}

// SubmitDelivery handles POST /api/v1/processes/:id/delivery - event 3 of an
// outbound process.
func (s *Server) SubmitDelivery(ctx echo.Context) error {
	processID, err := parseProcessID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body submitDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, err)
	}

	cmd, err := commands.NewSubmitDeliveryCommand(
		processID, kernel.NewUUID(),
		body.OriginPlace, body.DestinationPlace,
		body.DepartureTime, body.DeliveryNotes,
	)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	if err := s.commands.SubmitDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDetails(ctx, http.StatusOK, processID)
}

// ResolveInbound handles POST /api/v1/processes/:id/confirmation - event 3 of
// an inbound process, either confirming receipt or filing a complaint.
func (s *Server) ResolveInbound(ctx echo.Context) error {
	processID, err := parseProcessID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body resolveInboundRequest
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, err)
	}

	resolution, err := process.ResolutionFromString(body.Resolution)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewResolveInboundCommand(processID, resolution, body.Notes)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	if err := s.commands.ResolveInbound.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDetails(ctx, http.StatusOK, processID)
}

// CompleteProcess handles POST /api/v1/processes/:id/complete - event 4.
func (s *Server) CompleteProcess(ctx echo.Context) error {
	return handleLifecycle(s, ctx, commands.NewCompleteProcessCommand, s.commands.CompleteProcess.Handle)
}

// PauseProcess handles POST /api/v1/processes/:id/pause.
func (s *Server) PauseProcess(ctx echo.Context) error {
	return handleLifecycle(s, ctx, commands.NewPauseProcessCommand, s.commands.PauseProcess.Handle)
}

// ResumeProcess handles POST /api/v1/processes/:id/resume.
func (s *Server) ResumeProcess(ctx echo.Context) error {
	return handleLifecycle(s, ctx, commands.NewResumeProcessCommand, s.commands.ResumeProcess.Handle)
}

// handleLifecycle runs the shared flow of the body-less process transitions.
func handleLifecycle[C any](
	s *Server,
	ctx echo.Context,
	newCommand func(kernel.UUID) (C, error),
	handle func(context.Context, C) error,
) error {
	processID, err := parseProcessID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := newCommand(processID)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	if err := handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDetails(ctx, http.StatusOK, processID)
}

// GetProcess handles GET /api/v1/processes/:id.
func (s *Server) GetProcess(ctx echo.Context) error {
	processID, err := parseProcessID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.respondWithDetails(ctx, http.StatusOK, processID)
}

// GetProcesses handles GET /api/v1/processes.
func (s *Server) GetProcesses(ctx echo.Context) error {
	details, err := s.queries.GetAllProcesses.Handle(ctx.Request().Context(), queries.NewGetAllProcessesQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProcessDetailsResponses(details))
}

// GetActiveProcesses handles GET /api/v1/processes/active.
func (s *Server) GetActiveProcesses(ctx echo.Context) error {
	details, err := s.queries.GetActiveProcesses.Handle(ctx.Request().Context(), queries.NewGetActiveProcessesQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProcessDetailsResponses(details))
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.queries.GetStats.Handle(ctx.Request().Context(), queries.NewGetStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, statsResponse{
		TotalProducts:   stats.TotalProducts,
		InTransit:       stats.InTransit,
		Delivered:       stats.Delivered,
		ActiveProcesses: stats.ActiveProcesses,
	})
}

// WarehouseReport handles GET /api/v1/processes/:id/reports/warehouse.
func (s *Server) WarehouseReport(ctx echo.Context) error {
	details, err := s.loadDetails(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	projection := reports.NewWarehouseReport(details, time.Now().UTC())
	s.recordGeneratedPdf(ctx, details.Process.ID, projection.PdfType, projection.FileName)
	return ctx.JSON(http.StatusOK, projection)
}

// EntryReport handles GET /api/v1/processes/:id/reports/entry.
func (s *Server) EntryReport(ctx echo.Context) error {
	details, err := s.loadDetails(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	projection, err := reports.NewEntryReport(details, time.Now().UTC())
	if err != nil {
		return writeError(ctx, err)
	}

	s.recordGeneratedPdf(ctx, details.Process.ID, projection.PdfType, projection.FileName)
	return ctx.JSON(http.StatusOK, projection)
}

// TransportReport handles GET /api/v1/processes/:id/reports/transport.
func (s *Server) TransportReport(ctx echo.Context) error {
	details, err := s.loadDetails(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	projection := reports.NewTransportReport(details, time.Now().UTC())
	s.recordGeneratedPdf(ctx, details.Process.ID, projection.PdfType, projection.FileName)
	return ctx.JSON(http.StatusOK, projection)
}

// TransportInvoice handles GET /api/v1/processes/:id/reports/transport-invoice.
func (s *Server) TransportInvoice(ctx echo.Context) error {
	details, err := s.loadDetails(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	projection, err := reports.NewTransportInvoice(details, time.Now().UTC())
	if err != nil {
		return writeError(ctx, err)
	}

	s.recordGeneratedPdf(ctx, details.Process.ID, projection.PdfType, projection.FileName)
	return ctx.JSON(http.StatusOK, projection)
}

// ServiceInvoice handles GET /api/v1/processes/:id/reports/invoice.
func (s *Server) ServiceInvoice(ctx echo.Context) error {
	details, err := s.loadDetails(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	projection := reports.NewServiceInvoice(details, time.Now().UTC())
	s.recordGeneratedPdf(ctx, details.Process.ID, projection.PdfType, projection.FileName)
	return ctx.JSON(http.StatusOK, projection)
}

// RecordPdf handles POST /api/v1/pdfs - appends a pdf audit record.
func (s *Server) RecordPdf(ctx echo.Context) error {
	var body recordPdfRequest
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, err)
	}

	processID, err := kernel.UUIDFromString(body.ProcessID)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	pdfType, err := report.PdfTypeFromString(body.PdfType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRecordGeneratedPdfCommand(
		kernel.NewUUID(), processID, pdfType, body.FileName, body.FilePath,
	)
	if err != nil {
		return writeBadRequest(ctx, err)
	}

	if err := s.commands.RecordPdf.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDetails(ctx, http.StatusCreated, processID)
}

// GetPdfHistory handles GET /api/v1/pdfs/history.
func (s *Server) GetPdfHistory(ctx echo.Context) error {
	details, err := s.queries.GetPdfHistory.Handle(ctx.Request().Context(), queries.NewGetPdfHistoryQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProcessDetailsResponses(details))
}

// parseProcessID reads the :id path parameter. Malformed identifiers surface
// as validation errors so the response is a 400, not a 500.
func parseProcessID(ctx echo.Context) (kernel.UUID, error) {
	processID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("processId", err)
	}
	return processID, nil
}

// loadDetails resolves the :id path parameter and loads the process context.
func (s *Server) loadDetails(ctx echo.Context) (queries.ProcessDetails, error) {
	processID, err := parseProcessID(ctx)
	if err != nil {
		return queries.ProcessDetails{}, err
	}

	query, err := queries.NewGetProcessQuery(processID)
	if err != nil {
		return queries.ProcessDetails{}, err
	}

	return s.queries.GetProcess.Handle(ctx.Request().Context(), query)
}

// respondWithDetails answers a mutating request with the freshly composed
// process details so clients see the state their call produced.
func (s *Server) respondWithDetails(ctx echo.Context, status int, processID kernel.UUID) error {
	query, err := queries.NewGetProcessQuery(processID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.queries.GetProcess.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toProcessDetailsResponse(details))
}

// recordGeneratedPdf appends the audit record for a produced report.
// Best effort: the report response already went together with the projection,
// so a failed audit write is logged, not surfaced.
func (s *Server) recordGeneratedPdf(ctx echo.Context, processID kernel.UUID, pdfType report.PdfType, fileName string) {
	cmd, err := commands.NewRecordGeneratedPdfCommand(kernel.NewUUID(), processID, pdfType, fileName, "")
	if err != nil {
		slog.Warn("pdf audit record not created", "processId", processID.String(), "error", err)
		return
	}

	if err := s.commands.RecordPdf.Handle(ctx.Request().Context(), cmd); err != nil {
		slog.Warn("pdf audit record not created", "processId", processID.String(), "error", err)
	}
}
