package cmd

import (
	"log/slog"

	httpadapter "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterProductCommandHandler() commands.RegisterProductCommandHandler {
	var f commands.RegistrationUoWFactory = FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterProductCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitTransportCommandHandler() commands.SubmitTransportCommandHandler {
	var f commands.TransportUoWFactory = FuncTransportUoWFactory(func() commands.TransportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitTransportCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitDeliveryCommandHandler() commands.SubmitDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveInboundCommandHandler() commands.ResolveInboundCommandHandler {
	return commands.NewResolveInboundCommandHandler(c.processUoWFactory())
}

func (c *CompositionRoot) CreateCompleteProcessCommandHandler() commands.CompleteProcessCommandHandler {
	return commands.NewCompleteProcessCommandHandler(c.processUoWFactory())
}

func (c *CompositionRoot) CreatePauseProcessCommandHandler() commands.PauseProcessCommandHandler {
	return commands.NewPauseProcessCommandHandler(c.processUoWFactory())
}

func (c *CompositionRoot) CreateResumeProcessCommandHandler() commands.ResumeProcessCommandHandler {
	return commands.NewResumeProcessCommandHandler(c.processUoWFactory())
}

func (c *CompositionRoot) CreateRecordGeneratedPdfCommandHandler() commands.RecordGeneratedPdfCommandHandler {
	var f commands.PdfUoWFactory = FuncPdfUoWFactory(func() commands.PdfUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordGeneratedPdfCommandHandler(f)
}

func (c *CompositionRoot) CreateGetProcessQueryHandler() queries.GetProcessQueryHandler {
	return queries.NewGetProcessQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProcessesQueryHandler() queries.GetAllProcessesQueryHandler {
	return queries.NewGetAllProcessesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveProcessesQueryHandler() queries.GetActiveProcessesQueryHandler {
	return queries.NewGetActiveProcessesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPdfHistoryQueryHandler() queries.GetPdfHistoryQueryHandler {
	return queries.NewGetPdfHistoryQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.Commands{
			RegisterProduct: c.CreateRegisterProductCommandHandler(),
			SubmitTransport: c.CreateSubmitTransportCommandHandler(),
			SubmitDelivery:  c.CreateSubmitDeliveryCommandHandler(),
			ResolveInbound:  c.CreateResolveInboundCommandHandler(),
			CompleteProcess: c.CreateCompleteProcessCommandHandler(),
			PauseProcess:    c.CreatePauseProcessCommandHandler(),
			ResumeProcess:   c.CreateResumeProcessCommandHandler(),
			RecordPdf:       c.CreateRecordGeneratedPdfCommandHandler(),
		},
		httpadapter.Queries{
			GetProcess:         c.CreateGetProcessQueryHandler(),
			GetAllProcesses:    c.CreateGetAllProcessesQueryHandler(),
			GetActiveProcesses: c.CreateGetActiveProcessesQueryHandler(),
			GetStats:           c.CreateGetStatsQueryHandler(),
			GetPdfHistory:      c.CreateGetPdfHistoryQueryHandler(),
		},
	)
}

// CreateStatsSnapshotJob wires the stats query into the periodic snapshot job.
func (c *CompositionRoot) CreateStatsSnapshotJob(logger *slog.Logger) *jobs.StatsSnapshotJob {
	return jobs.NewStatsSnapshotJob(c.CreateGetStatsQueryHandler(), logger)
}

func (c *CompositionRoot) processUoWFactory() commands.ProcessUoWFactory {
	return FuncProcessUoWFactory(func() commands.ProcessUoW {
		return c.uowFactory.Create()
	})
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncTransportUoWFactory func() commands.TransportUoW

func (f FuncTransportUoWFactory) Create() commands.TransportUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncProcessUoWFactory func() commands.ProcessUoW

func (f FuncProcessUoWFactory) Create() commands.ProcessUoW {
	return f()
}

type FuncPdfUoWFactory func() commands.PdfUoW

func (f FuncPdfUoWFactory) Create() commands.PdfUoW {
	return f()
}
