package commands_test

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/domain/model/transport"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockTransportRepository struct{ mock.Mock }

func (m *MockTransportRepository) Add(ctx context.Context, t *transport.Transport) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransportRepository) Get(ctx context.Context, id kernel.UUID) (*transport.Transport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transport.Transport), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockProcessRepository struct{ mock.Mock }

func (m *MockProcessRepository) Add(ctx context.Context, p *process.Process) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProcessRepository) Update(ctx context.Context, p *process.Process) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProcessRepository) Get(ctx context.Context, id kernel.UUID) (*process.Process, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*process.Process), args.Error(1)
}

type MockPdfRecordRepository struct{ mock.Mock }

func (m *MockPdfRecordRepository) Add(ctx context.Context, r *report.PdfRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPdfRecordRepository) GetByProcess(
	ctx context.Context, processID kernel.UUID,
) ([]*report.PdfRecord, error) {
	args := m.Called(ctx, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.PdfRecord), args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRegistrationUoW struct{ mockTx }

func (m *MockRegistrationUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockRegistrationUoW) ProcessRepository() ports.ProcessRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessRepository)
}

type MockRegistrationUoWFactory struct{ mock.Mock }

func (m *MockRegistrationUoWFactory) Create() commands.RegistrationUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistrationUoW)
}

type MockTransportUoW struct{ mockTx }

func (m *MockTransportUoW) TransportRepository() ports.TransportRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportRepository)
}

func (m *MockTransportUoW) ProcessRepository() ports.ProcessRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessRepository)
}

type MockTransportUoWFactory struct{ mock.Mock }

func (m *MockTransportUoWFactory) Create() commands.TransportUoW {
	args := m.Called()
	return args.Get(0).(commands.TransportUoW)
}

type MockDeliveryUoW struct{ mockTx }

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockDeliveryUoW) ProcessRepository() ports.ProcessRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockProcessUoW struct{ mockTx }

func (m *MockProcessUoW) ProcessRepository() ports.ProcessRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessRepository)
}

type MockProcessUoWFactory struct{ mock.Mock }

func (m *MockProcessUoWFactory) Create() commands.ProcessUoW {
	args := m.Called()
	return args.Get(0).(commands.ProcessUoW)
}

type MockPdfUoW struct{ mockTx }

func (m *MockPdfUoW) ProcessRepository() ports.ProcessRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessRepository)
}

func (m *MockPdfUoW) PdfRecordRepository() ports.PdfRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.PdfRecordRepository)
}

type MockPdfUoWFactory struct{ mock.Mock }

func (m *MockPdfUoWFactory) Create() commands.PdfUoW {
	args := m.Called()
	return args.Get(0).(commands.PdfUoW)
}
