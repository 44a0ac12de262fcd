package inmemory

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/domain/model/transport"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was
// never called or the unit of work already finished.
var ErrNoActiveTransaction = errors.New("no active transaction")

// InMemoryUnitOfWorkFactory creates unit of work instances over a shared store.
type InMemoryUnitOfWorkFactory struct {
	store *Store
}

// NewInMemoryUnitOfWorkFactory creates a factory bound to the given store.
func NewInMemoryUnitOfWorkFactory(store *Store) *InMemoryUnitOfWorkFactory {
	return &InMemoryUnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work. Each business operation gets its own
// instance; instances are not safe for concurrent use.
func (f *InMemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &InMemoryUnitOfWork{
		store:          f.store,
		products:       make(map[uuid.UUID]*product.Product),
		transports:     make(map[uuid.UUID]*transport.Transport),
		deliveries:     make(map[uuid.UUID]*delivery.Delivery),
		processAdds:    make(map[uuid.UUID]*process.Process),
		processUpdates: make(map[uuid.UUID]stagedProcessUpdate),
	}
}

// stagedProcessUpdate remembers the version the aggregate was loaded with so
// Commit can re-run the optimistic check against the store.
type stagedProcessUpdate struct {
	aggregate     *process.Process
	loadedVersion int
}

// InMemoryUnitOfWork stages writes in overlay maps and merges them into the
// store on Commit. Reads within the unit of work see the staged writes.
type InMemoryUnitOfWork struct {
	store  *Store
	active bool

	products       map[uuid.UUID]*product.Product
	transports     map[uuid.UUID]*transport.Transport
	deliveries     map[uuid.UUID]*delivery.Delivery
	pdfRecords     []*report.PdfRecord
	processAdds    map[uuid.UUID]*process.Process
	processUpdates map[uuid.UUID]stagedProcessUpdate
}

// Begin starts the unit of work. Calling Begin on an active unit is a no-op.
func (uow *InMemoryUnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit merges the staged writes into the store atomically. Version checks
// for process updates run again under the store lock, so two units racing
// over the same process cannot both win.
func (uow *InMemoryUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()

	for id, staged := range uow.processUpdates {
		current, ok := uow.store.processes[id]
		if !ok {
			return errs.NewObjectNotFoundError("process", staged.aggregate.ID().String())
		}
		if current.Version() != staged.loadedVersion {
			return errs.NewVersionConflictError("process", staged.aggregate.ID().String())
		}
	}

	for id, p := range uow.products {
		uow.store.products[id] = p
	}
	for id, t := range uow.transports {
		uow.store.transports[id] = t
	}
	for id, d := range uow.deliveries {
		uow.store.deliveries[id] = d
	}
	for id, p := range uow.processAdds {
		uow.store.processes[id] = p
	}
	for id, staged := range uow.processUpdates {
		uow.store.processes[id] = staged.aggregate
	}
	for _, record := range uow.pdfRecords {
		processID := record.ProcessID().Bytes()
		uow.store.pdfRecords[processID] = append(uow.store.pdfRecords[processID], record)
	}

	uow.discard()
	return nil
}

// Rollback discards the staged writes.
func (uow *InMemoryUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.discard()
	return nil
}

func (uow *InMemoryUnitOfWork) discard() {
	uow.active = false
	uow.products = make(map[uuid.UUID]*product.Product)
	uow.transports = make(map[uuid.UUID]*transport.Transport)
	uow.deliveries = make(map[uuid.UUID]*delivery.Delivery)
	uow.pdfRecords = nil
	uow.processAdds = make(map[uuid.UUID]*process.Process)
	uow.processUpdates = make(map[uuid.UUID]stagedProcessUpdate)
}

// ProductRepository returns a ProductRepository bound to this unit of work.
func (uow *InMemoryUnitOfWork) ProductRepository() ports.ProductRepository {
	return &inMemoryProductRepository{uow: uow}
}

// TransportRepository returns a TransportRepository bound to this unit of work.
func (uow *InMemoryUnitOfWork) TransportRepository() ports.TransportRepository {
	return &inMemoryTransportRepository{uow: uow}
}

// DeliveryRepository returns a DeliveryRepository bound to this unit of work.
func (uow *InMemoryUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return &inMemoryDeliveryRepository{uow: uow}
}

// ProcessRepository returns a ProcessRepository bound to this unit of work.
func (uow *InMemoryUnitOfWork) ProcessRepository() ports.ProcessRepository {
	return &inMemoryProcessRepository{uow: uow}
}

// PdfRecordRepository returns a PdfRecordRepository bound to this unit of work.
func (uow *InMemoryUnitOfWork) PdfRecordRepository() ports.PdfRecordRepository {
	return &inMemoryPdfRecordRepository{uow: uow}
}

type inMemoryProductRepository struct {
	uow *InMemoryUnitOfWork
}

func (r *inMemoryProductRepository) Add(_ context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.uow.products[p.ID().Bytes()] = p
	return nil
}

func (r *inMemoryProductRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if p, ok := r.uow.products[id.Bytes()]; ok {
		return p, nil
	}
	if p, ok := r.uow.store.Product(id.Bytes()); ok {
		return p, nil
	}
	return nil, errs.NewObjectNotFoundError("product", id.String())
}

type inMemoryTransportRepository struct {
	uow *InMemoryUnitOfWork
}

func (r *inMemoryTransportRepository) Add(_ context.Context, t *transport.Transport) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.uow.transports[t.ID().Bytes()] = t
	return nil
}

func (r *inMemoryTransportRepository) Get(_ context.Context, id kernel.UUID) (*transport.Transport, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if t, ok := r.uow.transports[id.Bytes()]; ok {
		return t, nil
	}
	if t, ok := r.uow.store.Transport(id.Bytes()); ok {
		return t, nil
	}
	return nil, errs.NewObjectNotFoundError("transport", id.String())
}

type inMemoryDeliveryRepository struct {
	uow *InMemoryUnitOfWork
}

func (r *inMemoryDeliveryRepository) Add(_ context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}
	r.uow.deliveries[d.ID().Bytes()] = d
	return nil
}

func (r *inMemoryDeliveryRepository) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if d, ok := r.uow.deliveries[id.Bytes()]; ok {
		return d, nil
	}
	if d, ok := r.uow.store.Delivery(id.Bytes()); ok {
		return d, nil
	}
	return nil, errs.NewObjectNotFoundError("delivery", id.String())
}

type inMemoryProcessRepository struct {
	uow *InMemoryUnitOfWork
}

func (r *inMemoryProcessRepository) Add(_ context.Context, aggregate *process.Process) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	staged, err := cloneProcess(aggregate, aggregate.Version())
	if err != nil {
		return err
	}

	r.uow.processAdds[aggregate.ID().Bytes()] = staged
	return nil
}

func (r *inMemoryProcessRepository) Update(_ context.Context, aggregate *process.Process) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().Bytes()

	// A process added within this unit of work can be updated in place.
	if _, ok := r.uow.processAdds[id]; ok {
		staged, err := cloneProcess(aggregate, aggregate.Version())
		if err != nil {
			return err
		}
		r.uow.processAdds[id] = staged
		return nil
	}

	current, ok := r.uow.store.processByID(id)
	if !ok {
		return errs.NewObjectNotFoundError("process", aggregate.ID().String())
	}
	if current.Version() != aggregate.Version() {
		return errs.NewVersionConflictError("process", aggregate.ID().String())
	}

	staged, err := cloneProcess(aggregate, aggregate.Version()+1)
	if err != nil {
		return err
	}

	r.uow.processUpdates[id] = stagedProcessUpdate{
		aggregate:     staged,
		loadedVersion: aggregate.Version(),
	}
	return nil
}

func (r *inMemoryProcessRepository) Get(_ context.Context, id kernel.UUID) (*process.Process, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if staged, ok := r.uow.processAdds[id.Bytes()]; ok {
		return cloneProcess(staged, staged.Version())
	}
	if staged, ok := r.uow.processUpdates[id.Bytes()]; ok {
		return cloneProcess(staged.aggregate, staged.aggregate.Version())
	}
	if current, ok := r.uow.store.processByID(id.Bytes()); ok {
		return cloneProcess(current, current.Version())
	}

	return nil, errs.NewObjectNotFoundError("process", id.String())
}

type inMemoryPdfRecordRepository struct {
	uow *InMemoryUnitOfWork
}

func (r *inMemoryPdfRecordRepository) Add(_ context.Context, record *report.PdfRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	r.uow.pdfRecords = append(r.uow.pdfRecords, record)
	return nil
}

func (r *inMemoryPdfRecordRepository) GetByProcess(_ context.Context, processID kernel.UUID) ([]*report.PdfRecord, error) {
	if err := processID.Validate(); err != nil {
		return nil, err
	}

	records := r.uow.store.PdfRecords(processID.Bytes())
	for _, record := range r.uow.pdfRecords {
		if record.ProcessID().IsEqual(processID) {
			records = append(records, record)
		}
	}
	sortPdfRecords(records)
	return records, nil
}
