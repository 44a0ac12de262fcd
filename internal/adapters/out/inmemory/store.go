// Package inmemory provides a map-backed implementation of the Unit of Work
// pattern. It mirrors the transactional contract of the postgres adapter:
// writes are staged inside a unit of work and only become visible to other
// units after Commit. It backs local development and the workflow tests that
// exercise command handlers end to end without a database.
package inmemory

import (
	"sort"
	"sync"

	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/domain/model/transport"

	"github.com/google/uuid"
)

// Store holds committed aggregates. Safe for concurrent use; all access goes
// through the mutex. Process aggregates are stored as clones so committed
// state cannot be mutated through handles a caller still owns.
type Store struct {
	mu         sync.RWMutex
	products   map[uuid.UUID]*product.Product
	transports map[uuid.UUID]*transport.Transport
	deliveries map[uuid.UUID]*delivery.Delivery
	processes  map[uuid.UUID]*process.Process
	pdfRecords map[uuid.UUID][]*report.PdfRecord
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		products:   make(map[uuid.UUID]*product.Product),
		transports: make(map[uuid.UUID]*transport.Transport),
		deliveries: make(map[uuid.UUID]*delivery.Delivery),
		processes:  make(map[uuid.UUID]*process.Process),
		pdfRecords: make(map[uuid.UUID][]*report.PdfRecord),
	}
}

// Processes returns a snapshot of all committed processes.
func (s *Store) Processes() []*process.Process {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*process.Process, 0, len(s.processes))
	for _, p := range s.processes {
		snapshot = append(snapshot, p)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		if !snapshot[i].CreatedAt().Equal(snapshot[j].CreatedAt()) {
			return snapshot[i].CreatedAt().Before(snapshot[j].CreatedAt())
		}
		return snapshot[i].ID().String() < snapshot[j].ID().String()
	})
	return snapshot
}

func (s *Store) processByID(id uuid.UUID) (*process.Process, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.processes[id]
	return p, ok
}

// Products returns a snapshot of all committed products.
func (s *Store) Products() []*product.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*product.Product, 0, len(s.products))
	for _, p := range s.products {
		snapshot = append(snapshot, p)
	}
	return snapshot
}

// Product returns a committed product by its raw identifier.
func (s *Store) Product(id uuid.UUID) (*product.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

// Transport returns a committed transport by its raw identifier.
func (s *Store) Transport(id uuid.UUID) (*transport.Transport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transports[id]
	return t, ok
}

// Delivery returns a committed delivery by its raw identifier.
func (s *Store) Delivery(id uuid.UUID) (*delivery.Delivery, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.deliveries[id]
	return d, ok
}

// PdfRecords returns the committed pdf records for a process, newest first.
func (s *Store) PdfRecords(processID uuid.UUID) []*report.PdfRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*report.PdfRecord, len(s.pdfRecords[processID]))
	copy(records, s.pdfRecords[processID])
	sortPdfRecords(records)
	return records
}

func sortPdfRecords(records []*report.PdfRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].GeneratedAt().After(records[j].GeneratedAt())
	})
}

// cloneProcess rebuilds a process aggregate so the copy can be handed out or
// stored without sharing mutable state with the original.
func cloneProcess(p *process.Process, version int) (*process.Process, error) {
	return process.RestoreProcess(
		p.ID(), p.ProductID(), p.TransportID(), p.DeliveryID(),
		p.Stage(), p.Status(), p.ProcessType(), p.Resolution(),
		p.ComplaintNotes(), p.ConfirmedAt(), version,
		p.CreatedAt(), p.UpdatedAt(),
	)
}
