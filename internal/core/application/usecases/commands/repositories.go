// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrow slice of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// TransportRepoFactory provides access to the transport repository within a transaction.
	TransportRepoFactory interface {
		TransportRepository() ports.TransportRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ProcessRepoFactory provides access to the process repository within a transaction.
	ProcessRepoFactory interface {
		ProcessRepository() ports.ProcessRepository
	}

	// PdfRecordRepoFactory provides access to the pdf record repository within a transaction.
	PdfRecordRepoFactory interface {
		PdfRecordRepository() ports.PdfRecordRepository
	}

	// RegistrationUoW manages the transaction that creates a product together
	// with its process. Both rows land in one transaction so no orphaned
	// product can survive a partial failure.
	RegistrationUoW interface {
		TxManager
		ProductRepoFactory
		ProcessRepoFactory
	}

	// RegistrationUoWFactory creates new registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// TransportUoW manages the transaction that creates a transport and links
	// it to its process.
	TransportUoW interface {
		TxManager
		TransportRepoFactory
		ProcessRepoFactory
	}

	// TransportUoWFactory creates new transport unit of work instances.
	TransportUoWFactory interface {
		Create() TransportUoW
	}

	// DeliveryUoW manages the transaction that creates a delivery and links
	// it to its process.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		ProcessRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ProcessUoW manages transactions for process-only transitions
	// (resolution, completion, pause, resume).
	ProcessUoW interface {
		TxManager
		ProcessRepoFactory
	}

	// ProcessUoWFactory creates new process unit of work instances.
	ProcessUoWFactory interface {
		Create() ProcessUoW
	}

	// PdfUoW manages the transaction that appends a pdf audit record after
	// verifying its process exists.
	PdfUoW interface {
		TxManager
		ProcessRepoFactory
		PdfRecordRepoFactory
	}

	// PdfUoWFactory creates new pdf unit of work instances.
	PdfUoWFactory interface {
		Create() PdfUoW
	}
)
