package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/product"
)

// RegisterProductCommandHandler handles event 1 of the workflow: it creates
// the product and the process tracking it in one transaction.
type RegisterProductCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewRegisterProductCommandHandler creates a handler for product registration.
func NewRegisterProductCommandHandler(uowFactory RegistrationUoWFactory) RegisterProductCommandHandler {
	return RegisterProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The process starts at event 1
// with status in_progress; its type is derived from the product's flow type.
func (h *RegisterProductCommandHandler) Handle(ctx context.Context, cmd RegisterProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	dimensions, err := product.NewDimensions(cmd.LengthCm(), cmd.WidthCm(), cmd.HeightCm())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	newProduct, err := product.NewProduct(
		cmd.ProductID(), cmd.Name(), dimensions,
		cmd.WeightGrams(), cmd.Regulations(), cmd.FlowType(), now,
	)
	if err != nil {
		return err
	}

	processType, err := process.TypeFromFlow(newProduct.FlowType())
	if err != nil {
		return err
	}

	newProcess, err := process.NewProcess(cmd.ProcessID(), newProduct.ID(), processType, now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	if err = uow.ProcessRepository().Add(ctx, newProcess); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
