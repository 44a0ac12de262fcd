package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/delivery"
)

// SubmitDeliveryCommandHandler handles event 3 of an outbound process: it
// creates the delivery record and advances the process to event 4 in one
// transaction. The aggregate rejects the submission on inbound processes.
type SubmitDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewSubmitDeliveryCommandHandler creates a handler for delivery submission.
func NewSubmitDeliveryCommandHandler(uowFactory DeliveryUoWFactory) SubmitDeliveryCommandHandler {
	return SubmitDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery submission command.
func (h *SubmitDeliveryCommandHandler) Handle(ctx context.Context, cmd SubmitDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	newDelivery, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.OriginPlace(), cmd.DestinationPlace(),
		cmd.DepartureTime(), cmd.DeliveryNotes(), now,
	)
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

	proc, err := uow.ProcessRepository().Get(ctx, cmd.ProcessID())
	if err != nil {
		return err
	}

	if err = proc.AttachDelivery(newDelivery.ID(), now); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return err
	}

	if err = uow.ProcessRepository().Update(ctx, proc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
