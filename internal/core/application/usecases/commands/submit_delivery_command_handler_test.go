package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSubmitDeliveryCommand(t *testing.T, processID kernel.UUID) commands.SubmitDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewSubmitDeliveryCommand(
		processID, kernel.NewUUID(),
		"Central warehouse", "Dock 7, North Hub",
		time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC), "leave at gate",
	)
	require.NoError(t, err)
	return cmd
}

func fulfillmentStageProcess(t *testing.T, processType process.ProcessType) *process.Process {
	t.Helper()
	p := registrationStageProcess(t, processType)
	require.NoError(t, p.AttachTransport(kernel.NewUUID(), time.Now().UTC()))
	return p
}

func TestSubmitDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	proc := fulfillmentStageProcess(t, process.TypeOutbound)
	cmd := validSubmitDeliveryCommand(t, proc.ID())

	deliveryRepo := new(MockDeliveryRepository)
	processRepo := new(MockProcessRepository)
	uow := new(MockDeliveryUoW)

	var addedDelivery *delivery.Delivery

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProcessRepository").Return(processRepo).Once(),
		processRepo.On("Get", mock.Anything, proc.ID()).Return(proc, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
			Run(func(args mock.Arguments) {
				addedDelivery = args.Get(1).(*delivery.Delivery)
			}).Return(nil).Once(),
		uow.On("ProcessRepository").Return(processRepo).Once(),
		processRepo.On("Update", mock.Anything, proc).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, addedDelivery)
	assert.Equal(t, "Central warehouse", addedDelivery.OriginPlace())
	assert.Equal(t, process.StageCompletion, proc.Stage())
	require.NotNil(t, proc.DeliveryID())
	assert.True(t, proc.DeliveryID().IsEqual(cmd.DeliveryID()))
	uow.AssertExpectations(t)
}

func TestSubmitDeliveryCommandHandler_Handle_InboundRejected(t *testing.T) {
	ctx := t.Context()
	proc := fulfillmentStageProcess(t, process.TypeInbound)
	cmd := validSubmitDeliveryCommand(t, proc.ID())

	processRepo := new(MockProcessRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProcessRepository").Return(processRepo).Once()
	processRepo.On("Get", mock.Anything, proc.ID()).Return(proc, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "inbound process has no delivery step")
	assert.Equal(t, process.StageFulfillment, proc.Stage())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertNotCalled(t, "DeliveryRepository")
}

func TestNewSubmitDeliveryCommand_Validation(t *testing.T) {
	processID := kernel.NewUUID()
	deliveryID := kernel.NewUUID()
	departure := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)

	t.Run("should require origin and destination", func(t *testing.T) {
		_, err := commands.NewSubmitDeliveryCommand(processID, deliveryID, "", "", departure, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrOriginPlaceIsRequired)
		assert.ErrorIs(t, err, commands.ErrDestinationPlaceIsRequired)
	})

	t.Run("should require departure time", func(t *testing.T) {
		_, err := commands.NewSubmitDeliveryCommand(
			processID, deliveryID, "A", "B", time.Time{}, "",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDepartureTimeIsRequired)
	})

	t.Run("should allow empty notes", func(t *testing.T) {
		cmd, err := commands.NewSubmitDeliveryCommand(processID, deliveryID, "A", "B", departure, "")

		require.NoError(t, err)
		assert.Empty(t, cmd.DeliveryNotes())
	})
}
