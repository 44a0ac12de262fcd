package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/transport"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSubmitTransportCommand(t *testing.T, processID kernel.UUID) commands.SubmitTransportCommand {
	t.Helper()
	cmd, err := commands.NewSubmitTransportCommand(
		processID, kernel.NewUUID(),
		"Maria Diaz", "LIC-4451", transport.Truck, "ABC-123", "", "night shift",
	)
	require.NoError(t, err)
	return cmd
}

func registrationStageProcess(t *testing.T, processType process.ProcessType) *process.Process {
	t.Helper()
	p, err := process.NewProcess(kernel.NewUUID(), kernel.NewUUID(), processType, time.Now().UTC())
	require.NoError(t, err)
	return p
}

func TestSubmitTransportCommandHandler_Handle_InboundBranch(t *testing.T) {
	ctx := t.Context()
	proc := registrationStageProcess(t, process.TypeInbound)
	cmd := validSubmitTransportCommand(t, proc.ID())

	transportRepo := new(MockTransportRepository)
	processRepo := new(MockProcessRepository)
	uow := new(MockTransportUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProcessRepository").Return(processRepo).Once(),
		processRepo.On("Get", mock.Anything, proc.ID()).Return(proc, nil).Once(),
		uow.On("TransportRepository").Return(transportRepo).Once(),
		transportRepo.On("Add", mock.Anything, mock.AnythingOfType("*transport.Transport")).Return(nil).Once(),
		uow.On("ProcessRepository").Return(processRepo).Once(),
		processRepo.On("Update", mock.Anything, proc).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitTransportCommandHandler(factory)
	next, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, process.NextStepConfirmation, next)
	assert.Equal(t, process.StageFulfillment, proc.Stage())
	require.NotNil(t, proc.TransportID())
	assert.True(t, proc.TransportID().IsEqual(cmd.TransportID()))
	uow.AssertExpectations(t)
}

func TestSubmitTransportCommandHandler_Handle_OutboundBranch(t *testing.T) {
	ctx := t.Context()
	proc := registrationStageProcess(t, process.TypeOutbound)
	cmd := validSubmitTransportCommand(t, proc.ID())

	transportRepo := new(MockTransportRepository)
	processRepo := new(MockProcessRepository)
	uow := new(MockTransportUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProcessRepository").Return(processRepo)
	processRepo.On("Get", mock.Anything, proc.ID()).Return(proc, nil).Once()
	uow.On("TransportRepository").Return(transportRepo).Once()
	transportRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	processRepo.On("Update", mock.Anything, proc).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTransportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitTransportCommandHandler(factory)
	next, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, process.NextStepDelivery, next)
}

func TestSubmitTransportCommandHandler_Handle_ProcessNotFound(t *testing.T) {
	ctx := t.Context()
	processID := kernel.NewUUID()
	cmd := validSubmitTransportCommand(t, processID)

	processRepo := new(MockProcessRepository)
	uow := new(MockTransportUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProcessRepository").Return(processRepo).Once(),
		processRepo.On("Get", mock.Anything, processID).
			Return(nil, errs.NewObjectNotFoundError("processId", processID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitTransportCommandHandler(factory)
	next, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, process.NextStepNone, next)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitTransportCommandHandler_Handle_WrongStage(t *testing.T) {
	ctx := t.Context()
	proc := registrationStageProcess(t, process.TypeOutbound)
	require.NoError(t, proc.AttachTransport(kernel.NewUUID(), time.Now().UTC()))
	cmd := validSubmitTransportCommand(t, proc.ID())

	processRepo := new(MockProcessRepository)
	uow := new(MockTransportUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProcessRepository").Return(processRepo).Once()
	processRepo.On("Get", mock.Anything, proc.ID()).Return(proc, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTransportUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitTransportCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "transport can only be submitted at event 1")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewSubmitTransportCommand_Validation(t *testing.T) {
	processID := kernel.NewUUID()
	transportID := kernel.NewUUID()

	t.Run("should require driver name", func(t *testing.T) {
		_, err := commands.NewSubmitTransportCommand(
			processID, transportID, "", "LIC-1", transport.Van, "XYZ-1", "", "",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDriverNameIsRequired)
	})

	t.Run("should require license number and plate", func(t *testing.T) {
		_, err := commands.NewSubmitTransportCommand(
			processID, transportID, "Maria", "", transport.Van, "", "", "",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrLicenseNumberIsRequired)
		assert.ErrorIs(t, err, commands.ErrVehiclePlateIsRequired)
	})

	t.Run("should reject unknown vehicle type", func(t *testing.T) {
		_, err := commands.NewSubmitTransportCommand(
			processID, transportID, "Maria", "LIC-1", transport.VehicleUnknown, "XYZ-1", "", "",
		)

		require.Error(t, err)
	})
}
