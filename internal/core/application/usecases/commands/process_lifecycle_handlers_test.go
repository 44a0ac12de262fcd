package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectProcessRoundTrip(uow *MockProcessUoW, repo *MockProcessRepository, proc *process.Process) {
	ctx := mock.Anything
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("ProcessRepository").Return(repo)
	repo.On("Get", ctx, proc.ID()).Return(proc, nil).Once()
	repo.On("Update", ctx, proc).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
}

func TestCompleteProcessCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	proc := fulfillmentStageProcess(t, process.TypeOutbound)
	require.NoError(t, proc.AttachDelivery(kernel.NewUUID(), time.Now().UTC()))
	cmd, err := commands.NewCompleteProcessCommand(proc.ID())
	require.NoError(t, err)

	repo := new(MockProcessRepository)
	uow := new(MockProcessUoW)
	expectProcessRoundTrip(uow, repo, proc)

	factory := new(MockProcessUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteProcessCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, process.Completed, proc.Status())
	uow.AssertExpectations(t)
}

func TestCompleteProcessCommandHandler_Handle_WrongStage(t *testing.T) {
	ctx := t.Context()
	proc := fulfillmentStageProcess(t, process.TypeOutbound)
	cmd, err := commands.NewCompleteProcessCommand(proc.ID())
	require.NoError(t, err)

	repo := new(MockProcessRepository)
	uow := new(MockProcessUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProcessRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, proc.ID()).Return(proc, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProcessUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteProcessCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "process can only be completed at event 4")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPauseProcessCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	proc := registrationStageProcess(t, process.TypeInbound)
	cmd, err := commands.NewPauseProcessCommand(proc.ID())
	require.NoError(t, err)

	repo := new(MockProcessRepository)
	uow := new(MockProcessUoW)
	expectProcessRoundTrip(uow, repo, proc)

	factory := new(MockProcessUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPauseProcessCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, process.Paused, proc.Status())
	assert.Equal(t, process.StageRegistration, proc.Stage())
}

func TestResumeProcessCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	proc := registrationStageProcess(t, process.TypeOutbound)
	require.NoError(t, proc.Pause(time.Now().UTC()))
	cmd, err := commands.NewResumeProcessCommand(proc.ID())
	require.NoError(t, err)

	repo := new(MockProcessRepository)
	uow := new(MockProcessUoW)
	expectProcessRoundTrip(uow, repo, proc)

	factory := new(MockProcessUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResumeProcessCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, process.InProgress, proc.Status())
}

func TestResumeProcessCommandHandler_Handle_NotPaused(t *testing.T) {
	ctx := t.Context()
	proc := registrationStageProcess(t, process.TypeOutbound)
	cmd, err := commands.NewResumeProcessCommand(proc.ID())
	require.NoError(t, err)

	repo := new(MockProcessRepository)
	uow := new(MockProcessUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProcessRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, proc.ID()).Return(proc, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProcessUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResumeProcessCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "in_progress process cannot be resumed")
}

func TestPauseProcessCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	processID := kernel.NewUUID()
	cmd, err := commands.NewPauseProcessCommand(processID)
	require.NoError(t, err)

	repo := new(MockProcessRepository)
	uow := new(MockProcessUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProcessRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, processID).
		Return(nil, errs.NewObjectNotFoundError("processId", processID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProcessUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPauseProcessCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
