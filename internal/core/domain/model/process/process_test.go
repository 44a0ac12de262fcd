package process_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newInboundProcess(t *testing.T) *process.Process {
	t.Helper()
	p, err := process.NewProcess(kernel.NewUUID(), kernel.NewUUID(), process.TypeInbound, testNow)
	require.NoError(t, err)
	return p
}

func newOutboundProcess(t *testing.T) *process.Process {
	t.Helper()
	p, err := process.NewProcess(kernel.NewUUID(), kernel.NewUUID(), process.TypeOutbound, testNow)
	require.NoError(t, err)
	return p
}

func TestNewProcess(t *testing.T) {
	t.Run("should create process at registration stage in progress", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()

		p, err := process.NewProcess(id, productID, process.TypeInbound, testNow)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.ProductID().IsEqual(productID))
		assert.Equal(t, process.StageRegistration, p.Stage())
		assert.Equal(t, process.InProgress, p.Status())
		assert.Equal(t, process.TypeInbound, p.ProcessType())
		assert.Equal(t, process.ResolutionNone, p.Resolution())
		assert.Nil(t, p.TransportID())
		assert.Nil(t, p.DeliveryID())
		assert.Nil(t, p.ConfirmedAt())
		assert.Equal(t, 0, p.Version())
		assert.Equal(t, testNow, p.CreatedAt())
		assert.Equal(t, testNow, p.UpdatedAt())
	})

	t.Run("should fail with invalid process ID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := process.NewProcess(invalidID, kernel.NewUUID(), process.TypeInbound, testNow)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid product ID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := process.NewProcess(kernel.NewUUID(), invalidID, process.TypeInbound, testNow)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "value is invalid: productId")
	})

	t.Run("should fail with unknown process type", func(t *testing.T) {
		p, err := process.NewProcess(kernel.NewUUID(), kernel.NewUUID(), process.TypeUnknown, testNow)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "not a valid process type")
	})
}

func TestProcess_Validate(t *testing.T) {
	t.Run("should fail validation for nil process", func(t *testing.T) {
		var p *process.Process

		assert.Equal(t, process.ErrProcessIsNotConstructed, p.Validate())
	})

	t.Run("should fail validation for zero value process", func(t *testing.T) {
		var p process.Process

		assert.Equal(t, process.ErrProcessIsNotConstructed, p.Validate())
	})
}

func TestProcess_AttachTransport(t *testing.T) {
	t.Run("should jump from event 1 to event 3 for inbound", func(t *testing.T) {
		p := newInboundProcess(t)
		transportID := kernel.NewUUID()
		later := testNow.Add(time.Hour)

		err := p.AttachTransport(transportID, later)

		require.NoError(t, err)
		assert.Equal(t, process.StageFulfillment, p.Stage())
		assert.Equal(t, process.InProgress, p.Status())
		require.NotNil(t, p.TransportID())
		assert.True(t, p.TransportID().IsEqual(transportID))
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("should jump from event 1 to event 3 for outbound", func(t *testing.T) {
		p := newOutboundProcess(t)

		err := p.AttachTransport(kernel.NewUUID(), testNow)

		require.NoError(t, err)
		assert.Equal(t, process.StageFulfillment, p.Stage())
	})

	t.Run("should fail with invalid transport ID", func(t *testing.T) {
		p := newInboundProcess(t)
		var invalidID kernel.UUID

		err := p.AttachTransport(invalidID, testNow)

		require.Error(t, err)
		assert.Equal(t, process.StageRegistration, p.Stage())
		assert.Nil(t, p.TransportID())
	})

	t.Run("should fail past event 1", func(t *testing.T) {
		p := newOutboundProcess(t)
		_ = p.AttachTransport(kernel.NewUUID(), testNow)

		err := p.AttachTransport(kernel.NewUUID(), testNow)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "transport can only be submitted at event 1")
	})

	t.Run("should fail on a paused process", func(t *testing.T) {
		p := newInboundProcess(t)
		require.NoError(t, p.Pause(testNow))

		err := p.AttachTransport(kernel.NewUUID(), testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot attach transport to a paused process")
		assert.Equal(t, process.StageRegistration, p.Stage())
	})
}

func TestProcess_AttachDelivery(t *testing.T) {
	t.Run("should advance outbound process to event 4", func(t *testing.T) {
		p := newOutboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		deliveryID := kernel.NewUUID()

		err := p.AttachDelivery(deliveryID, testNow)

		require.NoError(t, err)
		assert.Equal(t, process.StageCompletion, p.Stage())
		assert.Equal(t, process.InProgress, p.Status())
		require.NotNil(t, p.DeliveryID())
		assert.True(t, p.DeliveryID().IsEqual(deliveryID))
	})

	t.Run("should reject delivery on an inbound process", func(t *testing.T) {
		p := newInboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))

		err := p.AttachDelivery(kernel.NewUUID(), testNow)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "inbound process has no delivery step")
		assert.Equal(t, process.StageFulfillment, p.Stage())
		assert.Nil(t, p.DeliveryID())
	})

	t.Run("should fail before event 3", func(t *testing.T) {
		p := newOutboundProcess(t)

		err := p.AttachDelivery(kernel.NewUUID(), testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "delivery can only be submitted at event 3")
	})

	t.Run("should fail on a paused process", func(t *testing.T) {
		p := newOutboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		require.NoError(t, p.Pause(testNow))

		err := p.AttachDelivery(kernel.NewUUID(), testNow)

		require.Error(t, err)
		assert.Equal(t, process.StageFulfillment, p.Stage())
	})
}

func TestProcess_ConfirmReceipt(t *testing.T) {
	t.Run("should complete inbound process at event 3", func(t *testing.T) {
		p := newInboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		later := testNow.Add(2 * time.Hour)

		err := p.ConfirmReceipt(later)

		require.NoError(t, err)
		assert.Equal(t, process.Completed, p.Status())
		assert.Equal(t, process.Confirmed, p.Resolution())
		assert.Equal(t, process.StageFulfillment, p.Stage())
		require.NotNil(t, p.ConfirmedAt())
		assert.Equal(t, later, *p.ConfirmedAt())
	})

	t.Run("should reject confirmation on an outbound process", func(t *testing.T) {
		p := newOutboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))

		err := p.ConfirmReceipt(testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "outbound process has no receipt confirmation step")
	})

	t.Run("should fail before event 3", func(t *testing.T) {
		p := newInboundProcess(t)

		err := p.ConfirmReceipt(testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "inbound resolution is only valid at event 3")
	})

	t.Run("should fail on an already resolved process", func(t *testing.T) {
		p := newInboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		require.NoError(t, p.ConfirmReceipt(testNow))

		err := p.ConfirmReceipt(testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot resolve a completed process")
	})
}

func TestProcess_FileComplaint(t *testing.T) {
	t.Run("should close inbound process with complaint", func(t *testing.T) {
		p := newInboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))

		err := p.FileComplaint("two boxes crushed", testNow)

		require.NoError(t, err)
		assert.Equal(t, process.Complaint, p.Status())
		assert.Equal(t, process.ComplaintFiled, p.Resolution())
		assert.Equal(t, "two boxes crushed", p.ComplaintNotes())
		assert.Equal(t, process.StageFulfillment, p.Stage())
		assert.Nil(t, p.ConfirmedAt())
	})

	t.Run("should require notes", func(t *testing.T) {
		p := newInboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))

		err := p.FileComplaint("", testNow)

		require.Error(t, err)
		assert.Equal(t, process.ErrComplaintNotesRequired, err)
		assert.Equal(t, process.InProgress, p.Status())
		assert.Equal(t, process.ResolutionNone, p.Resolution())
	})

	t.Run("should reject complaint on an outbound process", func(t *testing.T) {
		p := newOutboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))

		err := p.FileComplaint("damaged", testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "outbound process has no receipt confirmation step")
	})

	t.Run("should accept no further transitions after complaint", func(t *testing.T) {
		p := newInboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		require.NoError(t, p.FileComplaint("damaged", testNow))

		require.Error(t, p.Pause(testNow))
		require.Error(t, p.Resume(testNow))
		require.Error(t, p.ConfirmReceipt(testNow))
		assert.Equal(t, process.Complaint, p.Status())
	})
}

func TestProcess_Complete(t *testing.T) {
	t.Run("should complete outbound process at event 4", func(t *testing.T) {
		p := newOutboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		require.NoError(t, p.AttachDelivery(kernel.NewUUID(), testNow))

		err := p.Complete(testNow)

		require.NoError(t, err)
		assert.Equal(t, process.Completed, p.Status())
		assert.Equal(t, process.StageCompletion, p.Stage())
	})

	t.Run("should reject completion on an inbound process", func(t *testing.T) {
		p := newInboundProcess(t)

		err := p.Complete(testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "inbound process is completed via receipt confirmation")
	})

	t.Run("should fail before event 4", func(t *testing.T) {
		p := newOutboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))

		err := p.Complete(testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "process can only be completed at event 4")
	})

	t.Run("should fail on already completed process", func(t *testing.T) {
		p := newOutboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		require.NoError(t, p.AttachDelivery(kernel.NewUUID(), testNow))
		require.NoError(t, p.Complete(testNow))

		err := p.Complete(testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot complete a completed process")
	})
}

func TestProcess_PauseResume(t *testing.T) {
	t.Run("should pause and resume preserving the stage", func(t *testing.T) {
		p := newOutboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))

		require.NoError(t, p.Pause(testNow))
		assert.Equal(t, process.Paused, p.Status())
		assert.Equal(t, process.StageFulfillment, p.Stage())

		require.NoError(t, p.Resume(testNow))
		assert.Equal(t, process.InProgress, p.Status())
		assert.Equal(t, process.StageFulfillment, p.Stage())
	})

	t.Run("should reject double pause", func(t *testing.T) {
		p := newInboundProcess(t)
		require.NoError(t, p.Pause(testNow))

		err := p.Pause(testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "paused process cannot be paused")
	})

	t.Run("should reject resume of a running process", func(t *testing.T) {
		p := newInboundProcess(t)

		err := p.Resume(testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "in_progress process cannot be resumed")
	})

	t.Run("should reject pause of a terminal process", func(t *testing.T) {
		p := newInboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		require.NoError(t, p.ConfirmReceipt(testNow))

		err := p.Pause(testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "completed process cannot be paused")
	})
}

func TestProcess_NextStep(t *testing.T) {
	t.Run("should route inbound through transport then confirmation", func(t *testing.T) {
		p := newInboundProcess(t)
		assert.Equal(t, process.NextStepTransport, p.NextStep())

		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		assert.Equal(t, process.NextStepConfirmation, p.NextStep())

		require.NoError(t, p.ConfirmReceipt(testNow))
		assert.Equal(t, process.NextStepNone, p.NextStep())
	})

	t.Run("should route outbound through transport, delivery, completion", func(t *testing.T) {
		p := newOutboundProcess(t)
		assert.Equal(t, process.NextStepTransport, p.NextStep())

		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		assert.Equal(t, process.NextStepDelivery, p.NextStep())

		require.NoError(t, p.AttachDelivery(kernel.NewUUID(), testNow))
		assert.Equal(t, process.NextStepCompletion, p.NextStep())

		require.NoError(t, p.Complete(testNow))
		assert.Equal(t, process.NextStepNone, p.NextStep())
	})

	t.Run("should keep next step stable across pause and resume", func(t *testing.T) {
		p := newOutboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		before := p.NextStep()

		require.NoError(t, p.Pause(testNow))
		assert.Equal(t, before, p.NextStep())

		require.NoError(t, p.Resume(testNow))
		assert.Equal(t, before, p.NextStep())
	})

	t.Run("should report no next step after complaint", func(t *testing.T) {
		p := newInboundProcess(t)
		require.NoError(t, p.AttachTransport(kernel.NewUUID(), testNow))
		require.NoError(t, p.FileComplaint("damaged", testNow))

		assert.Equal(t, process.NextStepNone, p.NextStep())
	})
}

func TestRestoreProcess(t *testing.T) {
	t.Run("should restore a mid-flight process", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()
		transportID := kernel.NewUUID()
		updated := testNow.Add(time.Hour)

		p, err := process.RestoreProcess(
			id, productID, &transportID, nil,
			process.StageFulfillment, process.Paused, process.TypeOutbound,
			process.ResolutionNone, "", nil,
			3, testNow, updated,
		)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, process.StageFulfillment, p.Stage())
		assert.Equal(t, process.Paused, p.Status())
		assert.Equal(t, 3, p.Version())
		assert.True(t, p.TransportID().IsEqual(transportID))
		assert.Equal(t, updated, p.UpdatedAt())
	})

	t.Run("should restore a historical draft row", func(t *testing.T) {
		p, err := process.RestoreProcess(
			kernel.NewUUID(), kernel.NewUUID(), nil, nil,
			process.StageRegistration, process.Draft, process.TypeInbound,
			process.ResolutionNone, "", nil,
			0, testNow, testNow,
		)

		require.NoError(t, err)
		assert.Equal(t, process.Draft, p.Status())
	})

	t.Run("should reject the transitional transport stage", func(t *testing.T) {
		p, err := process.RestoreProcess(
			kernel.NewUUID(), kernel.NewUUID(), nil, nil,
			process.StageTransport, process.InProgress, process.TypeInbound,
			process.ResolutionNone, "", nil,
			0, testNow, testNow,
		)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "2 is not a valid stage")
	})

	t.Run("should resume transitions after restore", func(t *testing.T) {
		transportID := kernel.NewUUID()
		p, err := process.RestoreProcess(
			kernel.NewUUID(), kernel.NewUUID(), &transportID, nil,
			process.StageFulfillment, process.InProgress, process.TypeInbound,
			process.ResolutionNone, "", nil,
			1, testNow, testNow,
		)
		require.NoError(t, err)

		require.NoError(t, p.ConfirmReceipt(testNow))
		assert.Equal(t, process.Completed, p.Status())
	})
}

func TestTypeFromFlow(t *testing.T) {
	t.Run("should map product flows to process types", func(t *testing.T) {
		inbound, err := process.TypeFromFlow(product.Inbound)
		require.NoError(t, err)
		assert.Equal(t, process.TypeInbound, inbound)

		outbound, err := process.TypeFromFlow(product.Outbound)
		require.NoError(t, err)
		assert.Equal(t, process.TypeOutbound, outbound)
	})

	t.Run("should reject unknown flow", func(t *testing.T) {
		_, err := process.TypeFromFlow(product.FlowUnknown)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no matching process type")
	})
}
