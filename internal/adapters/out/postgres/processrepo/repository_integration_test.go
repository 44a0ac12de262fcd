package processrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/processrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/process"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProcessRepositoryIntegrationTestSuite provides integration tests for
// ProcessRepository using PostgreSQL containers to verify persistence and
// optimistic locking behavior.
type ProcessRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *processrepo.GormProcessRepository
	tracker    *MockAggregateTracker
}

func (suite *ProcessRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&processrepo.ProcessDTO{}))
}

func (suite *ProcessRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE processes").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = processrepo.NewGormProcessRepository(suite.db, suite.tracker)
}

func (suite *ProcessRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProcessRepositoryIntegrationTestSuite) TestAdd_ValidProcess_Success() {
	ctx := context.Background()

	testProcess := suite.createTestProcess(process.TypeInbound)
	suite.tracker.On("TrackAggregate", testProcess.ID(), testProcess).Once()

	err := suite.repository.Add(ctx, testProcess)
	suite.Require().NoError(err)

	suite.assertProcessCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProcessRepositoryIntegrationTestSuite) TestGet_ExistingProcess_RestoresAggregate() {
	ctx := context.Background()

	original := suite.createTestProcess(process.TypeOutbound)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.ProductID(), retrieved.ProductID())
	suite.Equal(process.StageRegistration, retrieved.Stage())
	suite.Equal(process.InProgress, retrieved.Status())
	suite.Equal(process.TypeOutbound, retrieved.ProcessType())
	suite.Equal(0, retrieved.Version())
	suite.Nil(retrieved.TransportID())
	suite.Nil(retrieved.DeliveryID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProcessRepositoryIntegrationTestSuite) TestGet_NonExistentProcess_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProcessRepositoryIntegrationTestSuite) TestUpdate_AdvancesStageAndVersion() {
	ctx := context.Background()

	original := suite.createTestProcess(process.TypeInbound)
	suite.tracker.On("TrackAggregate", original.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	transportID := kernel.NewUUID()
	suite.Require().NoError(loaded.AttachTransport(transportID, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(process.StageFulfillment, retrieved.Stage())
	suite.Require().NotNil(retrieved.TransportID())
	suite.True(transportID.IsEqual(*retrieved.TransportID()))
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProcessRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()

	original := suite.createTestProcess(process.TypeInbound)
	suite.tracker.On("TrackAggregate", original.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Two sessions load the same version of the process.
	first, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	// The first session wins.
	suite.Require().NoError(first.AttachTransport(kernel.NewUUID(), time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second session still holds the stale version and must be rejected.
	suite.Require().NoError(second.AttachTransport(kernel.NewUUID(), time.Now().UTC()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.VersionConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)

	// The winning update is untouched.
	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.TransportID())
	suite.True(first.TransportID().IsEqual(*retrieved.TransportID()))
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProcessRepositoryIntegrationTestSuite) TestUpdate_NonExistentProcess_ReturnsNotFoundError() {
	ctx := context.Background()

	ghost := suite.createTestProcess(process.TypeOutbound)

	err := suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProcessRepositoryIntegrationTestSuite) TestUpdate_FullInboundLifecycle_PersistsEachStep() {
	ctx := context.Background()
	now := time.Now().UTC()

	testProcess := suite.createTestProcess(process.TypeInbound)
	suite.tracker.On("TrackAggregate", testProcess.ID(), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testProcess))

	loaded, err := suite.repository.Get(ctx, testProcess.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AttachTransport(kernel.NewUUID(), now))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	loaded, err = suite.repository.Get(ctx, testProcess.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ConfirmReceipt(now))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, testProcess.ID())
	suite.Require().NoError(err)
	suite.Equal(process.Completed, retrieved.Status())
	suite.Equal(process.Confirmed, retrieved.Resolution())
	suite.Require().NotNil(retrieved.ConfirmedAt())
	suite.Equal(2, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestProcess creates a freshly registered process of the given type.
func (suite *ProcessRepositoryIntegrationTestSuite) createTestProcess(processType process.ProcessType) *process.Process {
	testProcess, err := process.NewProcess(kernel.NewUUID(), kernel.NewUUID(), processType, time.Now().UTC())
	suite.Require().NoError(err)
	return testProcess
}

// assertProcessCount verifies the number of processes in the database.
func (suite *ProcessRepositoryIntegrationTestSuite) assertProcessCount(expected int) {
	var count int64
	err := suite.db.Model(&processrepo.ProcessDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestProcessRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessRepositoryIntegrationTestSuite))
}
