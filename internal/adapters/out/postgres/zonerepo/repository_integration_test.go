package zonerepo_test

import (
	"context"
	"testing"

	"vetpickup/internal/adapters/out/postgres/pgtest"
	"vetpickup/internal/adapters/out/postgres/zonerepo"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/zone"
	"vetpickup/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ZoneRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *zonerepo.GormZoneRepository
	tracker    *MockAggregateTracker
}

func TestZoneRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ZoneRepositoryIntegrationTestSuite))
}

func (suite *ZoneRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)
}

func (suite *ZoneRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.repository = zonerepo.NewGormZoneRepository(suite.database.DB, suite.tracker)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestAdd_Success() {
	ctx := context.Background()
	z := suite.newZone("Valparaíso")
	suite.tracker.On("TrackAggregate", z.ID(), z).Once()

	suite.Require().NoError(suite.repository.Add(ctx, z))

	loaded, err := suite.repository.Get(ctx, z.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(z))
	suite.Equal("Valparaíso", loaded.Name())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestAdd_DuplicateName() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newZone("Quillota")))

	err := suite.repository.Add(ctx, suite.newZone("Quillota"))

	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.tracker.AssertNumberOfCalls(suite.T(), "TrackAggregate", 1)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	z := suite.newZone("Vina")
	taken := suite.newZone("Valparaíso")
	suite.Require().NoError(suite.repository.Add(ctx, z))
	suite.Require().NoError(suite.repository.Add(ctx, taken))

	suite.Require().NoError(z.Rename("Viña del Mar"))
	suite.Require().NoError(suite.repository.Update(ctx, z))
	loaded, err := suite.repository.Get(ctx, z.ID())
	suite.Require().NoError(err)
	suite.Equal("Viña del Mar", loaded.Name())

	suite.Require().NoError(z.Rename("Valparaíso"))
	suite.ErrorIs(suite.repository.Update(ctx, z), errs.ErrObjectAlreadyExists)

	suite.ErrorIs(suite.repository.Update(ctx, suite.newZone("Ghost")), errs.ErrObjectNotFound)
}

func (suite *ZoneRepositoryIntegrationTestSuite) TestListAndDelete() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	quilpue := suite.newZone("Quilpué")
	algarrobo := suite.newZone("Algarrobo")
	suite.Require().NoError(suite.repository.Add(ctx, quilpue))
	suite.Require().NoError(suite.repository.Add(ctx, algarrobo))

	zones, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(zones, 2)
	suite.Equal("Algarrobo", zones[0].Name())
	suite.Equal("Quilpué", zones[1].Name())

	suite.Require().NoError(suite.repository.Delete(ctx, algarrobo.ID()))
	suite.ErrorIs(suite.repository.Delete(ctx, algarrobo.ID()), errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, algarrobo.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ZoneRepositoryIntegrationTestSuite) newZone(name string) *zone.Zone {
	z, err := zone.NewZone(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	return z
}
