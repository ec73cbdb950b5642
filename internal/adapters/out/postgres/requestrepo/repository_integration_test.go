package requestrepo_test

import (
	"context"
	"testing"
	"time"

	"vetpickup/internal/adapters/out/postgres/courierrepo"
	"vetpickup/internal/adapters/out/postgres/pgtest"
	"vetpickup/internal/adapters/out/postgres/requestrepo"
	"vetpickup/internal/adapters/out/postgres/requesterrepo"
	"vetpickup/internal/adapters/out/postgres/zonerepo"
	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/requester"
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

type RequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *requestrepo.GormRequestRepository
	requesters *requesterrepo.GormRequesterRepository
	zones      *zonerepo.GormZoneRepository
	couriers   *courierrepo.GormCourierRepository
	pickup     kernel.Date
}

func TestRequestRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RequestRepositoryIntegrationTestSuite))
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)

	suite.pickup, err = kernel.ParseDate("2025-05-02")
	suite.Require().NoError(err)
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	db := suite.database.DB
	suite.repository = requestrepo.NewGormRequestRepository(db, tracker)
	suite.requesters = requesterrepo.NewGormRequesterRepository(db, tracker)
	suite.zones = zonerepo.NewGormZoneRepository(db, tracker)
	suite.couriers = courierrepo.NewGormCourierRepository(db, tracker)
}

func (suite *RequestRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *RequestRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	owner := suite.addRequester("Clínica Puerto", suite.addZone("Valparaíso"))
	req := suite.newRequest(owner, suite.pickup, "11:42:10")

	suite.Require().NoError(suite.repository.Add(ctx, req))

	loaded, err := suite.repository.Get(ctx, req.ID())
	suite.Require().NoError(err)
	suite.True(loaded.RequesterID().IsEqual(owner.ID()))
	suite.Equal(request.Pending, loaded.Status())
	suite.Equal("Calle Clínica Puerto", loaded.PickupAddress())
	suite.True(loaded.UsesRequesterAddress())
	suite.True(loaded.PickupDate().IsEqual(suite.pickup))
	suite.Equal("2025-05-02", loaded.RequestDate().String())
	suite.Equal("11:42:10", loaded.RequestTime().String())
	suite.Nil(loaded.CourierID())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestAdd_UnknownReferences() {
	ctx := context.Background()
	orphan, err := requester.NewRequester(kernel.NewUUID(), requester.Profile{
		Name:    "Nobody",
		Kind:    requester.Tutor,
		Phone:   "+56911112222",
		Email:   kernel.Unknown[string](),
		Address: kernel.Known("Somewhere 1"),
		ZoneID:  kernel.NewUUID(),
	})
	suite.Require().NoError(err)
	suite.ErrorIs(suite.repository.Add(ctx, suite.newRequest(orphan, suite.pickup, "11:00")), errs.ErrObjectNotFound)

	req := suite.newRequest(suite.addRequester("A", suite.addZone("Valparaíso")), suite.pickup, "11:00")
	suite.Require().NoError(req.Assign(kernel.NewUUID()))
	suite.ErrorIs(suite.repository.Add(ctx, req), errs.ErrObjectNotFound)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestUpdate_OverwritesEveryColumn() {
	ctx := context.Background()
	z := suite.addZone("Valparaíso")
	c, err := courier.NewCourier(kernel.NewUUID(), "Rosa", courier.Fixed, []kernel.UUID{z.ID()})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.couriers.Add(ctx, c))
	req := suite.newRequest(suite.addRequester("A", z), suite.pickup, "11:00")
	suite.Require().NoError(req.Assign(c.ID()))
	suite.Require().NoError(suite.repository.Add(ctx, req))

	suite.Require().NoError(req.UpdateDetails(request.Details{
		PickupAddress: "Cochrane 300",
		PickupDate:    suite.pickup,
	}))
	req.UnassignCourier()
	suite.Require().NoError(suite.repository.Update(ctx, req))

	loaded, err := suite.repository.Get(ctx, req.ID())
	suite.Require().NoError(err)
	suite.False(loaded.UsesRequesterAddress())
	suite.Equal("Cochrane 300", loaded.PickupAddress())
	suite.Empty(loaded.Notes())
	suite.Nil(loaded.CourierID())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	req := suite.newRequest(suite.addRequester("A", suite.addZone("Valparaíso")), suite.pickup, "11:00")

	suite.ErrorIs(suite.repository.Update(context.Background(), req), errs.ErrObjectNotFound)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestListActiveByPickupDate() {
	ctx := context.Background()
	valpo := suite.addZone("Valparaíso")
	owner := suite.addRequester("Clínica Puerto", valpo)
	nextDay, err := kernel.ParseDate("2025-05-03")
	suite.Require().NoError(err)

	late := suite.newRequest(owner, suite.pickup, "13:00")
	done := suite.newRequest(owner, suite.pickup, "11:05")
	suite.Require().NoError(done.Complete())
	tomorrow := suite.newRequest(owner, nextDay, "11:10")
	early := suite.newRequest(owner, suite.pickup, "11:00")
	for _, req := range []*request.Request{late, done, tomorrow, early} {
		suite.Require().NoError(suite.repository.Add(ctx, req))
	}

	entries, err := suite.repository.ListActiveByPickupDate(ctx, suite.pickup)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.True(entries[0].Request.ID().IsEqual(late.ID()), "insertion order is kept")
	suite.True(entries[1].Request.ID().IsEqual(early.ID()))
	suite.Equal("Clínica Puerto", entries[0].Requester.Name())
	suite.Equal("Valparaíso", entries[0].Zone.Name())

	n, err := suite.repository.CountByZoneAndPickupDate(ctx, valpo.ID(), suite.pickup)
	suite.Require().NoError(err)
	suite.Equal(3, n)
}

func (suite *RequestRepositoryIntegrationTestSuite) addZone(name string) *zone.Zone {
	z, err := zone.NewZone(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.zones.Add(context.Background(), z))
	return z
}

func (suite *RequestRepositoryIntegrationTestSuite) addRequester(name string, z *zone.Zone) *requester.Requester {
	r, err := requester.NewRequester(kernel.NewUUID(), requester.Profile{
		Name:    name,
		Kind:    requester.Medico,
		Phone:   "+56322123456",
		Email:   kernel.Known("contacto@vet.cl"),
		Address: kernel.Known("Calle " + name),
		ZoneID:  z.ID(),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.requesters.Add(context.Background(), r))
	return r
}

func (suite *RequestRepositoryIntegrationTestSuite) newRequest(
	owner *requester.Requester,
	pickup kernel.Date,
	clock string,
) *request.Request {
	at, err := kernel.ParseTimeOfDay(clock)
	suite.Require().NoError(err)
	registeredAt := time.Date(2025, 5, 2, at.Hour(), at.Minute(), at.Second(), 0, time.UTC)

	req, err := request.NewRequest(kernel.NewUUID(), owner.ID(), request.Details{
		UseRequesterAddress: true,
		PickupDate:          pickup,
	}, registeredAt)
	suite.Require().NoError(err)
	suite.Require().NoError(req.ApplyRequesterAddress(owner))
	return req
}
