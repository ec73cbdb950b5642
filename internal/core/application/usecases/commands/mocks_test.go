package commands_test

import (
	"context"
	"testing"
	"time"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/core/domain/model/schedule"
	"vetpickup/internal/core/domain/model/zone"
	"vetpickup/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockZoneRepository) Update(ctx context.Context, aggregate *zone.Zone) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockZoneRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) List(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockRequesterRepository struct {
	mock.Mock
}

func (m *MockRequesterRepository) Add(ctx context.Context, aggregate *requester.Requester) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockRequesterRepository) Update(ctx context.Context, aggregate *requester.Requester) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockRequesterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRequesterRepository) Get(ctx context.Context, id kernel.UUID) (*requester.Requester, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*requester.Requester), args.Error(1)
}

func (m *MockRequesterRepository) Search(ctx context.Context, term string, limit int) ([]*requester.Requester, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*requester.Requester), args.Error(1)
}

func (m *MockRequesterRepository) ListWithUnknownData(ctx context.Context) ([]*requester.Requester, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*requester.Requester), args.Error(1)
}

func (m *MockRequesterRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRequesterRepository) CountWithUnknownData(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRequesterRepository) CountByZone(ctx context.Context, zoneID kernel.UUID) (int, error) {
	args := m.Called(ctx, zoneID)
	return args.Int(0), args.Error(1)
}

type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockCourierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) List(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) FindByZoneAndKind(
	ctx context.Context,
	zoneID kernel.UUID,
	kind courier.Kind,
) ([]*courier.Courier, error) {
	args := m.Called(ctx, zoneID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) CountByZone(ctx context.Context, zoneID kernel.UUID) (int, error) {
	args := m.Called(ctx, zoneID)
	return args.Int(0), args.Error(1)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) ListActiveByPickupDate(ctx context.Context, date kernel.Date) ([]schedule.Entry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schedule.Entry), args.Error(1)
}

func (m *MockRequestRepository) CountByZoneAndPickupDate(
	ctx context.Context,
	zoneID kernel.UUID,
	date kernel.Date,
) (int, error) {
	args := m.Called(ctx, zoneID, date)
	return args.Int(0), args.Error(1)
}

// MockUoW satisfies every unit of work shape of the commands package.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	return m.Called().Get(0).(ports.ZoneRepository)
}

func (m *MockUoW) RequesterRepository() ports.RequesterRepository {
	return m.Called().Get(0).(ports.RequesterRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	return m.Called().Get(0).(ports.CourierRepository)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	return m.Called().Get(0).(ports.RequestRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockZoneUoWFactory struct {
	mock.Mock
}

func (m *MockZoneUoWFactory) Create() commands.ZoneUoW {
	return m.Called().Get(0).(commands.ZoneUoW)
}

type MockRequesterUoWFactory struct {
	mock.Mock
}

func (m *MockRequesterUoWFactory) Create() commands.RequesterUoW {
	return m.Called().Get(0).(commands.RequesterUoW)
}

type MockCourierUoWFactory struct {
	mock.Mock
}

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	return m.Called().Get(0).(commands.CourierUoW)
}

// repos bundles a MockUoW with its repositories. Repository accessors may be
// called any number of times; tests assert on the repository calls instead.
type repos struct {
	uow        *MockUoW
	zones      *MockZoneRepository
	requesters *MockRequesterRepository
	couriers   *MockCourierRepository
	requests   *MockRequestRepository
}

func newRepos() repos {
	r := repos{
		uow:        new(MockUoW),
		zones:      new(MockZoneRepository),
		requesters: new(MockRequesterRepository),
		couriers:   new(MockCourierRepository),
		requests:   new(MockRequestRepository),
	}
	r.uow.On("ZoneRepository").Return(r.zones).Maybe()
	r.uow.On("RequesterRepository").Return(r.requesters).Maybe()
	r.uow.On("CourierRepository").Return(r.couriers).Maybe()
	r.uow.On("RequestRepository").Return(r.requests).Maybe()
	return r
}

func (r repos) assertExpectations(t *testing.T) {
	t.Helper()
	r.uow.AssertExpectations(t)
	r.zones.AssertExpectations(t)
	r.requesters.AssertExpectations(t)
	r.couriers.AssertExpectations(t)
	r.requests.AssertExpectations(t)
}

func newZone(t *testing.T, name string) *zone.Zone {
	t.Helper()
	z, err := zone.NewZone(kernel.NewUUID(), name)
	require.NoError(t, err)
	return z
}

func newCourier(t *testing.T, name string, kind courier.Kind, zones ...*zone.Zone) *courier.Courier {
	t.Helper()
	ids := make([]kernel.UUID, 0, len(zones))
	for _, z := range zones {
		ids = append(ids, z.ID())
	}
	c, err := courier.NewCourier(kernel.NewUUID(), name, kind, ids)
	require.NoError(t, err)
	return c
}

func validProfile(z *zone.Zone) requester.Profile {
	return requester.Profile{
		Name:    "Clínica Veterinaria Puerto",
		Kind:    requester.Veterinaria,
		Phone:   "+56912345678",
		Email:   kernel.Known("contacto@puerto.cl"),
		Address: kernel.Known("Av. Brasil 1234"),
		ZoneID:  z.ID(),
	}
}

func newRequester(t *testing.T, z *zone.Zone) *requester.Requester {
	t.Helper()
	r, err := requester.NewRequester(kernel.NewUUID(), validProfile(z))
	require.NoError(t, err)
	return r
}

func pickupDate(t *testing.T) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate("2025-05-02")
	require.NoError(t, err)
	return d
}

var registeredAt = time.Date(2025, time.May, 1, 11, 30, 0, 0, time.UTC)

func newPendingRequest(t *testing.T, owner *requester.Requester) *request.Request {
	t.Helper()
	req, err := request.NewRequest(kernel.NewUUID(), owner.ID(), request.Details{
		UseRequesterAddress: true,
		PickupDate:          pickupDate(t),
	}, registeredAt)
	require.NoError(t, err)
	require.NoError(t, req.ApplyRequesterAddress(owner))
	return req
}
