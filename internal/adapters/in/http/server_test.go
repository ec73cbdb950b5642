package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vetpickup/cmd"
	"vetpickup/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/suite"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type APITestSuite struct {
	suite.Suite
	location *time.Location
	clock    *fixedClock
	router   *echo.Echo
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) SetupTest() {
	location, err := time.LoadLocation("America/Santiago")
	s.Require().NoError(err)
	s.location = location
	s.clock = &fixedClock{now: s.at(12, 0, 0)}

	root, err := cmd.NewCompositionRoot(cmd.Config{
		StoreDriver:        cmd.StoreDriverMemory,
		Timezone:           "America/Santiago",
		BookingWindowStart: "11:00",
		BookingWindowEnd:   "14:00",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)

	s.router, err = root.NewRouter(s.clock)
	s.Require().NoError(err)
}

func (s *APITestSuite) at(hour, minute, second int) time.Time {
	return time.Date(2025, time.May, 2, hour, minute, second, 0, s.location)
}

func (s *APITestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](s *APITestSuite, rec *httptest.ResponseRecorder) T {
	var v T
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *APITestSuite) created(rec *httptest.ResponseRecorder) openapi_types.UUID {
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.CreatedResource](s, rec).Id
}

func (s *APITestSuite) zone(name string) openapi_types.UUID {
	return s.created(s.do(http.MethodPost, "/api/v1/zones", servers.ZoneInput{Name: name}))
}

func (s *APITestSuite) courier(name string, kind servers.CourierKind, zones ...openapi_types.UUID) openapi_types.UUID {
	return s.created(s.do(http.MethodPost, "/api/v1/couriers", servers.CourierInput{
		Name:           name,
		Kind:           kind,
		PreferredZones: zones,
	}))
}

func (s *APITestSuite) requester(name string, zoneID openapi_types.UUID) openapi_types.UUID {
	email := "contacto@losrobles.cl"
	address := "Av. Los Robles 123"
	return s.created(s.do(http.MethodPost, "/api/v1/requesters", servers.RequesterInput{
		Name:    name,
		Kind:    servers.RequesterKindVeterinaria,
		Phone:   "+56912345678",
		Email:   &email,
		Address: &address,
		ZoneId:  zoneID,
	}))
}

func today() openapi_types.Date {
	return openapi_types.Date{Time: time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)}
}

func (s *APITestSuite) TestHealthAndDocs() {
	rec := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())

	rec = s.do(http.MethodGet, "/api/openapi.json", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"CreateRequest"`)
}

func (s *APITestSuite) TestZones() {
	norte := s.zone("Norte")
	s.zone("Centro")

	rec := s.do(http.MethodPost, "/api/v1/zones", servers.ZoneInput{Name: "Norte"})
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPut, "/api/v1/zones/"+norte.String(), servers.ZoneInput{Name: "Agua Santa"})
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/zones", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	zones := decode[[]servers.Zone](s, rec)
	s.Require().Len(zones, 2)
	s.Equal("Agua Santa", zones[0].Name)
	s.Equal("Centro", zones[1].Name)

	rec = s.do(http.MethodPost, "/api/v1/zones", servers.ZoneInput{Name: ""})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APITestSuite) TestZoneStatistics() {
	zoneID := s.zone("Centro")
	s.courier("Pedro", servers.CourierKindFixed, zoneID)
	requesterID := s.requester("Clínica Los Robles", zoneID)

	rec := s.do(http.MethodPost, "/api/v1/requests", servers.NewPickupRequest{
		RequesterId: requesterID,
		PickupDate:  today(),
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/zones/"+zoneID.String()+"/statistics", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	stats := decode[servers.ZoneStatistics](s, rec)
	s.Equal("Centro", stats.Zone.Name)
	s.Equal("2025-05-02", stats.Date.String())
	s.Equal(1, stats.Requesters)
	s.Equal(1, stats.Couriers)
	s.Equal(1, stats.RequestsOnDate)

	rec = s.do(http.MethodGet, "/api/v1/zones/"+uuid.NewString()+"/statistics", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APITestSuite) TestRequesters() {
	zoneID := s.zone("Centro")
	complete := s.requester("Clínica Los Robles", zoneID)

	yes := true
	incomplete := s.created(s.do(http.MethodPost, "/api/v1/requesters", servers.RequesterInput{
		Name:           "Dr. Rojas",
		Kind:           servers.RequesterKindMedico,
		Phone:          "+56922223333",
		EmailUnknown:   &yes,
		AddressUnknown: &yes,
		ZoneId:         zoneID,
	}))

	rec := s.do(http.MethodGet, "/api/v1/requesters/"+complete.String(), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	found := decode[servers.Requester](s, rec)
	s.True(found.IsComplete)
	s.Empty(found.MissingData)
	s.Require().NotNil(found.Address)
	s.Equal("Av. Los Robles 123", *found.Address)

	rec = s.do(http.MethodGet, "/api/v1/requesters/"+incomplete.String(), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	found = decode[servers.Requester](s, rec)
	s.True(found.IsComplete)
	s.True(found.EmailUnknown)
	s.Nil(found.Email)
	s.ElementsMatch([]string{"email", "address"}, found.MissingData)

	rec = s.do(http.MethodGet, "/api/v1/requesters?q=robles", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Len(decode[[]servers.Requester](s, rec), 1)

	rec = s.do(http.MethodGet, "/api/v1/requesters?q=r", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(decode[[]servers.Requester](s, rec))

	rec = s.do(http.MethodGet, "/api/v1/requesters/incomplete", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	list := decode[[]servers.Requester](s, rec)
	s.Require().Len(list, 1)
	s.Equal(incomplete, list[0].Id)

	rec = s.do(http.MethodPost, "/api/v1/requesters/incomplete/report", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(1, decode[servers.IncompleteReport](s, rec).Reported)

	rec = s.do(http.MethodDelete, "/api/v1/requesters/"+incomplete.String(), nil)
	s.Equal(http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodGet, "/api/v1/requesters/"+incomplete.String(), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APITestSuite) TestRequesterContactMustBeGivenOrUnknown() {
	zoneID := s.zone("Centro")
	email := "a@b.cl"
	yes := true

	rec := s.do(http.MethodPost, "/api/v1/requesters", servers.RequesterInput{
		Name:         "Dr. Rojas",
		Kind:         servers.RequesterKindMedico,
		Phone:        "+56922223333",
		Email:        &email,
		EmailUnknown: &yes,
		ZoneId:       zoneID,
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/requesters", servers.RequesterInput{
		Name:         "Dr. Rojas",
		Kind:         servers.RequesterKindMedico,
		Phone:        "+56922223333",
		EmailUnknown: &yes,
		ZoneId:       zoneID,
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	address := "Calle 1"
	rec = s.do(http.MethodPost, "/api/v1/requesters", servers.RequesterInput{
		Name:         "Dr. Rojas",
		Kind:         servers.RequesterKindMedico,
		Phone:        "+56922223333",
		EmailUnknown: &yes,
		Address:      &address,
		ZoneId:       openapi_types.UUID(uuid.New()),
	})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APITestSuite) TestCreateRequestAssignsFixedCourier() {
	zoneID := s.zone("Centro")
	s.courier("Refuerzo", servers.CourierKindComplementary, zoneID)
	pedro := s.courier("Pedro", servers.CourierKindFixed, zoneID)
	requesterID := s.requester("Clínica Los Robles", zoneID)

	rec := s.do(http.MethodPost, "/api/v1/requests", servers.NewPickupRequest{
		RequesterId: requesterID,
		PickupDate:  today(),
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	createdRequest := decode[servers.CreatedPickupRequest](s, rec)
	s.Require().NotNil(createdRequest.Assignment)
	s.Equal(servers.AssignmentOutcomeAssigned, createdRequest.Assignment.Outcome)
	s.Require().NotNil(createdRequest.Assignment.CourierId)
	s.Equal(pedro, *createdRequest.Assignment.CourierId)
	s.Equal("assigned to Pedro", createdRequest.Assignment.Message)

	rec = s.do(http.MethodPost, "/api/v1/requests/"+createdRequest.Id.String()+"/assign", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(servers.AssignmentOutcomeAlreadyAssigned, decode[servers.Assignment](s, rec).Outcome)

	rec = s.do(http.MethodGet, "/api/v1/requests", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	rows := decode[[]servers.PickupRequest](s, rec)
	s.Require().Len(rows, 1)
	s.Equal(createdRequest.Id, rows[0].Id)
	s.Equal(servers.RequestStatusAssigned, rows[0].Status)
	s.Equal("Av. Los Robles 123", rows[0].PickupAddress)
	s.Equal("12:00:00", rows[0].RequestTime)
	s.Equal("Centro", rows[0].ZoneName)
	s.Require().NotNil(rows[0].CourierName)
	s.Equal("Pedro", *rows[0].CourierName)

	rec = s.do(http.MethodGet, "/api/v1/couriers/"+pedro.String()+"/schedule?date=2025-05-02", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	schedule := decode[servers.CourierSchedule](s, rec)
	s.Equal("Pedro", schedule.Courier.Name)
	s.Len(schedule.Requests, 1)

	rec = s.do(http.MethodGet, "/api/v1/dashboard", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	summary := decode[servers.DailySummary](s, rec)
	s.Equal(1, summary.TotalPending)
	s.Equal(1, summary.TotalRequesters)
	s.Equal(0, summary.TotalIncompleteRequesters)
}

func (s *APITestSuite) TestCreateRequestWithoutEligibleCourierStaysPending() {
	zoneID := s.zone("Centro")
	requesterID := s.requester("Clínica Los Robles", zoneID)

	rec := s.do(http.MethodPost, "/api/v1/requests", servers.NewPickupRequest{
		RequesterId: requesterID,
		PickupDate:  today(),
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	createdRequest := decode[servers.CreatedPickupRequest](s, rec)
	s.Require().NotNil(createdRequest.Assignment)
	s.Equal(servers.AssignmentOutcomeNoEligibleCourier, createdRequest.Assignment.Outcome)
	s.Equal("no courier available in zone Centro", createdRequest.Assignment.Message)
	s.Nil(createdRequest.Assignment.CourierId)

	rec = s.do(http.MethodGet, "/api/v1/requests?date=2025-05-02", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	rows := decode[[]servers.PickupRequest](s, rec)
	s.Require().Len(rows, 1)
	s.Equal(servers.RequestStatusPending, rows[0].Status)
	s.Nil(rows[0].CourierId)
}

func (s *APITestSuite) TestCreateRequestWithManualCourier() {
	zoneID := s.zone("Centro")
	otherZone := s.zone("Norte")
	refuerzo := s.courier("Refuerzo", servers.CourierKindComplementary, otherZone)
	requesterID := s.requester("Clínica Los Robles", zoneID)

	rec := s.do(http.MethodPost, "/api/v1/requests", servers.NewPickupRequest{
		RequesterId: requesterID,
		PickupDate:  today(),
		CourierId:   &refuerzo,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	createdRequest := decode[servers.CreatedPickupRequest](s, rec)
	s.Nil(createdRequest.Assignment)

	rec = s.do(http.MethodGet, "/api/v1/requests", nil)
	rows := decode[[]servers.PickupRequest](s, rec)
	s.Require().Len(rows, 1)
	s.Equal(servers.RequestStatusAssigned, rows[0].Status)
	s.Require().NotNil(rows[0].CourierId)
	s.Equal(refuerzo, *rows[0].CourierId)
}

func (s *APITestSuite) TestCreateRequestNeedsAnAddress() {
	zoneID := s.zone("Centro")
	yes := true
	requesterID := s.created(s.do(http.MethodPost, "/api/v1/requesters", servers.RequesterInput{
		Name:           "Dr. Rojas",
		Kind:           servers.RequesterKindMedico,
		Phone:          "+56922223333",
		EmailUnknown:   &yes,
		AddressUnknown: &yes,
		ZoneId:         zoneID,
	}))

	rec := s.do(http.MethodPost, "/api/v1/requests", servers.NewPickupRequest{
		RequesterId: requesterID,
		PickupDate:  today(),
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	address := "Hospital Clínico, acceso 3"
	no := false
	rec = s.do(http.MethodPost, "/api/v1/requests", servers.NewPickupRequest{
		RequesterId:         requesterID,
		PickupDate:          today(),
		UseRequesterAddress: &no,
		PickupAddress:       &address,
	})
	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/requests", servers.NewPickupRequest{
		RequesterId:   openapi_types.UUID(uuid.New()),
		PickupDate:    today(),
		PickupAddress: &address,
	})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APITestSuite) TestRequestLifecycle() {
	zoneID := s.zone("Centro")
	s.courier("Pedro", servers.CourierKindFixed, zoneID)
	requesterID := s.requester("Clínica Los Robles", zoneID)
	id := decode[servers.CreatedPickupRequest](s, s.do(http.MethodPost, "/api/v1/requests", servers.NewPickupRequest{
		RequesterId: requesterID,
		PickupDate:  today(),
	})).Id

	notes := "two boxes"
	rec := s.do(http.MethodPut, "/api/v1/requests/"+id.String(), servers.PickupRequestInput{
		PickupDate:          today(),
		UseRequesterAddress: true,
		Notes:               &notes,
	})
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/requests/"+id.String()+"/complete", nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/requests/"+id.String()+"/cancel", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/requests", nil)
	s.Empty(decode[[]servers.PickupRequest](s, rec))

	rec = s.do(http.MethodPost, "/api/v1/requests/"+uuid.NewString()+"/complete", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APITestSuite) TestCourierDeletionKeepsRequestStatus() {
	zoneID := s.zone("Centro")
	pedro := s.courier("Pedro", servers.CourierKindFixed, zoneID)
	requesterID := s.requester("Clínica Los Robles", zoneID)
	s.created(s.do(http.MethodPost, "/api/v1/requests", servers.NewPickupRequest{
		RequesterId: requesterID,
		PickupDate:  today(),
	}))

	rec := s.do(http.MethodDelete, "/api/v1/couriers/"+pedro.String(), nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/requests", nil)
	rows := decode[[]servers.PickupRequest](s, rec)
	s.Require().Len(rows, 1)
	s.Equal(servers.RequestStatusAssigned, rows[0].Status)
	s.Nil(rows[0].CourierId)

	rec = s.do(http.MethodGet, "/api/v1/couriers", nil)
	s.Empty(decode[[]servers.Courier](s, rec))
}

func (s *APITestSuite) TestUpdateCourier() {
	centro := s.zone("Centro")
	norte := s.zone("Norte")
	pedro := s.courier("Pedro", servers.CourierKindFixed, centro)

	rec := s.do(http.MethodPut, "/api/v1/couriers/"+pedro.String(), servers.CourierInput{
		Name:           "Pedro Soto",
		Kind:           servers.CourierKindComplementary,
		PreferredZones: []openapi_types.UUID{norte, centro},
	})
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/couriers", nil)
	couriers := decode[[]servers.Courier](s, rec)
	s.Require().Len(couriers, 1)
	s.Equal("Pedro Soto", couriers[0].Name)
	s.Equal(servers.CourierKindComplementary, couriers[0].Kind)
	s.Equal([]openapi_types.UUID{norte, centro}, couriers[0].PreferredZones)

	rec = s.do(http.MethodPut, "/api/v1/couriers/"+pedro.String(), servers.CourierInput{
		Name: "Pedro Soto",
		Kind: "walker",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APITestSuite) TestInvalidPathParameter() {
	rec := s.do(http.MethodGet, "/api/v1/requesters/not-a-uuid", nil)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	body := decode[servers.Error](s, rec)
	s.Equal(http.StatusBadRequest, body.Code)
	s.Contains(body.Message, "requesterId")
}

func (s *APITestSuite) TestBookingWindow() {
	zoneID := s.zone("Centro")
	requesterID := s.requester("Clínica Los Robles", zoneID)
	book := func() *httptest.ResponseRecorder {
		return s.do(http.MethodPost, "/api/v1/requests", servers.NewPickupRequest{
			RequesterId: requesterID,
			PickupDate:  today(),
		})
	}

	for _, tc := range []struct {
		name string
		now  time.Time
		want int
	}{
		{"opening", s.at(11, 0, 0), http.StatusCreated},
		{"closing", s.at(14, 0, 0), http.StatusCreated},
		{"before opening", s.at(10, 59, 59), http.StatusForbidden},
		{"after closing", s.at(14, 0, 1), http.StatusForbidden},
	} {
		s.Run(tc.name, func() {
			s.clock.now = tc.now
			rec := book()
			s.Equal(tc.want, rec.Code, rec.Body.String())
		})
	}

	s.clock.now = s.at(15, 30, 0)
	rec := book()
	s.Require().Equal(http.StatusForbidden, rec.Code)
	body := decode[servers.Error](s, rec)
	s.Equal(http.StatusForbidden, body.Code)
	s.Equal("Outside booking hours. Requests can only be booked between 11:00 and 14:00. Current time: 15:30", body.Message)

	// Reads and other writes are not gated.
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/v1/requests", nil).Code)
	s.Equal(http.StatusCreated, s.do(http.MethodPost, "/api/v1/zones", servers.ZoneInput{Name: "Norte"}).Code)
}
