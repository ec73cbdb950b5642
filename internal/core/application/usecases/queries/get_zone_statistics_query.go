package queries

import (
	"context"
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrGetZoneStatisticsQueryIsNotConstructed = errors.New(
	"GetZoneStatisticsQuery must be created via NewGetZoneStatisticsQuery constructor",
)

// GetZoneStatisticsQuery counts what lives in a zone: its requesters, the
// couriers covering it and the requests picked up there on a date.
type GetZoneStatisticsQuery struct {
	zoneID kernel.UUID
	date   kernel.Date

	guard guard.ConstructorGuard
}

func NewGetZoneStatisticsQuery(zoneID kernel.UUID, date kernel.Date) (GetZoneStatisticsQuery, error) {
	if err := errors.Join(zoneID.Validate(), date.Validate()); err != nil {
		return GetZoneStatisticsQuery{}, err
	}

	return GetZoneStatisticsQuery{zoneID: zoneID, date: date, guard: guard.NewConstructorGuard()}, nil
}

func (q GetZoneStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetZoneStatisticsQueryIsNotConstructed)
}

func (q GetZoneStatisticsQuery) ZoneID() kernel.UUID {
	return q.zoneID
}

func (q GetZoneStatisticsQuery) Date() kernel.Date {
	return q.date
}

// ZoneStatisticsResponse counts requests of any status.
type ZoneStatisticsResponse struct {
	Zone           ZoneResponse
	Date           kernel.Date
	Requesters     int
	Couriers       int
	RequestsOnDate int
}

type GetZoneStatisticsQueryHandler struct {
	zones      ZoneReader
	requesters RequesterReader
	couriers   CourierReader
	requests   RequestReader
}

func NewGetZoneStatisticsQueryHandler(
	zones ZoneReader,
	requesters RequesterReader,
	couriers CourierReader,
	requests RequestReader,
) GetZoneStatisticsQueryHandler {
	return GetZoneStatisticsQueryHandler{
		zones:      zones,
		requesters: requesters,
		couriers:   couriers,
		requests:   requests,
	}
}

func (h GetZoneStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetZoneStatisticsQuery,
) (ZoneStatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return ZoneStatisticsResponse{}, err
	}

	z, err := h.zones.Get(ctx, query.ZoneID())
	if err != nil {
		return ZoneStatisticsResponse{}, err
	}

	stats := ZoneStatisticsResponse{Zone: zoneResponse(z), Date: query.Date()}
	if stats.Requesters, err = h.requesters.CountByZone(ctx, z.ID()); err != nil {
		return ZoneStatisticsResponse{}, err
	}
	if stats.Couriers, err = h.couriers.CountByZone(ctx, z.ID()); err != nil {
		return ZoneStatisticsResponse{}, err
	}
	if stats.RequestsOnDate, err = h.requests.CountByZoneAndPickupDate(ctx, z.ID(), query.Date()); err != nil {
		return ZoneStatisticsResponse{}, err
	}

	return stats, nil
}
