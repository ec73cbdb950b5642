package queries

import (
	"context"

	"vetpickup/internal/core/domain/services"
)

type GetDayScheduleQueryHandler struct {
	requests   RequestReader
	couriers   CourierReader
	aggregator services.ScheduleAggregator
}

func NewGetDayScheduleQueryHandler(requests RequestReader, couriers CourierReader) GetDayScheduleQueryHandler {
	return GetDayScheduleQueryHandler{
		requests:   requests,
		couriers:   couriers,
		aggregator: services.NewScheduleAggregator(),
	}
}

func (h GetDayScheduleQueryHandler) Handle(ctx context.Context, query GetDayScheduleQuery) ([]RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.requests.ListActiveByPickupDate(ctx, query.Date())
	if err != nil {
		return nil, err
	}

	couriers, err := h.couriers.List(ctx)
	if err != nil {
		return nil, err
	}

	return requestResponses(h.aggregator.RequestsForDate(query.Date(), entries, couriers), couriers), nil
}
