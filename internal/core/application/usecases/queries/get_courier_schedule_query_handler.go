package queries

import (
	"context"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/services"
)

type GetCourierScheduleQueryHandler struct {
	requests   RequestReader
	couriers   CourierReader
	aggregator services.ScheduleAggregator
}

func NewGetCourierScheduleQueryHandler(requests RequestReader, couriers CourierReader) GetCourierScheduleQueryHandler {
	return GetCourierScheduleQueryHandler{
		requests:   requests,
		couriers:   couriers,
		aggregator: services.NewScheduleAggregator(),
	}
}

// Handle returns *errs.ObjectNotFoundError for an unknown courier.
func (h GetCourierScheduleQueryHandler) Handle(
	ctx context.Context,
	query GetCourierScheduleQuery,
) (CourierScheduleResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierScheduleResponse{}, err
	}

	c, err := h.couriers.Get(ctx, query.CourierID())
	if err != nil {
		return CourierScheduleResponse{}, err
	}

	entries, err := h.requests.ListActiveByPickupDate(ctx, query.Date())
	if err != nil {
		return CourierScheduleResponse{}, err
	}

	visible := h.aggregator.RequestsForCourier(c, query.Date(), entries)
	return CourierScheduleResponse{
		Courier:  courierResponse(c),
		Date:     query.Date(),
		Requests: requestResponses(visible, []*courier.Courier{c}),
	}, nil
}
