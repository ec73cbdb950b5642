package queries

import (
	"context"

	"vetpickup/internal/core/domain/services"
)

type GetDailySummaryQueryHandler struct {
	requests   RequestReader
	requesters RequesterReader
	couriers   CourierReader
	summarizer services.DailySummarizer
}

func NewGetDailySummaryQueryHandler(
	requests RequestReader,
	requesters RequesterReader,
	couriers CourierReader,
) GetDailySummaryQueryHandler {
	return GetDailySummaryQueryHandler{
		requests:   requests,
		requesters: requesters,
		couriers:   couriers,
		summarizer: services.NewDailySummarizer(services.NewScheduleAggregator()),
	}
}

func (h GetDailySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDailySummaryQuery,
) (DailySummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return DailySummaryResponse{}, err
	}

	entries, err := h.requests.ListActiveByPickupDate(ctx, query.Date())
	if err != nil {
		return DailySummaryResponse{}, err
	}

	couriers, err := h.couriers.List(ctx)
	if err != nil {
		return DailySummaryResponse{}, err
	}

	var totals services.RequesterTotals
	if totals.Total, err = h.requesters.CountAll(ctx); err != nil {
		return DailySummaryResponse{}, err
	}
	if totals.Incomplete, err = h.requesters.CountWithUnknownData(ctx); err != nil {
		return DailySummaryResponse{}, err
	}

	summary := h.summarizer.Summarize(query.Date(), entries, couriers, totals)

	loads := make([]CourierLoadResponse, 0, len(summary.PerCourier))
	for _, load := range summary.PerCourier {
		loads = append(loads, CourierLoadResponse{Courier: courierResponse(load.Courier), Count: load.Count})
	}

	return DailySummaryResponse{
		Date:                      summary.Date,
		TotalPending:              summary.TotalPending,
		TotalRequesters:           summary.TotalRequesters,
		TotalIncompleteRequesters: summary.TotalIncompleteRequesters,
		PerCourier:                loads,
	}, nil
}
