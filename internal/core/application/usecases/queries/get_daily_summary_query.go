package queries

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrGetDailySummaryQueryIsNotConstructed = errors.New(
	"GetDailySummaryQuery must be created via NewGetDailySummaryQuery constructor",
)

// GetDailySummaryQuery builds the dashboard of a date.
type GetDailySummaryQuery struct {
	date kernel.Date

	guard guard.ConstructorGuard
}

func NewGetDailySummaryQuery(date kernel.Date) (GetDailySummaryQuery, error) {
	if err := date.Validate(); err != nil {
		return GetDailySummaryQuery{}, err
	}

	return GetDailySummaryQuery{date: date, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDailySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySummaryQueryIsNotConstructed)
}

func (q GetDailySummaryQuery) Date() kernel.Date {
	return q.date
}

type CourierLoadResponse struct {
	Courier CourierResponse
	Count   int
}

// DailySummaryResponse mirrors services.DailySummary. PerCourier counts may
// add up to more than TotalPending because unassigned requests in shared
// zones show up for every covering courier.
type DailySummaryResponse struct {
	Date                      kernel.Date
	TotalPending              int
	TotalRequesters           int
	TotalIncompleteRequesters int
	PerCourier                []CourierLoadResponse
}
