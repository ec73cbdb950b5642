package queries

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrGetCourierScheduleQueryIsNotConstructed = errors.New(
	"GetCourierScheduleQuery must be created via NewGetCourierScheduleQuery constructor",
)

// GetCourierScheduleQuery returns what one courier sees for a date: its own
// requests plus unassigned requests in the zones it covers.
type GetCourierScheduleQuery struct {
	courierID kernel.UUID
	date      kernel.Date

	guard guard.ConstructorGuard
}

func NewGetCourierScheduleQuery(courierID kernel.UUID, date kernel.Date) (GetCourierScheduleQuery, error) {
	if err := errors.Join(courierID.Validate(), date.Validate()); err != nil {
		return GetCourierScheduleQuery{}, err
	}

	return GetCourierScheduleQuery{
		courierID: courierID,
		date:      date,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCourierScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierScheduleQueryIsNotConstructed)
}

func (q GetCourierScheduleQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q GetCourierScheduleQuery) Date() kernel.Date {
	return q.date
}

type CourierScheduleResponse struct {
	Courier  CourierResponse
	Date     kernel.Date
	Requests []RequestResponse
}
