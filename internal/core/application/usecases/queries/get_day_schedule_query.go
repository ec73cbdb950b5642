package queries

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrGetDayScheduleQueryIsNotConstructed = errors.New(
	"GetDayScheduleQuery must be created via NewGetDayScheduleQuery constructor",
)

// GetDayScheduleQuery returns the Pending and Assigned requests picked up on
// a date, grouped by courier with unassigned requests last.
//
// Example:
//
//	query, err := NewGetDayScheduleQuery(today)
//	if err != nil {
//	    return err
//	}
//	rows, err := handler.Handle(ctx, query)
//	for _, row := range rows {
//	    fmt.Printf("%s %s %s\n", row.RequestTime, row.RequesterName, row.CourierName)
//	}
type GetDayScheduleQuery struct {
	date kernel.Date

	guard guard.ConstructorGuard
}

func NewGetDayScheduleQuery(date kernel.Date) (GetDayScheduleQuery, error) {
	if err := date.Validate(); err != nil {
		return GetDayScheduleQuery{}, err
	}

	return GetDayScheduleQuery{date: date, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDayScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetDayScheduleQueryIsNotConstructed)
}

func (q GetDayScheduleQuery) Date() kernel.Date {
	return q.date
}
