package services

import (
	"cmp"
	"slices"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/schedule"
)

// ScheduleAggregator builds the operational views of a day: what is left to
// pick up and what each courier should look at.
//
// Only Pending and Assigned requests with the given pickup date are part of a
// day. Completed and Cancelled requests are history and never show up.
type ScheduleAggregator struct{}

func NewScheduleAggregator() ScheduleAggregator {
	return ScheduleAggregator{}
}

// RequestsForDate returns the active entries of date grouped by assigned
// courier and then ordered by request time.
//
// Courier groups follow the order of couriers (the store's natural order).
// Couriers missing from that list come next, ordered by ID, and unassigned
// entries are grouped together at the end.
func (a ScheduleAggregator) RequestsForDate(
	date kernel.Date,
	entries []schedule.Entry,
	couriers []*courier.Courier,
) []schedule.Entry {
	day := a.activeOn(date, entries)

	rank := make(map[kernel.UUID]int, len(couriers))
	for i, c := range couriers {
		rank[c.ID()] = i
	}

	slices.SortStableFunc(day, func(x, y schedule.Entry) int {
		if byCourier := compareCourierGroup(x, y, rank); byCourier != 0 {
			return byCourier
		}
		return compareRequestTime(x, y)
	})
	return day
}

// RequestsForCourier returns the active entries of date visible to c, ordered
// by request time. An unassigned entry in a zone that several couriers cover
// is returned for each of them.
func (a ScheduleAggregator) RequestsForCourier(
	c *courier.Courier,
	date kernel.Date,
	entries []schedule.Entry,
) []schedule.Entry {
	visible := make([]schedule.Entry, 0)
	for _, e := range a.activeOn(date, entries) {
		if e.VisibleTo(c) {
			visible = append(visible, e)
		}
	}

	slices.SortStableFunc(visible, compareRequestTime)
	return visible
}

func (a ScheduleAggregator) activeOn(date kernel.Date, entries []schedule.Entry) []schedule.Entry {
	day := make([]schedule.Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsScheduledOn(date) {
			day = append(day, e)
		}
	}
	return day
}

func compareCourierGroup(x, y schedule.Entry, rank map[kernel.UUID]int) int {
	xID, yID := x.Request.CourierID(), y.Request.CourierID()
	switch {
	case xID == nil && yID == nil:
		return 0
	case xID == nil:
		return 1
	case yID == nil:
		return -1
	}

	xRank, xKnown := rank[*xID]
	yRank, yKnown := rank[*yID]
	switch {
	case xKnown && yKnown:
		return xRank - yRank
	case xKnown:
		return -1
	case yKnown:
		return 1
	default:
		return cmp.Compare(xID.String(), yID.String())
	}
}

func compareRequestTime(x, y schedule.Entry) int {
	if byTime := x.Request.RequestTime().Compare(y.Request.RequestTime()); byTime != 0 {
		return byTime
	}
	xDate, yDate := x.Request.RequestDate(), y.Request.RequestDate()
	switch {
	case xDate.Before(yDate):
		return -1
	case yDate.Before(xDate):
		return 1
	default:
		return 0
	}
}
