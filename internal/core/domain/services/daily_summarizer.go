package services

import (
	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/schedule"
)

// RequesterTotals are the requester counters shown on the dashboard.
type RequesterTotals struct {
	Total int
	// Incomplete counts requesters with email or address flagged as unknown.
	Incomplete int
}

// CourierLoad is the number of entries a courier sees on its schedule.
type CourierLoad struct {
	Courier *courier.Courier
	Count   int
}

// DailySummary is the dashboard of a day.
type DailySummary struct {
	Date                      kernel.Date
	TotalPending              int
	TotalRequesters           int
	TotalIncompleteRequesters int
	PerCourier                []CourierLoad
}

// DailySummarizer counts, per courier, the entries the ScheduleAggregator
// would show on that courier's schedule.
//
// The day is filtered once and partitioned into assigned entries keyed by
// courier and unassigned entries keyed by zone. A courier's load is its own
// partition plus the unassigned partitions of its preferred zones. Unassigned
// entries are visible to every covering courier, so the per-courier counts
// may add up to more than TotalPending.
type DailySummarizer struct {
	aggregator ScheduleAggregator
}

func NewDailySummarizer(aggregator ScheduleAggregator) DailySummarizer {
	return DailySummarizer{aggregator: aggregator}
}

// Summarize builds the summary of date. PerCourier follows the order of couriers.
func (s DailySummarizer) Summarize(
	date kernel.Date,
	entries []schedule.Entry,
	couriers []*courier.Courier,
	requesters RequesterTotals,
) DailySummary {
	day := s.aggregator.activeOn(date, entries)

	assignedTo := make(map[kernel.UUID]int)
	unassignedIn := make(map[kernel.UUID]int)
	for _, e := range day {
		if courierID := e.Request.CourierID(); courierID != nil {
			assignedTo[*courierID]++
			continue
		}
		unassignedIn[e.ZoneID()]++
	}

	loads := make([]CourierLoad, 0, len(couriers))
	for _, c := range couriers {
		count := assignedTo[c.ID()]
		for _, zoneID := range c.PreferredZones() {
			count += unassignedIn[zoneID]
		}
		loads = append(loads, CourierLoad{Courier: c, Count: count})
	}

	return DailySummary{
		Date:                      date,
		TotalPending:              len(day),
		TotalRequesters:           requesters.Total,
		TotalIncompleteRequesters: requesters.Incomplete,
		PerCourier:                loads,
	}
}
