// Package services provides the domain services of pickup dispatch: the
// decision logic that spans requests, requesters, zones and couriers.
//
// The package includes:
//   - CourierDispatcher: picks the courier of a request from zone coverage
//   - ScheduleAggregator: builds the day schedule and each courier's schedule
//   - DailySummarizer: per-courier counts for the dashboard
//
// The services are pure. They work on aggregates that the application layer
// loaded beforehand and never touch the store themselves.
package services
