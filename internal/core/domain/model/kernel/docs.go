// Package kernel provides the value objects shared by every aggregate of the
// pickup dispatch domain.
//
// The package includes:
//   - UUID: identifier of zones, requesters, couriers and requests
//   - Knowable: a value that is either Known or explicitly flagged as Unknown
//   - Date: a calendar day used for request and pickup dates
//   - TimeOfDay: a wall clock time used for request times and service hours
//
// All values are immutable. Their zero values are invalid and fail Validate,
// which lets aggregates detect fields that were never set.
package kernel
