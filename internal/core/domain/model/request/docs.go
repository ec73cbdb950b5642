// Package request provides the Request aggregate: a pickup of veterinary
// samples and its lifecycle.
//
// The package includes:
//   - Request: the aggregate root with pickup details and the assigned courier
//   - Status: a state machine Pending -> Assigned -> Completed | Cancelled
//
// Key business rules:
//   - Requests start Pending with no courier
//   - Only Pending and Assigned requests can be assigned, completed or cancelled
//   - Completed and Cancelled are terminal
//   - The requester's address is copied into the request on save when asked to,
//     and a pickup address is mandatory afterwards
package request
