package ports

import (
	"context"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/schedule"
)

// RequestRepository defines the persistence contract for pickup requests.
type RequestRepository interface {
	Add(ctx context.Context, aggregate *request.Request) error

	// Update overwrites the stored request; the last write wins.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get returns *errs.ObjectNotFoundError when the request does not exist.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// ListActiveByPickupDate returns the Pending and Assigned requests picked
	// up on date, each joined with its requester and the requester's zone, in
	// registration order.
	ListActiveByPickupDate(ctx context.Context, date kernel.Date) ([]schedule.Entry, error)

	// CountByZoneAndPickupDate counts requests of any status made by requesters
	// of zoneID and picked up on date.
	CountByZoneAndPickupDate(ctx context.Context, zoneID kernel.UUID, date kernel.Date) (int, error)
}
