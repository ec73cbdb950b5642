package ports

import (
	"context"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/requester"
)

// RequesterRepository defines the persistence contract for requesters.
type RequesterRepository interface {
	Add(ctx context.Context, aggregate *requester.Requester) error

	Update(ctx context.Context, aggregate *requester.Requester) error

	// Delete removes the requester and every request it made.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns *errs.ObjectNotFoundError when the requester does not exist.
	Get(ctx context.Context, id kernel.UUID) (*requester.Requester, error)

	// Search matches term case-insensitively against name, email, phone and
	// address and returns at most limit requesters ordered by name.
	Search(ctx context.Context, term string, limit int) ([]*requester.Requester, error)

	// ListWithUnknownData returns requesters whose email or address is flagged
	// as unknown, ordered by name.
	ListWithUnknownData(ctx context.Context) ([]*requester.Requester, error)

	CountAll(ctx context.Context) (int, error)

	// CountWithUnknownData counts the requesters ListWithUnknownData would return.
	CountWithUnknownData(ctx context.Context) (int, error)

	CountByZone(ctx context.Context, zoneID kernel.UUID) (int, error)
}
