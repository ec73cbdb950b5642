package ports

import (
	"context"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for couriers and their
// preferred zones.
//
// "Natural order" below is the order in which couriers were added. The
// dispatcher relies on it to pick the same courier every time.
type CourierRepository interface {
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists name, kind and the full set of preferred zones.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Delete removes the courier. Its requests lose their courier but keep
	// their status.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns *errs.ObjectNotFoundError when the courier does not exist.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// List returns every courier in natural order.
	List(ctx context.Context) ([]*courier.Courier, error)

	// FindByZoneAndKind returns couriers of kind covering zoneID in natural order.
	FindByZoneAndKind(ctx context.Context, zoneID kernel.UUID, kind courier.Kind) ([]*courier.Courier, error)

	// CountByZone counts couriers of any kind covering zoneID.
	CountByZone(ctx context.Context, zoneID kernel.UUID) (int, error)
}
