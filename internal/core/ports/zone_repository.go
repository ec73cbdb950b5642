// Package ports defines the persistence contracts of the pickup dispatch core.
// Adapters implement them; application handlers depend on them only.
package ports

import (
	"context"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for zones.
type ZoneRepository interface {
	// Add persists a new zone. A duplicated name yields *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Update persists a renamed zone. A duplicated name yields *errs.ObjectAlreadyExistsError.
	Update(ctx context.Context, aggregate *zone.Zone) error

	// Delete removes a zone together with its requesters and their requests.
	// Couriers stop covering the zone.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns *errs.ObjectNotFoundError when the zone does not exist.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// List returns every zone ordered by name.
	List(ctx context.Context) ([]*zone.Zone, error)
}
