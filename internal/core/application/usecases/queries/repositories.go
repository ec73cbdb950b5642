// Package queries contains read operations for retrieving system state.
// Queries return read models shaped for the HTTP layer and never write.
package queries

import (
	"context"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/core/domain/model/schedule"
	"vetpickup/internal/core/domain/model/zone"
)

// Read-side views of the repositories. Any ports repository satisfies the
// matching reader.
type (
	ZoneReader interface {
		Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)
		List(ctx context.Context) ([]*zone.Zone, error)
	}

	RequesterReader interface {
		Get(ctx context.Context, id kernel.UUID) (*requester.Requester, error)
		Search(ctx context.Context, term string, limit int) ([]*requester.Requester, error)
		ListWithUnknownData(ctx context.Context) ([]*requester.Requester, error)
		CountAll(ctx context.Context) (int, error)
		CountWithUnknownData(ctx context.Context) (int, error)
		CountByZone(ctx context.Context, zoneID kernel.UUID) (int, error)
	}

	CourierReader interface {
		Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
		List(ctx context.Context) ([]*courier.Courier, error)
		CountByZone(ctx context.Context, zoneID kernel.UUID) (int, error)
	}

	RequestReader interface {
		ListActiveByPickupDate(ctx context.Context, date kernel.Date) ([]schedule.Entry, error)
		CountByZoneAndPickupDate(ctx context.Context, zoneID kernel.UUID, date kernel.Date) (int, error)
	}
)
