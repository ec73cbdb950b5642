package inmemory

import (
	"cmp"
	"context"
	"slices"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/zone"
	"vetpickup/internal/pkg/errs"
)

type ZoneRepository struct {
	store *Store
}

func NewZoneRepository(store *Store) *ZoneRepository {
	return &ZoneRepository{store: store}
}

func (r *ZoneRepository) Add(_ context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.write(func(t *tables) error {
		if _, ok := t.zones[aggregate.ID()]; ok {
			return errs.NewObjectAlreadyExistsError("zone", aggregate.ID().String())
		}
		if err := t.checkZoneName(aggregate); err != nil {
			return err
		}
		t.zones[aggregate.ID()] = zoneRecord{id: aggregate.ID(), name: aggregate.Name()}
		return nil
	})
}

func (r *ZoneRepository) Update(_ context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.write(func(t *tables) error {
		if _, ok := t.zones[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("zone", aggregate.ID().String())
		}
		if err := t.checkZoneName(aggregate); err != nil {
			return err
		}
		t.zones[aggregate.ID()] = zoneRecord{id: aggregate.ID(), name: aggregate.Name()}
		return nil
	})
}

// Delete cascades to the zone's requesters and their requests, and removes
// the zone from every courier.
func (r *ZoneRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.store.write(func(t *tables) error {
		if _, ok := t.zones[id]; !ok {
			return errs.NewObjectNotFoundError("zone", id.String())
		}
		delete(t.zones, id)

		for requesterID, rec := range t.requesters {
			if rec.profile.ZoneID.IsEqual(id) {
				t.deleteRequester(requesterID)
			}
		}
		for courierID, rec := range t.couriers {
			rec.zones = slices.DeleteFunc(slices.Clone(rec.zones), id.IsEqual)
			t.couriers[courierID] = rec
		}
		return nil
	})
}

func (r *ZoneRepository) Get(_ context.Context, id kernel.UUID) (*zone.Zone, error) {
	var z *zone.Zone
	err := r.store.read(func(t *tables) error {
		rec, ok := t.zones[id]
		if !ok {
			return errs.NewObjectNotFoundError("zone", id.String())
		}
		var err error
		z, err = toZone(rec)
		return err
	})
	return z, err
}

func (r *ZoneRepository) List(_ context.Context) ([]*zone.Zone, error) {
	result := make([]*zone.Zone, 0)
	err := r.store.read(func(t *tables) error {
		for _, rec := range t.zones {
			z, err := toZone(rec)
			if err != nil {
				return err
			}
			result = append(result, z)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(result, func(a, b *zone.Zone) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return result, nil
}

func (t *tables) checkZoneName(z *zone.Zone) error {
	for id, rec := range t.zones {
		if rec.name == z.Name() && !id.IsEqual(z.ID()) {
			return errs.NewObjectAlreadyExistsError("zone", z.Name())
		}
	}
	return nil
}
