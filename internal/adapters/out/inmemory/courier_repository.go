package inmemory

import (
	"cmp"
	"context"
	"slices"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/errs"
)

type CourierRepository struct {
	store *Store
}

func NewCourierRepository(store *Store) *CourierRepository {
	return &CourierRepository{store: store}
}

func (r *CourierRepository) Add(_ context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.write(func(t *tables) error {
		if _, ok := t.couriers[aggregate.ID()]; ok {
			return errs.NewObjectAlreadyExistsError("courier", aggregate.ID().String())
		}
		t.couriers[aggregate.ID()] = courierRecordOf(aggregate, t.nextSeq())
		return nil
	})
}

func (r *CourierRepository) Update(_ context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.write(func(t *tables) error {
		existing, ok := t.couriers[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("courier", aggregate.ID().String())
		}
		t.couriers[aggregate.ID()] = courierRecordOf(aggregate, existing.seq)
		return nil
	})
}

// Delete detaches the courier from its requests without touching their status.
func (r *CourierRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.store.write(func(t *tables) error {
		if _, ok := t.couriers[id]; !ok {
			return errs.NewObjectNotFoundError("courier", id.String())
		}
		delete(t.couriers, id)

		for requestID, rec := range t.requests {
			if rec.courierID != nil && rec.courierID.IsEqual(id) {
				rec.courierID = nil
				t.requests[requestID] = rec
			}
		}
		return nil
	})
}

func (r *CourierRepository) Get(_ context.Context, id kernel.UUID) (*courier.Courier, error) {
	var found *courier.Courier
	err := r.store.read(func(t *tables) error {
		rec, ok := t.couriers[id]
		if !ok {
			return errs.NewObjectNotFoundError("courier", id.String())
		}
		var err error
		found, err = toCourier(rec)
		return err
	})
	return found, err
}

func (r *CourierRepository) List(_ context.Context) ([]*courier.Courier, error) {
	return r.list(func(courierRecord) bool { return true })
}

func (r *CourierRepository) FindByZoneAndKind(
	_ context.Context,
	zoneID kernel.UUID,
	kind courier.Kind,
) ([]*courier.Courier, error) {
	return r.list(func(rec courierRecord) bool {
		return rec.kind == kind && slices.ContainsFunc(rec.zones, zoneID.IsEqual)
	})
}

func (r *CourierRepository) CountByZone(_ context.Context, zoneID kernel.UUID) (int, error) {
	n := 0
	err := r.store.read(func(t *tables) error {
		for _, rec := range t.couriers {
			if slices.ContainsFunc(rec.zones, zoneID.IsEqual) {
				n++
			}
		}
		return nil
	})
	return n, err
}

// list returns the couriers matching keep in registration order.
func (r *CourierRepository) list(keep func(courierRecord) bool) ([]*courier.Courier, error) {
	var records []courierRecord
	_ = r.store.read(func(t *tables) error {
		for _, rec := range t.couriers {
			if keep(rec) {
				records = append(records, rec)
			}
		}
		return nil
	})
	slices.SortFunc(records, func(a, b courierRecord) int {
		return cmp.Compare(a.seq, b.seq)
	})

	result := make([]*courier.Courier, 0, len(records))
	for _, rec := range records {
		c, err := toCourier(rec)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func courierRecordOf(c *courier.Courier, seq int64) courierRecord {
	return courierRecord{
		id:    c.ID(),
		name:  c.Name(),
		kind:  c.Kind(),
		zones: c.PreferredZones(),
		seq:   seq,
	}
}
