package inmemory

import (
	"cmp"
	"context"
	"slices"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/schedule"
	"vetpickup/internal/pkg/errs"
)

type RequestRepository struct {
	store *Store
}

func NewRequestRepository(store *Store) *RequestRepository {
	return &RequestRepository{store: store}
}

func (r *RequestRepository) Add(_ context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.write(func(t *tables) error {
		if _, ok := t.requests[aggregate.ID()]; ok {
			return errs.NewObjectAlreadyExistsError("request", aggregate.ID().String())
		}
		if err := t.checkRequestReferences(aggregate); err != nil {
			return err
		}
		t.requests[aggregate.ID()] = requestRecordOf(aggregate, t.nextSeq())
		return nil
	})
}

func (r *RequestRepository) Update(_ context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.write(func(t *tables) error {
		existing, ok := t.requests[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("request", aggregate.ID().String())
		}
		if err := t.checkRequestReferences(aggregate); err != nil {
			return err
		}
		t.requests[aggregate.ID()] = requestRecordOf(aggregate, existing.seq)
		return nil
	})
}

func (r *RequestRepository) Get(_ context.Context, id kernel.UUID) (*request.Request, error) {
	var found *request.Request
	err := r.store.read(func(t *tables) error {
		rec, ok := t.requests[id]
		if !ok {
			return errs.NewObjectNotFoundError("request", id.String())
		}
		var err error
		found, err = toRequest(rec)
		return err
	})
	return found, err
}

func (r *RequestRepository) ListActiveByPickupDate(_ context.Context, date kernel.Date) ([]schedule.Entry, error) {
	entries := make([]schedule.Entry, 0)
	err := r.store.read(func(t *tables) error {
		records := make([]requestRecord, 0)
		for _, rec := range t.requests {
			if rec.status.IsActive() && rec.details.PickupDate.IsEqual(date) {
				records = append(records, rec)
			}
		}
		slices.SortFunc(records, func(a, b requestRecord) int {
			return cmp.Compare(a.seq, b.seq)
		})

		for _, rec := range records {
			entry, err := t.entryOf(rec)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *RequestRepository) CountByZoneAndPickupDate(
	_ context.Context,
	zoneID kernel.UUID,
	date kernel.Date,
) (int, error) {
	n := 0
	err := r.store.read(func(t *tables) error {
		for _, rec := range t.requests {
			owner, ok := t.requesters[rec.requesterID]
			if ok && owner.profile.ZoneID.IsEqual(zoneID) && rec.details.PickupDate.IsEqual(date) {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (t *tables) entryOf(rec requestRecord) (schedule.Entry, error) {
	req, err := toRequest(rec)
	if err != nil {
		return schedule.Entry{}, err
	}

	ownerRec, ok := t.requesters[rec.requesterID]
	if !ok {
		return schedule.Entry{}, errs.NewObjectNotFoundError("requester", rec.requesterID.String())
	}
	owner, err := toRequester(ownerRec)
	if err != nil {
		return schedule.Entry{}, err
	}

	zoneRec, ok := t.zones[owner.ZoneID()]
	if !ok {
		return schedule.Entry{}, errs.NewObjectNotFoundError("zone", owner.ZoneID().String())
	}
	z, err := toZone(zoneRec)
	if err != nil {
		return schedule.Entry{}, err
	}

	return schedule.NewEntry(req, owner, z)
}

func (t *tables) checkRequestReferences(req *request.Request) error {
	if _, ok := t.requesters[req.RequesterID()]; !ok {
		return errs.NewObjectNotFoundError("requester", req.RequesterID().String())
	}
	if courierID := req.CourierID(); courierID != nil {
		if _, ok := t.couriers[*courierID]; !ok {
			return errs.NewObjectNotFoundError("courier", courierID.String())
		}
	}
	return nil
}

func requestRecordOf(req *request.Request, seq int64) requestRecord {
	return requestRecord{
		id:          req.ID(),
		requesterID: req.RequesterID(),
		details:     req.Details(),
		requestDate: req.RequestDate(),
		requestTime: req.RequestTime(),
		status:      req.Status(),
		courierID:   req.CourierID(),
		seq:         seq,
	}
}
