package inmemory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/pkg/errs"
)

type RequesterRepository struct {
	store *Store
}

func NewRequesterRepository(store *Store) *RequesterRepository {
	return &RequesterRepository{store: store}
}

func (r *RequesterRepository) Add(_ context.Context, aggregate *requester.Requester) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.write(func(t *tables) error {
		if _, ok := t.requesters[aggregate.ID()]; ok {
			return errs.NewObjectAlreadyExistsError("requester", aggregate.ID().String())
		}
		if _, ok := t.zones[aggregate.ZoneID()]; !ok {
			return errs.NewObjectNotFoundError("zone", aggregate.ZoneID().String())
		}
		t.requesters[aggregate.ID()] = requesterRecord{id: aggregate.ID(), profile: aggregate.Profile()}
		return nil
	})
}

func (r *RequesterRepository) Update(_ context.Context, aggregate *requester.Requester) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.write(func(t *tables) error {
		if _, ok := t.requesters[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("requester", aggregate.ID().String())
		}
		if _, ok := t.zones[aggregate.ZoneID()]; !ok {
			return errs.NewObjectNotFoundError("zone", aggregate.ZoneID().String())
		}
		t.requesters[aggregate.ID()] = requesterRecord{id: aggregate.ID(), profile: aggregate.Profile()}
		return nil
	})
}

func (r *RequesterRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.store.write(func(t *tables) error {
		if _, ok := t.requesters[id]; !ok {
			return errs.NewObjectNotFoundError("requester", id.String())
		}
		t.deleteRequester(id)
		return nil
	})
}

func (r *RequesterRepository) Get(_ context.Context, id kernel.UUID) (*requester.Requester, error) {
	var found *requester.Requester
	err := r.store.read(func(t *tables) error {
		rec, ok := t.requesters[id]
		if !ok {
			return errs.NewObjectNotFoundError("requester", id.String())
		}
		var err error
		found, err = toRequester(rec)
		return err
	})
	return found, err
}

func (r *RequesterRepository) Search(_ context.Context, term string, limit int) ([]*requester.Requester, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	matches, err := r.list(func(rec requesterRecord) bool {
		p := rec.profile
		for _, field := range []string{p.Name, p.Phone, p.Email.ValueOr(""), p.Address.ValueOr("")} {
			if strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *RequesterRepository) ListWithUnknownData(_ context.Context) ([]*requester.Requester, error) {
	return r.list(hasUnknownData)
}

func (r *RequesterRepository) CountAll(_ context.Context) (int, error) {
	return r.count(func(requesterRecord) bool { return true })
}

func (r *RequesterRepository) CountWithUnknownData(_ context.Context) (int, error) {
	return r.count(hasUnknownData)
}

func (r *RequesterRepository) CountByZone(_ context.Context, zoneID kernel.UUID) (int, error) {
	return r.count(func(rec requesterRecord) bool {
		return rec.profile.ZoneID.IsEqual(zoneID)
	})
}

// list returns the requesters matching keep, ordered by name.
func (r *RequesterRepository) list(keep func(requesterRecord) bool) ([]*requester.Requester, error) {
	result := make([]*requester.Requester, 0)
	err := r.store.read(func(t *tables) error {
		for _, rec := range t.requesters {
			if !keep(rec) {
				continue
			}
			found, err := toRequester(rec)
			if err != nil {
				return err
			}
			result = append(result, found)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(result, func(a, b *requester.Requester) int {
		return cmp.Or(
			cmp.Compare(a.Name(), b.Name()),
			cmp.Compare(a.ID().String(), b.ID().String()),
		)
	})
	return result, nil
}

func (r *RequesterRepository) count(keep func(requesterRecord) bool) (int, error) {
	n := 0
	err := r.store.read(func(t *tables) error {
		for _, rec := range t.requesters {
			if keep(rec) {
				n++
			}
		}
		return nil
	})
	return n, err
}

func hasUnknownData(rec requesterRecord) bool {
	return rec.profile.Email.IsUnknown() || rec.profile.Address.IsUnknown()
}

func (t *tables) deleteRequester(id kernel.UUID) {
	delete(t.requesters, id)
	for requestID, rec := range t.requests {
		if rec.requesterID.IsEqual(id) {
			delete(t.requests, requestID)
		}
	}
}
