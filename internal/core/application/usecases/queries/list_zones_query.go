package queries

import (
	"context"
	"errors"

	"vetpickup/internal/pkg/guard"
)

var ErrListZonesQueryIsNotConstructed = errors.New(
	"ListZonesQuery must be created via NewListZonesQuery constructor",
)

// ListZonesQuery lists every zone ordered by name.
type ListZonesQuery struct {
	guard guard.ConstructorGuard
}

func NewListZonesQuery() ListZonesQuery {
	return ListZonesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListZonesQuery) Validate() error {
	return q.guard.Validate(ErrListZonesQueryIsNotConstructed)
}

type ListZonesQueryHandler struct {
	zones ZoneReader
}

func NewListZonesQueryHandler(zones ZoneReader) ListZonesQueryHandler {
	return ListZonesQueryHandler{zones: zones}
}

func (h ListZonesQueryHandler) Handle(ctx context.Context, query ListZonesQuery) ([]ZoneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones, err := h.zones.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		result = append(result, zoneResponse(z))
	}
	return result, nil
}
