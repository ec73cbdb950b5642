package queries

import (
	"context"
)

type GetAllCouriersQueryHandler struct {
	couriers CourierReader
}

func NewGetAllCouriersQueryHandler(couriers CourierReader) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{couriers: couriers}
}

func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers, err := h.couriers.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]CourierResponse, 0, len(couriers))
	for _, c := range couriers {
		result = append(result, courierResponse(c))
	}
	return result, nil
}
