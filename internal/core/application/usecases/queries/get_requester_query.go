package queries

import (
	"context"
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrGetRequesterQueryIsNotConstructed = errors.New(
	"GetRequesterQuery must be created via NewGetRequesterQuery constructor",
)

// GetRequesterQuery loads one requester with its completeness flag and the
// list of contact fields still missing.
type GetRequesterQuery struct {
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRequesterQuery(requesterID kernel.UUID) (GetRequesterQuery, error) {
	if err := requesterID.Validate(); err != nil {
		return GetRequesterQuery{}, err
	}

	return GetRequesterQuery{requesterID: requesterID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRequesterQuery) Validate() error {
	return q.guard.Validate(ErrGetRequesterQueryIsNotConstructed)
}

func (q GetRequesterQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

type GetRequesterQueryHandler struct {
	requesters RequesterReader
}

func NewGetRequesterQueryHandler(requesters RequesterReader) GetRequesterQueryHandler {
	return GetRequesterQueryHandler{requesters: requesters}
}

func (h GetRequesterQueryHandler) Handle(ctx context.Context, query GetRequesterQuery) (RequesterResponse, error) {
	if err := query.Validate(); err != nil {
		return RequesterResponse{}, err
	}

	r, err := h.requesters.Get(ctx, query.RequesterID())
	if err != nil {
		return RequesterResponse{}, err
	}

	return requesterResponse(r), nil
}
