package queries

import (
	"context"
	"errors"

	"vetpickup/internal/pkg/guard"
)

var ErrListIncompleteRequestersQueryIsNotConstructed = errors.New(
	"ListIncompleteRequestersQuery must be created via NewListIncompleteRequestersQuery constructor",
)

// ListIncompleteRequestersQuery lists requesters whose email or address is
// flagged as unknown, ordered by name.
type ListIncompleteRequestersQuery struct {
	guard guard.ConstructorGuard
}

func NewListIncompleteRequestersQuery() ListIncompleteRequestersQuery {
	return ListIncompleteRequestersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListIncompleteRequestersQuery) Validate() error {
	return q.guard.Validate(ErrListIncompleteRequestersQueryIsNotConstructed)
}

type ListIncompleteRequestersQueryHandler struct {
	requesters RequesterReader
}

func NewListIncompleteRequestersQueryHandler(requesters RequesterReader) ListIncompleteRequestersQueryHandler {
	return ListIncompleteRequestersQueryHandler{requesters: requesters}
}

func (h ListIncompleteRequestersQueryHandler) Handle(
	ctx context.Context,
	query ListIncompleteRequestersQuery,
) ([]RequesterResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.requesters.ListWithUnknownData(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]RequesterResponse, 0, len(found))
	for _, r := range found {
		result = append(result, requesterResponse(r))
	}
	return result, nil
}
