package queries

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"vetpickup/internal/pkg/guard"
)

const (
	// MinSearchTermLength is the shortest term that reaches the store.
	MinSearchTermLength = 2
	// MaxSearchResults caps the number of requesters returned.
	MaxSearchResults = 10
)

var ErrSearchRequestersQueryIsNotConstructed = errors.New(
	"SearchRequestersQuery must be created via NewSearchRequestersQuery constructor",
)

// SearchRequestersQuery finds requesters by name, email, phone or address,
// case-insensitively. It backs the requester picker of the booking form.
type SearchRequestersQuery struct {
	term string

	guard guard.ConstructorGuard
}

func NewSearchRequestersQuery(term string) SearchRequestersQuery {
	return SearchRequestersQuery{term: strings.TrimSpace(term), guard: guard.NewConstructorGuard()}
}

func (q SearchRequestersQuery) Validate() error {
	return q.guard.Validate(ErrSearchRequestersQueryIsNotConstructed)
}

func (q SearchRequestersQuery) Term() string {
	return q.term
}

type SearchRequestersQueryHandler struct {
	requesters RequesterReader
}

func NewSearchRequestersQueryHandler(requesters RequesterReader) SearchRequestersQueryHandler {
	return SearchRequestersQueryHandler{requesters: requesters}
}

// Handle returns an empty slice for terms shorter than MinSearchTermLength
// without touching the store.
func (h SearchRequestersQueryHandler) Handle(
	ctx context.Context,
	query SearchRequestersQuery,
) ([]RequesterResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]RequesterResponse, 0)
	if utf8.RuneCountInString(query.Term()) < MinSearchTermLength {
		return result, nil
	}

	found, err := h.requesters.Search(ctx, query.Term(), MaxSearchResults)
	if err != nil {
		return nil, err
	}

	for _, r := range found {
		result = append(result, requesterResponse(r))
	}
	return result, nil
}
