package commands

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrCompleteRequestCommandIsNotConstructed = errors.New(
	"CompleteRequestCommand must be created via NewCompleteRequestCommand constructor",
)

// CompleteRequestCommand records that the samples of a request were picked up.
type CompleteRequestCommand struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteRequestCommand(requestID kernel.UUID) (CompleteRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return CompleteRequestCommand{}, err
	}

	return CompleteRequestCommand{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteRequestCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRequestCommandIsNotConstructed)
}

func (c CompleteRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}
