package commands

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrCancelRequestCommandIsNotConstructed = errors.New(
	"CancelRequestCommand must be created via NewCancelRequestCommand constructor",
)

type CancelRequestCommand struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelRequestCommand(requestID kernel.UUID) (CancelRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return CancelRequestCommand{}, err
	}

	return CancelRequestCommand{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelRequestCommandIsNotConstructed)
}

func (c CancelRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}
