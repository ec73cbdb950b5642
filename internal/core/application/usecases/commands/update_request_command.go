package commands

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/pkg/guard"
)

var ErrUpdateRequestCommandIsNotConstructed = errors.New(
	"UpdateRequestCommand must be created via NewUpdateRequestCommand constructor",
)

// UpdateRequestCommand edits the details of a request and optionally hands it
// to another courier.
type UpdateRequestCommand struct {
	requestID kernel.UUID
	details   request.Details
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateRequestCommand(
	requestID kernel.UUID,
	details request.Details,
	courierID *kernel.UUID,
) (UpdateRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return UpdateRequestCommand{}, err
	}

	command := UpdateRequestCommand{
		requestID: requestID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return UpdateRequestCommand{}, err
		}
		id := *courierID
		command.courierID = &id
	}

	return command, nil
}

func (c UpdateRequestCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRequestCommandIsNotConstructed)
}

func (c UpdateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c UpdateRequestCommand) Details() request.Details {
	return c.details
}

// CourierID returns the courier to reassign the request to, or nil to keep
// the current one.
func (c UpdateRequestCommand) CourierID() *kernel.UUID {
	if c.courierID == nil {
		return nil
	}
	id := *c.courierID
	return &id
}
