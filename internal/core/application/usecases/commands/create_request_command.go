package commands

import (
	"errors"
	"time"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/pkg/errs"
	"vetpickup/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand registers a pickup request.
//
// CourierID is optional. When given, the request is assigned to that courier
// right away, whatever its kind or zones. When absent the request stays
// Pending and callers usually follow up with AssignCourierCommand.
//
// Example:
//
//	cmd, err := NewCreateRequestCommand(requesterID, request.Details{
//	    UseRequesterAddress: true,
//	    PickupDate:          tomorrow,
//	}, nil, time.Now().In(loc))
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Printf("Registered request %s", cmd.RequestID())
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	requesterID  kernel.UUID
	details      request.Details
	courierID    *kernel.UUID
	registeredAt time.Time

	guard guard.ConstructorGuard
}

func NewCreateRequestCommand(
	requesterID kernel.UUID,
	details request.Details,
	courierID *kernel.UUID,
	registeredAt time.Time,
) (CreateRequestCommand, error) {
	command := CreateRequestCommand{
		requestID: kernel.NewUUID(),
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequesterID(requesterID),
		command.setCourierID(courierID),
		command.setRegisteredAt(registeredAt),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	return command, nil
}

func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

func (c CreateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CreateRequestCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c CreateRequestCommand) Details() request.Details {
	return c.details
}

// CourierID returns the manually chosen courier, or nil.
func (c CreateRequestCommand) CourierID() *kernel.UUID {
	if c.courierID == nil {
		return nil
	}
	id := *c.courierID
	return &id
}

func (c CreateRequestCommand) RegisteredAt() time.Time {
	return c.registeredAt
}

func (c *CreateRequestCommand) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requester", err)
	}

	c.requesterID = id
	return nil
}

func (c *CreateRequestCommand) setCourierID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	courierID := *id
	c.courierID = &courierID
	return nil
}

func (c *CreateRequestCommand) setRegisteredAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("registration time")
	}

	c.registeredAt = at
	return nil
}
