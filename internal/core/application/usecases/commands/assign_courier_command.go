package commands

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand asks for a courier to be attached to one request.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(requestID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	assignment, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(assignment.Message())
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(requestID kernel.UUID) (AssignCourierCommand, error) {
	command := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRequestID(requestID); err != nil {
		return AssignCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *AssignCourierCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}
