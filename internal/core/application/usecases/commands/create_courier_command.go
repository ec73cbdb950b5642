package commands

import (
	"errors"
	"slices"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a courier with its kind and the zones it
// prefers to serve.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("Rosa", courier.Fixed, []kernel.UUID{valparaisoID})
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
//	fmt.Printf("Created courier with ID: %s", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	kind      courier.Kind
	zoneIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateCourierCommand(name string, kind courier.Kind, zoneIDs []kernel.UUID) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setKind(kind),
	); err != nil {
		return CreateCourierCommand{}, err
	}
	command.name = name
	command.zoneIDs = slices.Clone(zoneIDs)

	return command, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c CreateCourierCommand) Name() string {
	return c.name
}

func (c CreateCourierCommand) Kind() courier.Kind {
	return c.kind
}

func (c CreateCourierCommand) ZoneIDs() []kernel.UUID {
	return slices.Clone(c.zoneIDs)
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setKind(kind courier.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
