package commands

import (
	"errors"
	"strings"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/zone"
	"vetpickup/internal/pkg/guard"
)

var ErrCreateZoneCommandIsNotConstructed = errors.New(
	"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
)

// CreateZoneCommand registers a new zone. The zone ID is generated by the
// constructor so callers can report it back.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

func NewCreateZoneCommand(name string) (CreateZoneCommand, error) {
	command := CreateZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setZoneID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return command, nil
}

func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c CreateZoneCommand) Name() string {
	return c.name
}

func (c *CreateZoneCommand) setZoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.zoneID = id
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return zone.ErrNameIsRequired
	}

	c.name = name
	return nil
}
