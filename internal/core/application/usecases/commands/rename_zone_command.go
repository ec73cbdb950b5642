package commands

import (
	"errors"
	"strings"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/zone"
	"vetpickup/internal/pkg/guard"
)

var ErrRenameZoneCommandIsNotConstructed = errors.New(
	"RenameZoneCommand must be created via NewRenameZoneCommand constructor",
)

type RenameZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

func NewRenameZoneCommand(zoneID kernel.UUID, name string) (RenameZoneCommand, error) {
	command := RenameZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setZoneID(zoneID),
		command.setName(name),
	); err != nil {
		return RenameZoneCommand{}, err
	}

	return command, nil
}

func (c RenameZoneCommand) Validate() error {
	return c.guard.Validate(ErrRenameZoneCommandIsNotConstructed)
}

func (c RenameZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c RenameZoneCommand) Name() string {
	return c.name
}

func (c *RenameZoneCommand) setZoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.zoneID = id
	return nil
}

func (c *RenameZoneCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return zone.ErrNameIsRequired
	}

	c.name = name
	return nil
}
