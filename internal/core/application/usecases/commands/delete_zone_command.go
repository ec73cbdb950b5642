package commands

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrDeleteZoneCommandIsNotConstructed = errors.New(
	"DeleteZoneCommand must be created via NewDeleteZoneCommand constructor",
)

type DeleteZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteZoneCommand(zoneID kernel.UUID) (DeleteZoneCommand, error) {
	if err := zoneID.Validate(); err != nil {
		return DeleteZoneCommand{}, err
	}

	return DeleteZoneCommand{
		zoneID: zoneID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteZoneCommand) Validate() error {
	return c.guard.Validate(ErrDeleteZoneCommandIsNotConstructed)
}

func (c DeleteZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}
