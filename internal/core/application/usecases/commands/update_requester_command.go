package commands

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/pkg/guard"
)

var ErrUpdateRequesterCommandIsNotConstructed = errors.New(
	"UpdateRequesterCommand must be created via NewUpdateRequesterCommand constructor",
)

// UpdateRequesterCommand replaces the whole profile of a requester.
type UpdateRequesterCommand struct {
	requesterID kernel.UUID
	profile     requester.Profile

	guard guard.ConstructorGuard
}

func NewUpdateRequesterCommand(requesterID kernel.UUID, profile requester.Profile) (UpdateRequesterCommand, error) {
	if err := errors.Join(
		requesterID.Validate(),
		profile.ZoneID.Validate(),
	); err != nil {
		return UpdateRequesterCommand{}, err
	}

	return UpdateRequesterCommand{
		requesterID: requesterID,
		profile:     profile,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRequesterCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRequesterCommandIsNotConstructed)
}

func (c UpdateRequesterCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c UpdateRequesterCommand) Profile() requester.Profile {
	return c.profile
}
