package commands

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/pkg/guard"
)

var ErrCreateRequesterCommandIsNotConstructed = errors.New(
	"CreateRequesterCommand must be created via NewCreateRequesterCommand constructor",
)

// CreateRequesterCommand registers a requester. The profile is validated by
// the requester aggregate when the handler builds it, so every rule violation
// (including the email and address pairing) is reported before the store is
// touched.
//
// Example:
//
//	email, err := requester.ContactField("email", nil, true)
//	...
//	cmd, _ := NewCreateRequesterCommand(requester.Profile{
//	    Name:    "Clínica Puerto",
//	    Kind:    requester.Veterinaria,
//	    Phone:   "+56912345678",
//	    Email:   email,
//	    Address: kernel.Known("Av. Brasil 1234"),
//	    ZoneID:  zoneID,
//	})
//	err = handler.Handle(ctx, cmd)
type CreateRequesterCommand struct {
	requesterID kernel.UUID
	profile     requester.Profile

	guard guard.ConstructorGuard
}

func NewCreateRequesterCommand(profile requester.Profile) (CreateRequesterCommand, error) {
	if err := profile.ZoneID.Validate(); err != nil {
		return CreateRequesterCommand{}, err
	}

	return CreateRequesterCommand{
		requesterID: kernel.NewUUID(),
		profile:     profile,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRequesterCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequesterCommandIsNotConstructed)
}

func (c CreateRequesterCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c CreateRequesterCommand) Profile() requester.Profile {
	return c.profile
}
