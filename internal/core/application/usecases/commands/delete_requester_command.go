package commands

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrDeleteRequesterCommandIsNotConstructed = errors.New(
	"DeleteRequesterCommand must be created via NewDeleteRequesterCommand constructor",
)

type DeleteRequesterCommand struct {
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRequesterCommand(requesterID kernel.UUID) (DeleteRequesterCommand, error) {
	if err := requesterID.Validate(); err != nil {
		return DeleteRequesterCommand{}, err
	}

	return DeleteRequesterCommand{
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteRequesterCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRequesterCommandIsNotConstructed)
}

func (c DeleteRequesterCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
