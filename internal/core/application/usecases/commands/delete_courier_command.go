package commands

import (
	"errors"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/pkg/guard"
)

var ErrDeleteCourierCommandIsNotConstructed = errors.New(
	"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
)

type DeleteCourierCommand struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCourierCommand(courierID kernel.UUID) (DeleteCourierCommand, error) {
	if err := courierID.Validate(); err != nil {
		return DeleteCourierCommand{}, err
	}

	return DeleteCourierCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

func (c DeleteCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
