package commands

import (
	"context"
)

// DeleteCourierCommandHandler removes a courier. Its requests lose their
// courier but keep their status; assigning them again is an explicit action.
type DeleteCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewDeleteCourierCommandHandler(uowFactory CourierUoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	if _, err := courierRepo.Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	if err := courierRepo.Delete(ctx, cmd.CourierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
