package commands

import (
	"context"
)

// UpdateCourierCommandHandler rewrites a courier. Requests already assigned
// to the courier stay assigned even when it stops covering their zone.
type UpdateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewUpdateCourierCommandHandler(uowFactory CourierUoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) error {
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
	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = c.Update(cmd.Name(), cmd.Kind(), cmd.ZoneIDs()); err != nil {
		return err
	}

	if err = ensureZonesExist(ctx, uow.ZoneRepository(), c.PreferredZones()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
