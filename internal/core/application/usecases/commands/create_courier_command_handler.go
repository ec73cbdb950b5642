package commands

import (
	"context"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/ports"
)

// CreateCourierCommandHandler persists new couriers after checking that every
// preferred zone exists.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.Kind(), cmd.ZoneIDs())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = ensureZonesExist(ctx, uow.ZoneRepository(), c.PreferredZones()); err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureZonesExist(ctx context.Context, zoneRepo ports.ZoneRepository, zoneIDs []kernel.UUID) error {
	for _, id := range zoneIDs {
		if _, err := zoneRepo.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
