package commands

import (
	"context"

	"vetpickup/internal/core/domain/model/zone"
)

// CreateZoneCommandHandler persists new zones. A duplicated name is reported
// by the repository as *errs.ObjectAlreadyExistsError.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	z, err := zone.NewZone(cmd.ZoneID(), cmd.Name())
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

	if err = uow.ZoneRepository().Add(ctx, z); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
