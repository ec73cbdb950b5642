package commands

import (
	"context"
)

type RenameZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

func NewRenameZoneCommandHandler(uowFactory ZoneUoWFactory) RenameZoneCommandHandler {
	return RenameZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle renames an existing zone. Requesters and couriers keep referring to
// the zone by ID, so nothing else changes.
func (h RenameZoneCommandHandler) Handle(ctx context.Context, cmd RenameZoneCommand) error {
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

	zoneRepo := uow.ZoneRepository()
	z, err := zoneRepo.Get(ctx, cmd.ZoneID())
	if err != nil {
		return err
	}

	if err = z.Rename(cmd.Name()); err != nil {
		return err
	}

	if err = zoneRepo.Update(ctx, z); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
