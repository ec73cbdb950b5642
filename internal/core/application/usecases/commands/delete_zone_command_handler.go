package commands

import (
	"context"
)

// DeleteZoneCommandHandler removes a zone. The store drops the zone's
// requesters with their requests, and couriers stop covering it.
type DeleteZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

func NewDeleteZoneCommandHandler(uowFactory ZoneUoWFactory) DeleteZoneCommandHandler {
	return DeleteZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteZoneCommandHandler) Handle(ctx context.Context, cmd DeleteZoneCommand) error {
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
	if _, err := zoneRepo.Get(ctx, cmd.ZoneID()); err != nil {
		return err
	}

	if err := zoneRepo.Delete(ctx, cmd.ZoneID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
