package commands

import (
	"context"
)

// UpdateRequesterCommandHandler rewrites a requester profile.
//
// Requests already on record keep the pickup address they were saved with.
// They pick up a new requester address only the next time they are saved.
type UpdateRequesterCommandHandler struct {
	uowFactory RequesterUoWFactory
}

func NewUpdateRequesterCommandHandler(uowFactory RequesterUoWFactory) UpdateRequesterCommandHandler {
	return UpdateRequesterCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateRequesterCommandHandler) Handle(ctx context.Context, cmd UpdateRequesterCommand) error {
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

	requesterRepo := uow.RequesterRepository()
	r, err := requesterRepo.Get(ctx, cmd.RequesterID())
	if err != nil {
		return err
	}

	if _, err = uow.ZoneRepository().Get(ctx, cmd.Profile().ZoneID); err != nil {
		return err
	}

	if err = r.Update(cmd.Profile()); err != nil {
		return err
	}

	if err = requesterRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
