package commands

import (
	"context"

	"vetpickup/internal/core/domain/model/requester"
)

type CreateRequesterCommandHandler struct {
	uowFactory RequesterUoWFactory
}

func NewCreateRequesterCommandHandler(uowFactory RequesterUoWFactory) CreateRequesterCommandHandler {
	return CreateRequesterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the profile, checks that the zone exists and persists the
// requester.
func (h CreateRequesterCommandHandler) Handle(ctx context.Context, cmd CreateRequesterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := requester.NewRequester(cmd.RequesterID(), cmd.Profile())
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

	if _, err = uow.ZoneRepository().Get(ctx, r.ZoneID()); err != nil {
		return err
	}

	if err = uow.RequesterRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
