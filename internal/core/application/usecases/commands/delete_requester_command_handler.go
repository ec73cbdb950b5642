package commands

import (
	"context"
)

// DeleteRequesterCommandHandler removes a requester together with every
// request it made.
type DeleteRequesterCommandHandler struct {
	uowFactory RequesterUoWFactory
}

func NewDeleteRequesterCommandHandler(uowFactory RequesterUoWFactory) DeleteRequesterCommandHandler {
	return DeleteRequesterCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteRequesterCommandHandler) Handle(ctx context.Context, cmd DeleteRequesterCommand) error {
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
	if _, err := requesterRepo.Get(ctx, cmd.RequesterID()); err != nil {
		return err
	}

	if err := requesterRepo.Delete(ctx, cmd.RequesterID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
