package commands

import (
	"context"
)

// UpdateRequestCommandHandler edits a request. Saving re-applies the
// requester's current address when the request uses it.
type UpdateRequestCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateRequestCommandHandler(uowFactory UoWFactory) UpdateRequestCommandHandler {
	return UpdateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateRequestCommandHandler) Handle(ctx context.Context, cmd UpdateRequestCommand) error {
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

	requestRepo := uow.RequestRepository()
	req, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	owner, err := uow.RequesterRepository().Get(ctx, req.RequesterID())
	if err != nil {
		return err
	}

	if err = req.UpdateDetails(cmd.Details()); err != nil {
		return err
	}

	if courierID := cmd.CourierID(); courierID != nil && !req.IsAssignedTo(*courierID) {
		if _, err = uow.CourierRepository().Get(ctx, *courierID); err != nil {
			return err
		}
		if err = req.Assign(*courierID); err != nil {
			return err
		}
	}

	if err = req.ApplyRequesterAddress(owner); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
