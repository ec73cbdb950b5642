package commands

import (
	"context"

	"vetpickup/internal/core/domain/model/request"
)

// CreateRequestCommandHandler registers requests. The requester must exist
// and, after copying the requester's address when asked to, the request must
// have a pickup address.
type CreateRequestCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateRequestCommandHandler(uowFactory UoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	req, err := request.NewRequest(cmd.RequestID(), cmd.RequesterID(), cmd.Details(), cmd.RegisteredAt())
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

	owner, err := uow.RequesterRepository().Get(ctx, cmd.RequesterID())
	if err != nil {
		return err
	}

	if courierID := cmd.CourierID(); courierID != nil {
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

	if err = uow.RequestRepository().Add(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
