package commands

import (
	"context"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
)

type CompleteRequestCommandHandler struct {
	uowFactory UoWFactory
}

func NewCompleteRequestCommandHandler(uowFactory UoWFactory) CompleteRequestCommandHandler {
	return CompleteRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves a Pending or Assigned request to Completed. Terminal requests
// are rejected with *errs.ValueIsInvalidError.
func (h CompleteRequestCommandHandler) Handle(ctx context.Context, cmd CompleteRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionRequest(ctx, h.uowFactory, cmd.RequestID(), (*request.Request).Complete)
}

// transitionRequest loads a request, applies one status transition and saves
// it within a single unit of work.
func transitionRequest(
	ctx context.Context,
	uowFactory UoWFactory,
	requestID kernel.UUID,
	transition func(*request.Request) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()
	req, err := requestRepo.Get(ctx, requestID)
	if err != nil {
		return err
	}

	owner, err := uow.RequesterRepository().Get(ctx, req.RequesterID())
	if err != nil {
		return err
	}

	if err = transition(req); err != nil {
		return err
	}

	if err = req.ApplyRequesterAddress(owner); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
