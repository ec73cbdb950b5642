package commands

import (
	"context"

	"vetpickup/internal/core/domain/model/request"
)

// CancelRequestCommandHandler drops a pickup. The courier, if any, stays
// recorded on the request.
type CancelRequestCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelRequestCommandHandler(uowFactory UoWFactory) CancelRequestCommandHandler {
	return CancelRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelRequestCommandHandler) Handle(ctx context.Context, cmd CancelRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return transitionRequest(ctx, h.uowFactory, cmd.RequestID(), (*request.Request).Cancel)
}
