package commands

import (
	"context"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/services"
)

// AssignCourierCommandHandler attaches a fixed courier covering the
// requester's zone to a request.
//
// The handler is idempotent: a request that already has a courier is
// reported as such and nothing is written. Otherwise at most one request
// update happens per call.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.CourierDispatcher
}

func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewCourierDispatcher(),
	}
}

// Handle loads the request with its requester and zone, picks the candidate
// couriers and lets CourierDispatcher decide. The returned Assignment carries
// the outcome and a human readable message; NoEligibleCourier is not an error.
func (h AssignCourierCommandHandler) Handle(
	ctx context.Context,
	command AssignCourierCommand,
) (services.Assignment, error) {
	if err := command.Validate(); err != nil {
		return services.Assignment{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Assignment{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()
	req, err := requestRepo.Get(ctx, command.RequestID())
	if err != nil {
		return services.Assignment{}, err
	}

	owner, err := uow.RequesterRepository().Get(ctx, req.RequesterID())
	if err != nil {
		return services.Assignment{}, err
	}

	z, err := uow.ZoneRepository().Get(ctx, owner.ZoneID())
	if err != nil {
		return services.Assignment{}, err
	}

	var candidates []*courier.Courier
	if courierID := req.CourierID(); courierID != nil {
		current, err := uow.CourierRepository().Get(ctx, *courierID)
		if err != nil {
			return services.Assignment{}, err
		}
		candidates = []*courier.Courier{current}
	} else {
		candidates, err = uow.CourierRepository().FindByZoneAndKind(ctx, z.ID(), courier.Fixed)
		if err != nil {
			return services.Assignment{}, err
		}
	}

	assignment, err := h.dispatcher.Dispatch(req, owner, z, candidates)
	if err != nil {
		return services.Assignment{}, err
	}

	if !assignment.RequiresSave() {
		return assignment, nil
	}

	if err = req.ApplyRequesterAddress(owner); err != nil {
		return services.Assignment{}, err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return services.Assignment{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Assignment{}, err
	}

	return assignment, nil
}
