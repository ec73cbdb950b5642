package http

import (
	"context"
	"net/http"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/application/usecases/queries"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/generated/servers"
	"vetpickup/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetDaySchedule handles GET /api/v1/requests?date= - the active requests of
// a day grouped by courier.
func (s *Server) GetDaySchedule(ctx echo.Context, params servers.GetDayScheduleParams) error {
	query, err := queries.NewGetDayScheduleQuery(s.dateOrToday(params.Date))
	if err != nil {
		return s.fail(ctx, "retrieve day schedule", err)
	}

	rows, err := s.handlers.GetDaySchedule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "retrieve day schedule", err)
	}

	return ctx.JSON(http.StatusOK, toPickupRequests(rows))
}

// CreateRequest handles POST /api/v1/requests. The booking window is checked
// by middleware before this runs. Without a courier in the body the request
// goes through automatic assignment right after it is saved.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body servers.CreateRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requesterID, err := kernel.UUIDOf(body.RequesterId)
	if err != nil {
		return s.fail(ctx, "create request", err)
	}

	courierID, err := optionalUUID(body.CourierId)
	if err != nil {
		return s.fail(ctx, "create request", err)
	}

	useRequesterAddress := true
	if body.UseRequesterAddress != nil {
		useRequesterAddress = *body.UseRequesterAddress
	}
	details := detailsOf(body.PickupDate, useRequesterAddress, body.PickupAddress, body.Notes)

	cmd, err := commands.NewCreateRequestCommand(requesterID, details, courierID, s.clock.Now())
	if err != nil {
		return s.fail(ctx, "create request", err)
	}

	if err = s.handlers.CreateRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "create request", err)
	}
	metrics.RequestsCreatedTotal.Inc()

	response := servers.CreatedPickupRequest{Id: cmd.RequestID().Bytes()}
	if courierID != nil {
		return ctx.JSON(http.StatusCreated, response)
	}

	// The request is already stored; a failed assignment leaves it pending.
	assignment, err := s.assign(ctx.Request().Context(), cmd.RequestID())
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("assign courier").Inc()
		s.logger.ErrorContext(ctx.Request().Context(), "Automatic assignment failed",
			"request_id", cmd.RequestID().String(),
			"error", err,
		)
		return ctx.JSON(http.StatusCreated, response)
	}
	response.Assignment = &assignment

	return ctx.JSON(http.StatusCreated, response)
}

// UpdateRequest handles PUT /api/v1/requests/{requestId}.
func (s *Server) UpdateRequest(ctx echo.Context, requestId openapi_types.UUID) error {
	var body servers.UpdateRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDOf(requestId)
	if err != nil {
		return s.fail(ctx, "update request", err)
	}

	courierID, err := optionalUUID(body.CourierId)
	if err != nil {
		return s.fail(ctx, "update request", err)
	}

	details := detailsOf(body.PickupDate, body.UseRequesterAddress, body.PickupAddress, body.Notes)
	cmd, err := commands.NewUpdateRequestCommand(id, details, courierID)
	if err != nil {
		return s.fail(ctx, "update request", err)
	}

	if err = s.handlers.UpdateRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "update request", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/requests/{requestId}/assign. Finding no
// eligible courier is reported in the body, not as an error.
func (s *Server) AssignCourier(ctx echo.Context, requestId openapi_types.UUID) error {
	id, err := kernel.UUIDOf(requestId)
	if err != nil {
		return s.fail(ctx, "assign courier", err)
	}

	assignment, err := s.assign(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, "assign courier", err)
	}

	return ctx.JSON(http.StatusOK, assignment)
}

// CompleteRequest handles POST /api/v1/requests/{requestId}/complete.
func (s *Server) CompleteRequest(ctx echo.Context, requestId openapi_types.UUID) error {
	id, err := kernel.UUIDOf(requestId)
	if err != nil {
		return s.fail(ctx, "complete request", err)
	}

	cmd, err := commands.NewCompleteRequestCommand(id)
	if err != nil {
		return s.fail(ctx, "complete request", err)
	}

	if err = s.handlers.CompleteRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "complete request", err)
	}
	metrics.RequestTransitionsTotal.WithLabelValues(request.Completed.String()).Inc()

	return ctx.NoContent(http.StatusNoContent)
}

// CancelRequest handles POST /api/v1/requests/{requestId}/cancel.
func (s *Server) CancelRequest(ctx echo.Context, requestId openapi_types.UUID) error {
	id, err := kernel.UUIDOf(requestId)
	if err != nil {
		return s.fail(ctx, "cancel request", err)
	}

	cmd, err := commands.NewCancelRequestCommand(id)
	if err != nil {
		return s.fail(ctx, "cancel request", err)
	}

	if err = s.handlers.CancelRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "cancel request", err)
	}
	metrics.RequestTransitionsTotal.WithLabelValues(request.Cancelled.String()).Inc()

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) assign(ctx context.Context, requestID kernel.UUID) (servers.Assignment, error) {
	cmd, err := commands.NewAssignCourierCommand(requestID)
	if err != nil {
		return servers.Assignment{}, err
	}

	assignment, err := s.handlers.AssignCourier.Handle(ctx, cmd)
	if err != nil {
		return servers.Assignment{}, err
	}
	metrics.AssignmentsTotal.WithLabelValues(assignment.Outcome.String()).Inc()

	return toAssignment(requestID, assignment), nil
}
