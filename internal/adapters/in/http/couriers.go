package http

import (
	"net/http"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/application/usecases/queries"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) ListCouriers(ctx echo.Context) error {
	couriers, err := s.handlers.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return s.fail(ctx, "retrieve couriers", err)
	}

	response := make([]servers.Courier, 0, len(couriers))
	for _, c := range couriers {
		response = append(response, toCourier(c))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - creates a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body servers.CreateCourierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := courierKindOf(body.Kind)
	if err != nil {
		return s.fail(ctx, "create courier", err)
	}

	zoneIDs, err := uuids(body.PreferredZones)
	if err != nil {
		return s.fail(ctx, "create courier", err)
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name, kind, zoneIDs)
	if err != nil {
		return s.fail(ctx, "create courier", err)
	}

	if err = s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "create courier", err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: cmd.CourierID().Bytes()})
}

// UpdateCourier handles PUT /api/v1/couriers/{courierId}.
func (s *Server) UpdateCourier(ctx echo.Context, courierId openapi_types.UUID) error {
	var body servers.UpdateCourierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDOf(courierId)
	if err != nil {
		return s.fail(ctx, "update courier", err)
	}

	kind, err := courierKindOf(body.Kind)
	if err != nil {
		return s.fail(ctx, "update courier", err)
	}

	zoneIDs, err := uuids(body.PreferredZones)
	if err != nil {
		return s.fail(ctx, "update courier", err)
	}

	cmd, err := commands.NewUpdateCourierCommand(id, body.Name, kind, zoneIDs)
	if err != nil {
		return s.fail(ctx, "update courier", err)
	}

	if err = s.handlers.UpdateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "update courier", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCourier handles DELETE /api/v1/couriers/{courierId}. Requests of the
// courier lose it but keep their status.
func (s *Server) DeleteCourier(ctx echo.Context, courierId openapi_types.UUID) error {
	id, err := kernel.UUIDOf(courierId)
	if err != nil {
		return s.fail(ctx, "delete courier", err)
	}

	cmd, err := commands.NewDeleteCourierCommand(id)
	if err != nil {
		return s.fail(ctx, "delete courier", err)
	}

	if err = s.handlers.DeleteCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "delete courier", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCourierSchedule handles GET /api/v1/couriers/{courierId}/schedule.
func (s *Server) GetCourierSchedule(
	ctx echo.Context,
	courierId openapi_types.UUID,
	params servers.GetCourierScheduleParams,
) error {
	id, err := kernel.UUIDOf(courierId)
	if err != nil {
		return s.fail(ctx, "get courier schedule", err)
	}

	query, err := queries.NewGetCourierScheduleQuery(id, s.dateOrToday(params.Date))
	if err != nil {
		return s.fail(ctx, "get courier schedule", err)
	}

	schedule, err := s.handlers.GetCourierSchedule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "get courier schedule", err)
	}

	return ctx.JSON(http.StatusOK, servers.CourierSchedule{
		Courier:  toCourier(schedule.Courier),
		Date:     apiDate(schedule.Date),
		Requests: toPickupRequests(schedule.Requests),
	})
}
