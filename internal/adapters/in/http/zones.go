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

// ListZones handles GET /api/v1/zones.
func (s *Server) ListZones(ctx echo.Context) error {
	zones, err := s.handlers.ListZones.Handle(ctx.Request().Context(), queries.NewListZonesQuery())
	if err != nil {
		return s.fail(ctx, "list zones", err)
	}

	response := make([]servers.Zone, 0, len(zones))
	for _, z := range zones {
		response = append(response, toZone(z))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateZone handles POST /api/v1/zones.
func (s *Server) CreateZone(ctx echo.Context) error {
	var body servers.CreateZoneJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateZoneCommand(body.Name)
	if err != nil {
		return s.fail(ctx, "create zone", err)
	}

	if err = s.handlers.CreateZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "create zone", err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: cmd.ZoneID().Bytes()})
}

// RenameZone handles PUT /api/v1/zones/{zoneId}.
func (s *Server) RenameZone(ctx echo.Context, zoneId openapi_types.UUID) error {
	var body servers.RenameZoneJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDOf(zoneId)
	if err != nil {
		return s.fail(ctx, "rename zone", err)
	}

	cmd, err := commands.NewRenameZoneCommand(id, body.Name)
	if err != nil {
		return s.fail(ctx, "rename zone", err)
	}

	if err = s.handlers.RenameZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "rename zone", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteZone handles DELETE /api/v1/zones/{zoneId}. Requesters of the zone
// and their requests go with it.
func (s *Server) DeleteZone(ctx echo.Context, zoneId openapi_types.UUID) error {
	id, err := kernel.UUIDOf(zoneId)
	if err != nil {
		return s.fail(ctx, "delete zone", err)
	}

	cmd, err := commands.NewDeleteZoneCommand(id)
	if err != nil {
		return s.fail(ctx, "delete zone", err)
	}

	if err = s.handlers.DeleteZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "delete zone", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetZoneStatistics handles GET /api/v1/zones/{zoneId}/statistics.
func (s *Server) GetZoneStatistics(
	ctx echo.Context,
	zoneId openapi_types.UUID,
	params servers.GetZoneStatisticsParams,
) error {
	id, err := kernel.UUIDOf(zoneId)
	if err != nil {
		return s.fail(ctx, "get zone statistics", err)
	}

	query, err := queries.NewGetZoneStatisticsQuery(id, s.dateOrToday(params.Date))
	if err != nil {
		return s.fail(ctx, "get zone statistics", err)
	}

	stats, err := s.handlers.GetZoneStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "get zone statistics", err)
	}

	return ctx.JSON(http.StatusOK, servers.ZoneStatistics{
		Couriers:       stats.Couriers,
		Date:           apiDate(stats.Date),
		Requesters:     stats.Requesters,
		RequestsOnDate: stats.RequestsOnDate,
		Zone:           toZone(stats.Zone),
	})
}
