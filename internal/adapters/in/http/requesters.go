package http

import (
	"net/http"

	"vetpickup/internal/core/application/usecases/commands"
	"vetpickup/internal/core/application/usecases/queries"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/generated/servers"
	"vetpickup/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// SearchRequesters handles GET /api/v1/requesters?q=.
func (s *Server) SearchRequesters(ctx echo.Context, params servers.SearchRequestersParams) error {
	query := queries.NewSearchRequestersQuery(valueOf(params.Q))

	found, err := s.handlers.SearchRequesters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "search requesters", err)
	}

	return ctx.JSON(http.StatusOK, toRequesters(found))
}

// CreateRequester handles POST /api/v1/requesters.
func (s *Server) CreateRequester(ctx echo.Context) error {
	var body servers.CreateRequesterJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	profile, err := profileOf(body)
	if err != nil {
		return s.fail(ctx, "create requester", err)
	}

	cmd, err := commands.NewCreateRequesterCommand(profile)
	if err != nil {
		return s.fail(ctx, "create requester", err)
	}

	if err = s.handlers.CreateRequester.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "create requester", err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: cmd.RequesterID().Bytes()})
}

// ListIncompleteRequesters handles GET /api/v1/requesters/incomplete.
func (s *Server) ListIncompleteRequesters(ctx echo.Context) error {
	query := queries.NewListIncompleteRequestersQuery()

	incomplete, err := s.handlers.ListIncompleteRequesters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "list incomplete requesters", err)
	}

	return ctx.JSON(http.StatusOK, toRequesters(incomplete))
}

// ReportIncompleteRequesters handles POST /api/v1/requesters/incomplete/report.
func (s *Server) ReportIncompleteRequesters(ctx echo.Context) error {
	cmd := commands.NewReportIncompleteRequestersCommand()

	reported, err := s.handlers.ReportIncompleteRequesters.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "report incomplete requesters", err)
	}
	metrics.IncompleteRequesters.Set(float64(reported))

	return ctx.JSON(http.StatusOK, servers.IncompleteReport{Reported: reported})
}

// GetRequester handles GET /api/v1/requesters/{requesterId}.
func (s *Server) GetRequester(ctx echo.Context, requesterId openapi_types.UUID) error {
	id, err := kernel.UUIDOf(requesterId)
	if err != nil {
		return s.fail(ctx, "get requester", err)
	}

	query, err := queries.NewGetRequesterQuery(id)
	if err != nil {
		return s.fail(ctx, "get requester", err)
	}

	found, err := s.handlers.GetRequester.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "get requester", err)
	}

	return ctx.JSON(http.StatusOK, toRequester(found))
}

// UpdateRequester handles PUT /api/v1/requesters/{requesterId}.
func (s *Server) UpdateRequester(ctx echo.Context, requesterId openapi_types.UUID) error {
	var body servers.UpdateRequesterJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDOf(requesterId)
	if err != nil {
		return s.fail(ctx, "update requester", err)
	}

	profile, err := profileOf(body)
	if err != nil {
		return s.fail(ctx, "update requester", err)
	}

	cmd, err := commands.NewUpdateRequesterCommand(id, profile)
	if err != nil {
		return s.fail(ctx, "update requester", err)
	}

	if err = s.handlers.UpdateRequester.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "update requester", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRequester handles DELETE /api/v1/requesters/{requesterId}.
func (s *Server) DeleteRequester(ctx echo.Context, requesterId openapi_types.UUID) error {
	id, err := kernel.UUIDOf(requesterId)
	if err != nil {
		return s.fail(ctx, "delete requester", err)
	}

	cmd, err := commands.NewDeleteRequesterCommand(id)
	if err != nil {
		return s.fail(ctx, "delete requester", err)
	}

	if err = s.handlers.DeleteRequester.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "delete requester", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
