package http

import (
	"net/http"

	"vetpickup/internal/core/application/usecases/queries"
	"vetpickup/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetDashboard handles GET /api/v1/dashboard?date=.
func (s *Server) GetDashboard(ctx echo.Context, params servers.GetDashboardParams) error {
	query, err := queries.NewGetDailySummaryQuery(s.dateOrToday(params.Date))
	if err != nil {
		return s.fail(ctx, "retrieve dashboard", err)
	}

	summary, err := s.handlers.GetDailySummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "retrieve dashboard", err)
	}

	loads := make([]servers.CourierLoad, 0, len(summary.PerCourier))
	for _, load := range summary.PerCourier {
		loads = append(loads, servers.CourierLoad{Count: load.Count, Courier: toCourier(load.Courier)})
	}

	return ctx.JSON(http.StatusOK, servers.DailySummary{
		Date:                      apiDate(summary.Date),
		PerCourier:                loads,
		TotalIncompleteRequesters: summary.TotalIncompleteRequesters,
		TotalPending:              summary.TotalPending,
		TotalRequesters:           summary.TotalRequesters,
	})
}
