package http

import (
	"fmt"
	"net/http"

	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/generated/servers"
	"vetpickup/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// BookingWindowConfig defines the config for the BookingWindow middleware.
type BookingWindowConfig struct {
	// Skipper defines a function to skip middleware.
	Skipper middleware.Skipper

	// Start and End bound the window, both inclusive.
	Start kernel.TimeOfDay
	End   kernel.TimeOfDay

	// Clock must return times in the service time zone.
	Clock Clock
}

// SkipUnlessBooking lets every route through except POST /api/v1/requests.
func SkipUnlessBooking(c echo.Context) bool {
	return c.Request().Method != http.MethodPost || c.Path() != "/api/v1/requests"
}

// BookingWindowWithConfig rejects requests outside [Start, End] with 403.
// Only the HTTP surface is gated; the use cases accept requests at any hour.
func BookingWindowWithConfig(config BookingWindowConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}
	if config.Clock == nil {
		panic("echo: booking window middleware requires a clock")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			now := kernel.TimeOfDayOf(config.Clock.Now())
			if now.Within(config.Start, config.End) {
				return next(c)
			}

			metrics.BookingsRejectedTotal.Inc()
			return c.JSON(http.StatusForbidden, servers.Error{
				Code: http.StatusForbidden,
				Message: fmt.Sprintf(
					"Outside booking hours. Requests can only be booked between %s and %s. Current time: %s",
					clock(config.Start), clock(config.End), clock(now),
				),
			})
		}
	}
}
