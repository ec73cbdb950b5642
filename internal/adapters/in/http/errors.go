package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"vetpickup/internal/generated/servers"
	"vetpickup/internal/pkg/errs"
	"vetpickup/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error to an HTTP status. Anything that does not
// unwrap to a known sentinel is a server error.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvariantViolated):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Server errors are logged and counted
// under operation; their message is not exposed.
func (s *Server) fail(ctx echo.Context, operation string, err error) error {
	status := statusOf(err)
	if status != http.StatusInternalServerError {
		return ctx.JSON(status, servers.Error{Code: status, Message: err.Error()})
	}

	metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
	s.logger.ErrorContext(ctx.Request().Context(), "Operation failed", "operation", operation, "error", err)
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: fmt.Sprintf("Failed to %s", operation),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorHandler renders errors raised outside the handlers (routing, parameter
// binding, panics) with the same body as the handlers do.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled error", "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", err)
		}
	}
}
