package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"vetpickup/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc hands the embedded OpenAPI document to the swagger UI.
type openAPIDoc []byte

func (d openAPIDoc) ReadDoc() string {
	return string(d)
}

// swag panics when the same instance is registered twice.
var registerDoc sync.Once

// NewRouter builds the echo instance serving the API together with its
// documentation, metrics and health check.
func NewRouter(server *Server, window BookingWindowConfig, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode openapi document: %w", err)
	}
	registerDoc.Do(func() {
		swag.Register(swag.Name, openAPIDoc(doc))
	})

	if window.Skipper == nil {
		window.Skipper = SkipUnlessBooking
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "HTTP request", attrs...)
			return nil
		},
	}))
	e.Use(BookingWindowWithConfig(window))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/api/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
