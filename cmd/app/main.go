package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"vetpickup/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel, configs.LogFormat)

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		_ = app.Close()
	}()

	jobManager := app.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// A missing .env is fine: the environment may already be set.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:                    goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:                    goDotEnvVariable("DB_PORT", "5432"),
		DBUser:                    goDotEnvVariable("DB_USER", ""),
		DBPassword:                goDotEnvVariable("DB_PASSWORD", ""),
		DBName:                    goDotEnvVariable("DB_NAME", ""),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE", "disable"),
		StoreDriver:               goDotEnvVariable("STORE_DRIVER", cmd.StoreDriverPostgres),
		Timezone:                  goDotEnvVariable("TIMEZONE", "America/Santiago"),
		BookingWindowStart:        goDotEnvVariable("BOOKING_WINDOW_START", "11:00"),
		BookingWindowEnd:          goDotEnvVariable("BOOKING_WINDOW_END", "14:00"),
		LogLevel:                  goDotEnvVariable("LOG_LEVEL", "info"),
		LogFormat:                 goDotEnvVariable("LOG_FORMAT", "text"),
		PendingAssignmentSchedule: goDotEnvVariable("PENDING_ASSIGNMENT_SCHEDULE", ""),
		IncompleteReportSchedule:  goDotEnvVariable("INCOMPLETE_REPORT_SCHEDULE", ""),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.NewRouter(app.Clock())
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
