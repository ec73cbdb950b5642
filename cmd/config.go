package cmd

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"vetpickup/internal/adapters/out/postgres"
	"vetpickup/internal/core/domain/model/kernel"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StoreDriver selects the persistence adapter: postgres or memory.
	StoreDriver string
	// Timezone is the IANA zone used for "today" and the booking window.
	Timezone string

	BookingWindowStart string
	BookingWindowEnd   string

	LogLevel  string
	LogFormat string

	// Cron specs with a seconds field. An empty spec disables the job.
	PendingAssignmentSchedule string
	IncompleteReportSchedule  string
}

func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func (c Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return location, nil
}

// BookingWindow parses the daily window in which requests may be registered.
func (c Config) BookingWindow() (start, end kernel.TimeOfDay, err error) {
	if start, err = kernel.ParseTimeOfDay(c.BookingWindowStart); err != nil {
		return kernel.TimeOfDay{}, kernel.TimeOfDay{}, fmt.Errorf("invalid BOOKING_WINDOW_START: %w", err)
	}
	if end, err = kernel.ParseTimeOfDay(c.BookingWindowEnd); err != nil {
		return kernel.TimeOfDay{}, kernel.TimeOfDay{}, fmt.Errorf("invalid BOOKING_WINDOW_END: %w", err)
	}
	if end.Before(start) {
		return kernel.TimeOfDay{}, kernel.TimeOfDay{}, fmt.Errorf("booking window ends at %s before it starts at %s", end, start)
	}
	return start, end, nil
}
