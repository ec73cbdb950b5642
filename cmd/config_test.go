package cmd

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_BookingWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantStart string
		wantEnd   string
		wantErr   string
	}{
		{name: "default window", start: "11:00", end: "14:00", wantStart: "11:00:00", wantEnd: "14:00:00"},
		{name: "with seconds", start: "08:30:15", end: "08:30:15", wantStart: "08:30:15", wantEnd: "08:30:15"},
		{name: "invalid start", start: "25:00", end: "14:00", wantErr: "BOOKING_WINDOW_START"},
		{name: "invalid end", start: "11:00", end: "noon", wantErr: "BOOKING_WINDOW_END"},
		{name: "reversed", start: "14:00", end: "11:00", wantErr: "before it starts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Config{BookingWindowStart: tt.start, BookingWindowEnd: tt.end}

			start, end, err := config.BookingWindow()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start.String())
			assert.Equal(t, tt.wantEnd, end.String())
		})
	}
}

func TestConfig_Location(t *testing.T) {
	location, err := Config{Timezone: "America/Santiago"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Santiago", location.String())

	_, err = Config{Timezone: "Mars/Olympus"}.Location()
	assert.ErrorContains(t, err, "invalid TIMEZONE")
}

func TestConfig_Postgres(t *testing.T) {
	config := Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "vet",
		DBPassword: "secret",
		DBName:     "pickups",
		DBSslMode:  "disable",
	}

	pg := config.Postgres()
	assert.Equal(t, "db", pg.Host)
	assert.Equal(t, "pickups", pg.DBName)
	assert.Equal(t, "disable", pg.SSLMode)
}

func TestNewCompositionRoot_UnknownStoreDriver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewCompositionRoot(Config{StoreDriver: "sqlite", Timezone: "UTC"}, logger)
	assert.ErrorContains(t, err, `unknown STORE_DRIVER "sqlite"`)
}

func TestNewCompositionRoot_Memory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	root, err := NewCompositionRoot(Config{
		StoreDriver:        StoreDriverMemory,
		Timezone:           "UTC",
		BookingWindowStart: "11:00",
		BookingWindowEnd:   "14:00",
	}, logger)
	require.NoError(t, err)
	defer func() { require.NoError(t, root.Close()) }()

	e, err := root.NewRouter(root.Clock())
	require.NoError(t, err)
	assert.NotNil(t, e)
	assert.NotNil(t, root.NewJobManager())
}
