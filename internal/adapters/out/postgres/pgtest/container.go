// Package pgtest starts a throwaway PostgreSQL for integration tests and
// migrates the schema into it.
package pgtest

import (
	"context"
	"time"

	pgadapter "vetpickup/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type Database struct {
	container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs a postgres:15-alpine container and opens a migrated connection.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	d := &Database{container: container}
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return d, err
	}
	if d.DB, err = pgadapter.Open(connStr); err != nil {
		return d, err
	}
	return d, pgadapter.Migrate(d.DB)
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE requests, courier_zones, couriers, requesters, zones CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.container == nil {
		return nil
	}
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return d.container.Terminate(ctx)
}
