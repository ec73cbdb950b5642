package postgres

import (
	"database/sql"
	"fmt"

	"vetpickup/internal/adapters/out/postgres/courierrepo"
	"vetpickup/internal/adapters/out/postgres/requestrepo"
	"vetpickup/internal/adapters/out/postgres/requesterrepo"
	"vetpickup/internal/adapters/out/postgres/zonerepo"

	_ "github.com/lib/pq"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the connection settings of the PostgreSQL store.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the settings in the key/value form understood by lib/pq.
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslMode,
	)
}

// Open connects to PostgreSQL through lib/pq and wraps the pool in GORM.
// Both key/value and URL connection strings are accepted.
//
// Example:
//
//	db, err := postgres.Open(cfg.DSN())
//	if err != nil {
//	    log.Fatalf("failed to connect database: %v", err)
//	}
//	if err := postgres.Migrate(db); err != nil {
//	    log.Fatalf("failed to migrate database: %v", err)
//	}
func Open(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table, parents first so foreign keys
// can be attached.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&zonerepo.ZoneDTO{},
		&requesterrepo.RequesterDTO{},
		&courierrepo.CourierDTO{},
		&courierrepo.CourierZoneDTO{},
		&requestrepo.RequestDTO{},
	)
}
