// Package database opens connections to the catalog backend.
package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/mytheresa/catalog-browser/app/config"
	"github.com/mytheresa/catalog-browser/models"
)

//go:embed schema_postgres.sql
var postgresSchema string

//go:embed schema_sqlite.sql
var sqliteSchema string

// NewGorm opens a gorm connection to Postgres and returns it with a close function.
func NewGorm(dsn string) (*gorm.DB, func() error, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	return db, sqlDB.Close, nil
}

// OpenSQL opens a database/sql connection for the given driver and checks it.
func OpenSQL(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	var name string
	switch driver {
	case config.DriverPostgres:
		name = "postgres"
	case config.DriverSQLite:
		name = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == config.DriverSQLite {
		// An in-memory database exists per connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Placeholder returns the squirrel placeholder format for a driver.
func Placeholder(driver string) squirrel.PlaceholderFormat {
	if driver == config.DriverPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

// MigrateSQL creates the catalog schema on a database/sql connection.
func MigrateSQL(ctx context.Context, db *sql.DB, driver string) error {
	schema := sqliteSchema
	if driver == config.DriverPostgres {
		schema = postgresSchema
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply %s schema: %w", driver, err)
	}
	return nil
}

// MigrateGorm creates the catalog schema through gorm.
func MigrateGorm(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
