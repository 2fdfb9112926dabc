package database

import (
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"

	"github.com/carein/call-summary/pkg/config"
)

//go:embed migrations
var migrationsFS embed.FS

// migrationSource returns the embedded migrations and the sql-migrate dialect for a driver
func migrationSource(driver string) (migrate.MigrationSource, string, error) {
	var dialect string
	switch driver {
	case config.DriverPostgres:
		dialect = "postgres"
	case config.DriverSQLite:
		dialect = "sqlite3"
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", driver)
	}

	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations/" + dialect,
	}, dialect, nil
}

// Migrate applies (or rolls back) the embedded migrations for the driver.
// max limits how many migrations run; 0 means all.
func Migrate(db *gorm.DB, driver string, direction migrate.MigrationDirection, max int) (int, error) {
	source, dialect, err := migrationSource(driver)
	if err != nil {
		return 0, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate, error: %v", err)
	}

	n, err := migrate.ExecMax(sqlDB, dialect, source, direction, max)
	if err != nil {
		return n, fmt.Errorf("failed to apply migration, error: %v", err)
	}
	return n, nil
}

// AutoMigrate applies every pending up migration
func AutoMigrate(db *gorm.DB, driver string) (int, error) {
	return Migrate(db, driver, migrate.Up, 0)
}
