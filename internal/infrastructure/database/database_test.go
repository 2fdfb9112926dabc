package database

import (
	"testing"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/carein/call-summary/pkg/config"
)

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "carein.db?_foreign_keys=on", withForeignKeys("carein.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "carein.db?_fk=1", withForeignKeys("carein.db?_fk=1"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "whatever", logger.Default.LogMode(logger.Silent))
	assert.Error(t, err)
}

func TestMigrate_UpAndDown(t *testing.T) {
	db, err := Open(config.DriverSQLite, "file:migrate_up_down?mode=memory&cache=shared", logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer CloseDB(db)

	n, err := AutoMigrate(db, config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.True(t, db.Migrator().HasTable("call_summaries"))
	assert.True(t, db.Migrator().HasTable("commlog"))

	// Already applied
	n, err = AutoMigrate(db, config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = Migrate(db, config.DriverSQLite, migrate.Down, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, db.Migrator().HasTable("commlog"))
	assert.True(t, db.Migrator().HasTable("call_summaries"))
}

func TestMigrationSource_Postgres(t *testing.T) {
	source, dialect, err := migrationSource(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "postgres", dialect)

	migrations, err := source.FindMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "0001_create_call_summaries.sql", migrations[0].Id)
}
