// Package databasetest provides migrated in-memory SQLite stores for tests.
package databasetest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/carein/call-summary/internal/infrastructure/database"
	"github.com/carein/call-summary/pkg/config"
)

var seq atomic.Int64

// New returns a fresh, fully migrated in-memory database private to the test
func New(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	db, err := database.Open(config.DriverSQLite, dsn, logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)

	_, err = database.AutoMigrate(db, config.DriverSQLite)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})
	return db
}
