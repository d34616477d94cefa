package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-fee-dashboard/internal/config"
	"school-fee-dashboard/internal/models"
)

func sqliteConfig(t *testing.T, runMigrations bool) *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:          config.DriverSQLite,
			SQLitePath:      filepath.Join(t.TempDir(), "feedash.db"),
			MaxConnections:  2,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Minute,
			RunMigrations:   runMigrations,
		},
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitialize_SQLiteWithMigrations(t *testing.T) {
	db, err := Initialize(sqliteConfig(t, true), nil)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping(context.Background()))
	assert.True(t, db.Migrator().HasTable(&models.Transaction{}))
	assert.True(t, db.Migrator().HasTable(&models.School{}))

	tx := CreateTestTransaction(t, db, nil)
	var found models.Transaction
	require.NoError(t, db.First(&found, "custom_order_id = ?", tx.CustomOrderID).Error)
	assert.Equal(t, tx.ID, found.ID)
}

func TestInitialize_SQLiteWithoutMigrationsUsesNoSchema(t *testing.T) {
	db, err := Initialize(sqliteConfig(t, false), nil)
	require.NoError(t, err)
	defer db.Close()

	assert.False(t, db.Migrator().HasTable(&models.Transaction{}))
	require.NoError(t, db.AutoMigrate())
	assert.True(t, db.Migrator().HasTable(&models.Transaction{}))
}

func TestNew_SQLiteUsesSingleConnection(t *testing.T) {
	cfg := sqliteConfig(t, false)
	cfg.Database.MaxConnections = 10

	db, err := New(&cfg.Database, nil)
	require.NoError(t, err)
	defer db.Close()

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestPing_ClosedDatabase(t *testing.T) {
	db, err := New(&sqliteConfig(t, false).Database, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	err = db.Ping(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping sqlite database")
}
