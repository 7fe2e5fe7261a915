package database

import (
	"context"
	"testing"

	"pharmacy-admin-service/internal/domain/models"
	"pharmacy-admin-service/internal/infrastructure/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func memoryDSN() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared"
}

func TestMigrateAndHealthCheck(t *testing.T) {
	db, err := OpenSQLite(memoryDSN(), gormlogger.Silent)
	require.NoError(t, err)

	require.NoError(t, Migrate(db, MigrationModeAuto))
	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T table missing", m)
	}
	assert.NoError(t, HealthCheck(context.Background(), db))
}

func TestDropModeClearsData(t *testing.T) {
	db, err := OpenSQLite(memoryDSN(), gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	require.NoError(t, db.Create(&models.City{Name: "Gotham"}).Error)

	require.NoError(t, Migrate(db, MigrationModeDrop))

	var count int64
	require.NoError(t, db.Model(&models.City{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMigrateRejectsUnknownMode(t *testing.T) {
	db, err := OpenSQLite(memoryDSN(), gormlogger.Silent)
	require.NoError(t, err)
	assert.Error(t, Migrate(db, "alter"))
}

func TestForeignKeyCascade(t *testing.T) {
	db, err := OpenSQLite(memoryDSN(), gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	city := models.City{Name: "Gotham"}
	require.NoError(t, db.Create(&city).Error)
	require.NoError(t, db.Create(&models.Area{Name: "Downtown", CityID: city.ID}).Error)

	require.NoError(t, db.Delete(&city).Error)

	var count int64
	require.NoError(t, db.Model(&models.Area{}).Where("city_id = ?", city.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNewConnectionPoolSQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, DBName: memoryDSN(), DBLogLevel: "silent"}
	pool, err := NewConnectionPool(cfg)
	require.NoError(t, err)
	defer pool.Close()

	stats, err := pool.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats["max_open_connections"])
	assert.NoError(t, pool.HealthCheck(context.Background()))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, ParseLogLevel("silent"))
	assert.Equal(t, gormlogger.Info, ParseLogLevel("INFO"))
	assert.Equal(t, gormlogger.Warn, ParseLogLevel("whatever"))
}
