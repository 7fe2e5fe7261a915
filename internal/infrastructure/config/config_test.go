package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SESSION_SECRET_KEY", "test-secret")
	t.Setenv("DEFAULT_ADMIN_PASSWORD", "admin-password")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV_TYPE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, SessionStoreRedis, cfg.SessionStore)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "admin@example.com", cfg.DefaultAdminEmail)
}

func TestLoadPrefersPrefixedVariables(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV_TYPE", "server")
	t.Setenv("DB_HOST", "shared-db")
	t.Setenv("SERVER_DB_HOST", "server-db")
	t.Setenv("DB_PORT", "3307")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "SERVER", cfg.EnvType)
	assert.Equal(t, "server-db", cfg.DBHost)
	assert.Equal(t, "3307", cfg.DBPort)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DEFAULT_ADMIN_PASSWORD", "admin-password")
	t.Setenv("SESSION_SECRET_KEY", "")
	require.NoError(t, os.Unsetenv("SESSION_SECRET_KEY"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsEmptySecret(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_SECRET_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "SESSION_SECRET_KEY")
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{DBDriver: DriverMySQL, DBUser: "root", DBPassword: "pw", DBHost: "db", DBPort: "3306", DBName: "pharmacies"}
	assert.Equal(t, "root:pw@tcp(db:3306)/pharmacies?charset=utf8mb4&parseTime=True&loc=Local", cfg.GetDSN())

	cfg.DBDriver = DriverPostgres
	cfg.DBPort = "5432"
	assert.Contains(t, cfg.GetDSN(), "host=db user=root password=pw dbname=pharmacies port=5432")

	cfg.DBDriver = DriverSQLite
	cfg.DBName = "pharmacies.db"
	assert.Equal(t, "pharmacies.db", cfg.GetDSN())
}
