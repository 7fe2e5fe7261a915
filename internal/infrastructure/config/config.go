package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported session stores.
const (
	SessionStoreRedis    = "redis"
	SessionStoreDatabase = "database"
)

// Config stores all configuration of the application.
//
// Every key is first looked up with the environment prefix (LOCAL_ or
// SERVER_, chosen by ENV_TYPE) and then without it.
type Config struct {
	// Environment type
	EnvType string `ignored:"true"`

	// Database
	DBDriver        string `envconfig:"DB_DRIVER" default:"mysql"`
	DBHost          string `envconfig:"DB_HOST" default:"localhost"`
	DBUser          string `envconfig:"DB_USER"`
	DBPassword      string `envconfig:"DB_PASSWORD"`
	DBName          string `envconfig:"DB_NAME" default:"pharmacies"`
	DBPort          string `envconfig:"DB_PORT" default:"3306"`
	DBMigrationMode string `envconfig:"DB_MIGRATION_MODE" default:"auto"` // "auto" or "drop"
	DBLogLevel      string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	// Server
	ServerPort         string   `envconfig:"SERVER_PORT" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	LoginRateLimit     float64  `envconfig:"LOGIN_RATE_LIMIT" default:"5"`
	LoginRateBurst     int      `envconfig:"LOGIN_RATE_BURST" default:"10"`

	// Redis
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Sessions
	SessionStore        string        `envconfig:"SESSION_STORE" default:"redis"`
	SessionSecretKey    string        `envconfig:"SESSION_SECRET_KEY" required:"true"`
	SessionTTL          time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	SessionCookieName   string        `envconfig:"SESSION_COOKIE_NAME" default:"pharmacies_session"`
	SessionCookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SessionCleanupSpec  string        `envconfig:"SESSION_CLEANUP_SPEC" default:"@hourly"`

	// Admin seeding
	DefaultAdminEmail    string `envconfig:"DEFAULT_ADMIN_EMAIL" default:"admin@example.com"`
	DefaultAdminPassword string `envconfig:"DEFAULT_ADMIN_PASSWORD" required:"true"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration for the environment selected by ENV_TYPE.
func Load() (*Config, error) {
	envType := strings.ToUpper(getEnv("ENV_TYPE", "LOCAL"))
	if envType != "LOCAL" && envType != "SERVER" {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		envType = "LOCAL"
	}

	cfg := &Config{EnvType: envType}
	if err := envconfig.Process(envType, cfg); err != nil {
		return nil, fmt.Errorf("load %s config: %w", envType, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values envconfig cannot express.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.SessionStore {
	case SessionStoreRedis, SessionStoreDatabase:
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.SessionStore)
	}
	if c.SessionSecretKey == "" {
		return fmt.Errorf("SESSION_SECRET_KEY must not be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// GetDSN returns the database connection string for the configured driver.
func (c *Config) GetDSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
	case DriverSQLite:
		return c.DBName
	default:
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
	}
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
