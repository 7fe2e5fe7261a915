package container

import (
	"context"
	"sync"

	"pharmacy-admin-service/internal/domain/services"
	"pharmacy-admin-service/internal/infrastructure/config"
	"pharmacy-admin-service/pkg/logger"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer wires every service against one database and configuration.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	sessionStore   services.SessionStore
	sessionService services.InterfaceSessionService

	userService services.InterfaceUserService
	cityService services.InterfaceCityService
	areaService services.InterfaceAreaService

	mu sync.RWMutex
}

// NewServiceContainer creates the container. redisClient may be nil.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices builds the services in dependency order
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sessionStore = c.newSessionStore()

	c.userService = services.NewUserService(c.db)
	c.cityService = services.NewCityService(c.db)
	c.areaService = services.NewAreaService(c.db)

	c.sessionService = services.NewSessionService(c.config, c.sessionStore, c.userService)
}

// newSessionStore prefers Redis and falls back to the sessions table
// when Redis is not configured or unreachable.
func (c *ServiceContainer) newSessionStore() services.SessionStore {
	if c.config.SessionStore == config.SessionStoreRedis && c.redis != nil {
		if err := services.PingRedis(context.Background(), c.redis); err != nil {
			logger.Warning("redis ping failed: %v, sessions fall back to the database", err)
		} else {
			logger.Info("sessions stored in redis at %s", c.config.GetRedisAddr())
			return services.NewRedisSessionStore(c.redis)
		}
	}
	logger.Info("sessions stored in the database")
	return services.NewDBSessionStore(c.db)
}

// GetService returns the named service, or nil when unknown
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "redis":
		return c.redis
	case "session_store":
		return c.sessionStore
	case "session":
		return c.sessionService
	case "user":
		return c.userService
	case "city":
		return c.cityService
	case "area":
		return c.areaService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig returns the configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
