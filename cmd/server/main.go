// @title           Pharmacy Admin Service API
// @version         1.0
// @description     Administration pages for the pharmacy locator: accounts, cities and areas.

// @BasePath  /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"pharmacy-admin-service/internal/app/middleware"
	"pharmacy-admin-service/internal/app/routes"
	"pharmacy-admin-service/internal/domain/services"
	"pharmacy-admin-service/internal/domain/services/container"
	"pharmacy-admin-service/internal/infrastructure/config"
	"pharmacy-admin-service/internal/infrastructure/database"
	"pharmacy-admin-service/internal/infrastructure/scheduler"
	Logger "pharmacy-admin-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		Logger.Error("server stopped: %v", err)
		Logger.Sync()
		os.Exit(1)
	}
}

func run() error {
	// .env is optional, the environment may already be set
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := Logger.SetupLoggerWithLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer Logger.Sync()
	if envErr != nil {
		Logger.Warning("no .env file loaded: %v", envErr)
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	if err := database.Migrate(db, cfg.DBMigrationMode); err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.SessionStore == config.SessionStoreRedis {
		redisClient = services.NewRedisClient(cfg)
		defer redisClient.Close()
	}

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	if err := ensureAdminExists(serviceContainer, cfg); err != nil {
		return err
	}

	loginLimiter := middleware.NewKeyedLimiter(middleware.RateLimiterConfig{
		Rate:      cfg.LoginRateLimit,
		Burst:     cfg.LoginRateBurst,
		LimitType: middleware.LimitByCombined,
	})

	jobs, err := startJobs(serviceContainer, cfg, loginLimiter)
	if err != nil {
		return err
	}

	if cfg.EnvType == "SERVER" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := routes.SetupRouter(serviceContainer, loginLimiter)

	printSystemInfo(pool)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		Logger.Info("server listening on http://%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		Logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		Logger.Error("http shutdown: %v", err)
	}
	jobs.Stop(shutdownCtx)
	Logger.Info("server stopped")
	return nil
}

// ensureAdminExists seeds the default admin account on an empty system
func ensureAdminExists(c *container.ServiceContainer, cfg *config.Config) error {
	userService := c.GetService("user").(services.InterfaceUserService)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := userService.EnsureAdmin(ctx, cfg.DefaultAdminEmail, cfg.DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		Logger.Info("default admin account %s created", cfg.DefaultAdminEmail)
	}
	return nil
}

// startJobs schedules session cleanup and limiter eviction
func startJobs(c *container.ServiceContainer, cfg *config.Config, limiter *middleware.KeyedLimiter) (*scheduler.Scheduler, error) {
	jobs := scheduler.New(time.Minute)
	store := c.GetService("session_store").(services.SessionStore)

	err := jobs.AddJob("purge expired sessions", cfg.SessionCleanupSpec, func(ctx context.Context) error {
		n, err := store.PurgeExpired(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			Logger.Info("purged %d expired sessions", n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = jobs.AddJob("evict idle rate limiters", "@every 10m", func(ctx context.Context) error {
		limiter.Cleanup()
		return nil
	})
	if err != nil {
		return nil, err
	}

	jobs.Start()
	return jobs, nil
}

// printSystemInfo logs pool and runtime figures at startup
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		Logger.Info("database pool: %+v", stats)
	}

	Logger.Info("cpu cores: %d, goroutines: %d", runtime.NumCPU(), runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.Info("memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
