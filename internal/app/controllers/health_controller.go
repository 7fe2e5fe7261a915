package controllers

import (
	"pharmacy-admin-service/internal/domain/services"
	"pharmacy-admin-service/internal/domain/services/container"
	"pharmacy-admin-service/internal/error/code"
	"pharmacy-admin-service/internal/error/response"
	"pharmacy-admin-service/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HealthCheckController health endpoints
type HealthCheckController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthCheckController creates a health controller
func NewHealthCheckController(ctx *gin.Context, container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler dispatching to the named health check
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// Ping liveness probe
// @Summary      Ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/ping [get]
func (h *HealthCheckController) Ping() {
	response.Success(h.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status reports database and session store reachability
// @Summary      Dependency status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  ErrorResponse
// @Router       /api/health/status [get]
func (h *HealthCheckController) Status() {
	ctx := h.Ctx.Request.Context()
	status := gin.H{"database": "up"}
	healthy := true

	if err := database.HealthCheck(ctx, h.Container.GetDB()); err != nil {
		status["database"] = "down: " + err.Error()
		healthy = false
	}

	switch h.Container.GetService("session_store").(type) {
	case *services.RedisSessionStore:
		status["session_store"] = "redis"
		client, _ := h.Container.GetService("redis").(*redis.Client)
		if client == nil {
			break
		}
		if err := services.PingRedis(ctx, client); err != nil {
			status["redis"] = "down: " + err.Error()
			healthy = false
		} else {
			status["redis"] = "up"
		}
	default:
		status["session_store"] = "database"
	}

	if sqlDB, err := h.Container.GetDB().DB(); err == nil {
		stats := sqlDB.Stats()
		status["connections"] = gin.H{
			"open":   stats.OpenConnections,
			"in_use": stats.InUse,
			"idle":   stats.Idle,
		}
	}

	if !healthy {
		response.Fail(h.Ctx, code.ErrConnectionFailed, status)
		return
	}
	response.Success(h.Ctx, status)
}
