package routes

import (
	_ "pharmacy-admin-service/docs"
	"pharmacy-admin-service/internal/app/controllers"
	"pharmacy-admin-service/internal/app/middleware"
	"pharmacy-admin-service/internal/app/paths"
	"pharmacy-admin-service/internal/domain/services"
	"pharmacy-admin-service/internal/domain/services/container"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the engine. loginLimiter throttles the public form posts.
func SetupRouter(serviceContainer *container.ServiceContainer, loginLimiter *middleware.KeyedLimiter) *gin.Engine {
	cfg := serviceContainer.GetConfig()

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
			ExposeHeaders:    []string{"Content-Length", "Location"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// every request carries its principal, anonymous or not
	sessionService := serviceContainer.GetService("session").(services.InterfaceSessionService)
	r.Use(middleware.LoadPrincipal(sessionService, cfg.SessionCookieName))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer, loginLimiter)
	return r
}

// registerRoutes wires every page and API route
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	loginLimiter *middleware.KeyedLimiter,
) {
	registerHealthRoutes(r, container)

	pages := r.Group("", middleware.NoStore())
	registerAuthRoutes(pages, container, loginLimiter)
	registerAdminRoutes(pages, container)
	registerUserRoutes(pages, container)
}

// registerHealthRoutes health probes under /api
func registerHealthRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", middleware.Cache(), controllers.HandleHealthFunc(container, "status"))
}

// registerAuthRoutes public account pages
func registerAuthRoutes(
	r *gin.RouterGroup,
	container *container.ServiceContainer,
	loginLimiter *middleware.KeyedLimiter,
) {
	limit := loginLimiter.Middleware()

	r.GET(paths.Register, controllers.HandleAuthFunc(container, "registerPage"))
	r.POST(paths.Register, limit, controllers.HandleAuthFunc(container, "register"))
	r.GET(paths.Login, controllers.HandleAuthFunc(container, "loginPage"))
	r.POST(paths.Login, limit, controllers.HandleAuthFunc(container, "login"))
	r.GET(paths.Logout, controllers.HandleAuthFunc(container, "logout"))
}

// registerAdminRoutes admin-only pages
func registerAdminRoutes(r *gin.RouterGroup, container *container.ServiceContainer) {
	r.GET(paths.Dashboard, middleware.RequireAdmin(), controllers.HandleDashboardFunc(container, "dashboard"))

	// boundary page for users who wandered into admin space
	r.GET(paths.AdminNotFound, middleware.RequireLogin(), controllers.HandleUserFunc(container, "adminNotFound"))

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())

	cityGroup := admin.Group("/cities")
	cityGroup.GET("", controllers.HandleCityFunc(container, "getCities"))
	cityGroup.POST("/add", controllers.HandleCityFunc(container, "addCity"))
	cityGroup.POST("/edit/:id", controllers.HandleCityFunc(container, "editCity"))
	cityGroup.POST("/delete/:id", controllers.HandleCityFunc(container, "deleteCity"))

	areaGroup := admin.Group("/areas")
	areaGroup.GET("", controllers.HandleAreaFunc(container, "getAreas"))
	areaGroup.POST("/add", controllers.HandleAreaFunc(container, "addArea"))
	areaGroup.POST("/edit/:id", controllers.HandleAreaFunc(container, "editArea"))
	areaGroup.POST("/delete/:id", controllers.HandleAreaFunc(container, "deleteArea"))
}

// registerUserRoutes non-admin pages
func registerUserRoutes(r *gin.RouterGroup, container *container.ServiceContainer) {
	r.GET(paths.UserIndex, middleware.RequireUser(), controllers.HandleUserFunc(container, "index"))
	r.GET(paths.UserNotFound, middleware.RequireLogin(), controllers.HandleUserFunc(container, "userNotFound"))
}
