package controllers

import (
	"pharmacy-admin-service/internal/domain/services"
	"pharmacy-admin-service/internal/domain/services/container"
	"pharmacy-admin-service/internal/error/code"
	"pharmacy-admin-service/internal/error/response"
	"pharmacy-admin-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DashboardController renders the admin dashboard
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController creates a dashboard controller
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc returns a gin handler for the dashboard
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "dashboard":
			controller.Dashboard()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// Dashboard shows how many cities and areas exist
// @Summary      Admin dashboard
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Success      302  "not an admin"
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard [get]
func (c *DashboardController) Dashboard() {
	ctx := c.Ctx.Request.Context()
	cityService := c.Container.GetService("city").(services.InterfaceCityService)
	areaService := c.Container.GetService("area").(services.InterfaceAreaService)

	cities, err := cityService.CountCities(ctx)
	if err != nil {
		logger.Error("count cities: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	areas, err := areaService.CountAreas(ctx)
	if err != nil {
		logger.Error("count areas: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	renderPage(c.Ctx, "dashboard", gin.H{
		"number_of_cities": cities,
		"number_of_areas":  areas,
	})
}
