package controllers

import (
	"fmt"

	"pharmacy-admin-service/internal/app/forms"
	"pharmacy-admin-service/internal/app/middleware"
	"pharmacy-admin-service/internal/app/paths"
	"pharmacy-admin-service/internal/domain/services"
	"pharmacy-admin-service/internal/domain/services/container"
	"pharmacy-admin-service/internal/error/code"
	"pharmacy-admin-service/internal/error/response"
	"pharmacy-admin-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceAreaController area pages
type InterfaceAreaController interface {
	GetAreas()
	AddArea()
	EditArea()
	DeleteArea()
}

// AreaController manages areas
type AreaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAreaController creates an area controller
func NewAreaController(ctx *gin.Context, container *container.ServiceContainer) *AreaController {
	return &AreaController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAreaFunc returns a gin handler dispatching to the named area action
func HandleAreaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAreaController(ctx, container)

		switch method {
		case "getAreas":
			controller.GetAreas()
		case "addArea":
			controller.AddArea()
		case "editArea":
			controller.EditArea()
		case "deleteArea":
			controller.DeleteArea()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *AreaController) service() services.InterfaceAreaService {
	return c.Container.GetService("area").(services.InterfaceAreaService)
}

// 1. GetAreas lists all areas and the cities they can belong to
// @Summary      Area listing
// @Tags         Areas
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/areas [get]
func (c *AreaController) GetAreas() {
	ctx := c.Ctx.Request.Context()

	areas, err := c.service().ListAreas(ctx)
	if err != nil {
		logger.Error("list areas: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	cities, err := c.Container.GetService("city").(services.InterfaceCityService).ListCities(ctx)
	if err != nil {
		logger.Error("list cities: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	renderPage(c.Ctx, "areas", gin.H{
		"areas":  areas,
		"cities": cities,
		"forms": gin.H{
			"add":    forms.AreaDescriptor(paths.AdminAreas+"/add", "Add"),
			"edit":   forms.AreaDescriptor(paths.AdminAreas+"/edit/{id}", "Edit"),
			"delete": forms.DeleteDescriptor(paths.AdminAreas + "/delete/{id}"),
		},
	})
}

// 2. AddArea creates an area under a city
// @Summary      Add an area
// @Tags         Areas
// @Accept       x-www-form-urlencoded
// @Param        name     formData string true "3-20 characters"
// @Param        city_id  formData int    true "Owning city"
// @Success      302
// @Router       /admin/areas/add [post]
func (c *AreaController) AddArea() {
	defer response.Redirect(c.Ctx, paths.AdminAreas)

	var form forms.AreaForm
	if errs := forms.Bind(c.Ctx, &form); errs != nil {
		logger.Warning("add area rejected: %v", errs)
		flashFormErrors(c.Ctx, errs)
		return
	}
	cityID, err := form.City()
	if err != nil {
		flashMutationError(c.Ctx, "add area", services.ErrCityNotFound)
		return
	}

	area, err := c.service().CreateArea(c.Ctx.Request.Context(), form.Name, cityID)
	if err != nil {
		flashMutationError(c.Ctx, "add area", err)
		return
	}
	logger.Info("area %d %q added to city %d", area.ID, area.Name, area.CityID)
	middleware.AddFlash(c.Ctx, middleware.FlashSuccess, fmt.Sprintf("Area %s added", area.Name))
}

// 3. EditArea renames an area and may move it to another city
// @Summary      Edit an area
// @Tags         Areas
// @Accept       x-www-form-urlencoded
// @Param        id       path     int    true "Area ID"
// @Param        name     formData string true "3-20 characters"
// @Param        city_id  formData int    true "Owning city"
// @Success      302
// @Router       /admin/areas/edit/{id} [post]
func (c *AreaController) EditArea() {
	defer response.Redirect(c.Ctx, paths.AdminAreas)

	id, ok := parseID(c.Ctx)
	if !ok {
		flashMutationError(c.Ctx, "edit area", services.ErrAreaNotFound)
		return
	}

	var form forms.AreaForm
	if errs := forms.Bind(c.Ctx, &form); errs != nil {
		logger.Warning("edit area %d rejected: %v", id, errs)
		flashFormErrors(c.Ctx, errs)
		return
	}
	cityID, err := form.City()
	if err != nil {
		flashMutationError(c.Ctx, "edit area", services.ErrCityNotFound)
		return
	}

	area, err := c.service().UpdateArea(c.Ctx.Request.Context(), id, form.Name, cityID)
	if err != nil {
		flashMutationError(c.Ctx, fmt.Sprintf("edit area %d", id), err)
		return
	}
	logger.Info("area %d updated", area.ID)
	middleware.AddFlash(c.Ctx, middleware.FlashSuccess, fmt.Sprintf("Area %s updated", area.Name))
}

// 4. DeleteArea removes an area
// @Summary      Delete an area
// @Tags         Areas
// @Param        id  path  int  true "Area ID"
// @Success      302
// @Router       /admin/areas/delete/{id} [post]
func (c *AreaController) DeleteArea() {
	defer response.Redirect(c.Ctx, paths.AdminAreas)

	id, ok := parseID(c.Ctx)
	if !ok {
		flashMutationError(c.Ctx, "delete area", services.ErrAreaNotFound)
		return
	}

	if err := c.service().DeleteArea(c.Ctx.Request.Context(), id); err != nil {
		flashMutationError(c.Ctx, fmt.Sprintf("delete area %d", id), err)
		return
	}
	logger.Info("area %d deleted", id)
	middleware.AddFlash(c.Ctx, middleware.FlashSuccess, "Area deleted")
}
