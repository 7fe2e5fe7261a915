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

// InterfaceCityController city pages
type InterfaceCityController interface {
	GetCities()
	AddCity()
	EditCity()
	DeleteCity()
}

// CityController manages cities
type CityController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCityController creates a city controller
func NewCityController(ctx *gin.Context, container *container.ServiceContainer) *CityController {
	return &CityController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCityFunc returns a gin handler dispatching to the named city action
func HandleCityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCityController(ctx, container)

		switch method {
		case "getCities":
			controller.GetCities()
		case "addCity":
			controller.AddCity()
		case "editCity":
			controller.EditCity()
		case "deleteCity":
			controller.DeleteCity()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *CityController) service() services.InterfaceCityService {
	return c.Container.GetService("city").(services.InterfaceCityService)
}

// 1. GetCities lists all cities with their forms
// @Summary      City listing
// @Tags         Cities
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/cities [get]
func (c *CityController) GetCities() {
	cities, err := c.service().ListCities(c.Ctx.Request.Context())
	if err != nil {
		logger.Error("list cities: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	renderPage(c.Ctx, "cities", gin.H{
		"cities": cities,
		"forms": gin.H{
			"add":    forms.CityDescriptor(paths.AdminCities+"/add", "Add"),
			"edit":   forms.CityDescriptor(paths.AdminCities+"/edit/{id}", "Edit"),
			"delete": forms.DeleteDescriptor(paths.AdminCities + "/delete/{id}"),
		},
	})
}

// 2. AddCity creates a city and returns to the listing
// @Summary      Add a city
// @Tags         Cities
// @Accept       x-www-form-urlencoded
// @Param        name  formData string true "3-20 characters, unique"
// @Success      302
// @Router       /admin/cities/add [post]
func (c *CityController) AddCity() {
	defer response.Redirect(c.Ctx, paths.AdminCities)

	var form forms.CityForm
	if errs := forms.Bind(c.Ctx, &form); errs != nil {
		logger.Warning("add city rejected: %v", errs)
		flashFormErrors(c.Ctx, errs)
		return
	}

	city, err := c.service().CreateCity(c.Ctx.Request.Context(), form.Name)
	if err != nil {
		flashMutationError(c.Ctx, "add city", err)
		return
	}
	logger.Info("city %d %q added", city.ID, city.Name)
	middleware.AddFlash(c.Ctx, middleware.FlashSuccess, fmt.Sprintf("City %s added", city.Name))
}

// 3. EditCity renames a city
// @Summary      Rename a city
// @Tags         Cities
// @Accept       x-www-form-urlencoded
// @Param        id    path     int    true "City ID"
// @Param        name  formData string true "3-20 characters, unique"
// @Success      302
// @Router       /admin/cities/edit/{id} [post]
func (c *CityController) EditCity() {
	defer response.Redirect(c.Ctx, paths.AdminCities)

	id, ok := parseID(c.Ctx)
	if !ok {
		flashMutationError(c.Ctx, "edit city", services.ErrCityNotFound)
		return
	}

	var form forms.CityForm
	if errs := forms.Bind(c.Ctx, &form); errs != nil {
		logger.Warning("edit city %d rejected: %v", id, errs)
		flashFormErrors(c.Ctx, errs)
		return
	}

	city, err := c.service().UpdateCity(c.Ctx.Request.Context(), id, form.Name)
	if err != nil {
		flashMutationError(c.Ctx, fmt.Sprintf("edit city %d", id), err)
		return
	}
	logger.Info("city %d renamed to %q", city.ID, city.Name)
	middleware.AddFlash(c.Ctx, middleware.FlashSuccess, fmt.Sprintf("City %s updated", city.Name))
}

// 4. DeleteCity removes a city together with its areas
// @Summary      Delete a city
// @Tags         Cities
// @Param        id  path  int  true "City ID"
// @Success      302
// @Router       /admin/cities/delete/{id} [post]
func (c *CityController) DeleteCity() {
	defer response.Redirect(c.Ctx, paths.AdminCities)

	id, ok := parseID(c.Ctx)
	if !ok {
		flashMutationError(c.Ctx, "delete city", services.ErrCityNotFound)
		return
	}

	removed, err := c.service().DeleteCity(c.Ctx.Request.Context(), id)
	if err != nil {
		flashMutationError(c.Ctx, fmt.Sprintf("delete city %d", id), err)
		return
	}
	logger.Info("city %d deleted with %d areas", id, removed)
	middleware.AddFlash(c.Ctx, middleware.FlashSuccess, fmt.Sprintf("City deleted along with %d areas", removed))
}
