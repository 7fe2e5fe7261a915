package controllers

import (
	"pharmacy-admin-service/internal/app/middleware"
	"pharmacy-admin-service/internal/app/paths"
	"pharmacy-admin-service/internal/domain/services/container"
	"pharmacy-admin-service/internal/error/code"
	"pharmacy-admin-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// UserController renders the user landing page and the two boundary pages
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController creates a user controller
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleUserFunc returns a gin handler dispatching to the named page
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "index":
			controller.Index()
		case "adminNotFound":
			controller.AdminNotFound()
		case "userNotFound":
			controller.UserNotFound()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// Index user landing page
// @Summary      User landing page
// @Tags         User
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /user [get]
func (c *UserController) Index() {
	renderPage(c.Ctx, "user_index", nil)
}

// AdminNotFound is shown to users who reached an admin page
// @Summary      Admin boundary page
// @Tags         User
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/404 [get]
func (c *UserController) AdminNotFound() {
	renderPage(c.Ctx, "admin_404", gin.H{
		"message": code.GetMessage(code.ErrNotFound),
		"home":    home(c.Ctx),
	})
}

// UserNotFound is shown to admins who reached a user page
// @Summary      User boundary page
// @Tags         User
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /user/404 [get]
func (c *UserController) UserNotFound() {
	renderPage(c.Ctx, "user_404", gin.H{
		"message": code.GetMessage(code.ErrNotFound),
		"home":    home(c.Ctx),
	})
}

// home is where the boundary page links back to
func home(c *gin.Context) string {
	if middleware.CurrentPrincipal(c).IsAdmin() {
		return paths.Dashboard
	}
	return paths.UserIndex
}
