package controllers

import (
	"errors"
	"strconv"

	"pharmacy-admin-service/internal/app/middleware"
	"pharmacy-admin-service/internal/domain/services"
	"pharmacy-admin-service/internal/error/code"
	"pharmacy-admin-service/internal/error/response"
	"pharmacy-admin-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse documents the error envelope for swagger
type ErrorResponse struct {
	Code    int         `json:"code" example:"105000"`
	Message string      `json:"message" example:"database error"`
	Data    interface{} `json:"data,omitempty"`
}

// renderPage writes a page view model with the current user and pending flashes
func renderPage(c *gin.Context, page string, data gin.H) {
	response.Page(c, pageData(c, page, data))
}

// renderFormErrors re-renders a form page with the submitted values and their errors
func renderFormErrors(c *gin.Context, page string, data gin.H) {
	response.ValidationFailed(c, pageData(c, page, data))
}

func pageData(c *gin.Context, page string, data gin.H) gin.H {
	out := gin.H{
		"page":    page,
		"user":    principalView(middleware.CurrentPrincipal(c)),
		"flashes": middleware.PopFlashes(c),
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}

func principalView(p services.Principal) gin.H {
	if !p.IsAuthenticated() {
		return nil
	}
	return gin.H{
		"id":       p.User.ID,
		"email":    p.User.Email,
		"name":     p.User.FullName(),
		"is_admin": p.User.IsAdmin,
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// flashMutationError logs a failed catalogue change and tells the user on the next page
func flashMutationError(c *gin.Context, op string, err error) {
	if services.IsStorageError(err) {
		logger.Error("%s failed: %v", op, err)
	} else {
		logger.Warning("%s rejected: %v", op, err)
	}
	middleware.AddFlash(c, middleware.FlashError, mutationMessage(err))
}

func mutationMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrCityNotFound):
		return code.GetMessage(code.ErrCityNotFound)
	case errors.Is(err, services.ErrCityNameTaken):
		return code.GetMessage(code.ErrCityAlreadyExist)
	case errors.Is(err, services.ErrAreaNotFound):
		return code.GetMessage(code.ErrAreaNotFound)
	case errors.Is(err, services.ErrInvalidName):
		return err.Error()
	default:
		return "Something went wrong, please try again."
	}
}

// flashFormErrors reports validation failures of a form that redirects instead of re-rendering
func flashFormErrors(c *gin.Context, errs map[string][]string) {
	for field, msgs := range errs {
		for _, msg := range msgs {
			middleware.AddFlash(c, middleware.FlashError, field+": "+msg)
		}
	}
}
