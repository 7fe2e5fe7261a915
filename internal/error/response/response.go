package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-admin-service/internal/error/code"
)

// Response is the envelope of every JSON reply
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 reply with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Page renders a page view model
func Page(c *gin.Context, data interface{}) {
	Success(c, data)
}

// ValidationFailed re-renders a form with its errors. Forms answer 200
// so the client shows the page again rather than an error screen.
func ValidationFailed(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrValidation,
		Message: code.GetMessage(code.ErrValidation),
		Data:    data,
	})
}

// Fail writes the status and message registered for errorCode
func Fail(c *gin.Context, errorCode int, data interface{}) {
	httpStatus := code.GetStatus(errorCode)
	message := code.GetMessage(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// FailWithMessage is Fail with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	httpStatus := code.GetStatus(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// TooManyRequests aborts with 429
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Response{
		Code:    code.ErrTooManyRequests,
		Message: code.GetMessage(code.ErrTooManyRequests),
	})
}

// Redirect sends a 302 to location
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
