package controllers

import (
	"errors"
	"net/http"

	"pharmacy-admin-service/internal/app/forms"
	"pharmacy-admin-service/internal/app/middleware"
	"pharmacy-admin-service/internal/app/paths"
	"pharmacy-admin-service/internal/domain/services"
	"pharmacy-admin-service/internal/domain/services/container"
	"pharmacy-admin-service/internal/error/code"
	"pharmacy-admin-service/internal/error/response"
	"pharmacy-admin-service/internal/infrastructure/config"
	"pharmacy-admin-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController registration, login and logout
type InterfaceAuthController interface {
	RegisterPage()
	Register()
	LoginPage()
	Login()
	Logout()
}

// AuthController handles account pages
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates an auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAuthFunc returns a gin handler dispatching to the named auth action
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "registerPage":
			controller.RegisterPage()
		case "register":
			controller.Register()
		case "loginPage":
			controller.LoginPage()
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. RegisterPage shows the registration form
// @Summary      Registration page
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /register [get]
func (c *AuthController) RegisterPage() {
	renderPage(c.Ctx, "register", gin.H{
		"form": forms.RegisterDescriptor(paths.Register),
	})
}

// 2. Register creates a non-admin account and sends the user to login
// @Summary      Register an account
// @Tags         Auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        first_name        formData string true "First name, 3-20 characters"
// @Param        last_name         formData string true "Last name, 3-20 characters"
// @Param        gender            formData string true "Male or Female"
// @Param        birth_date        formData string true "YYYY-MM-DD"
// @Param        phone             formData string true "10 characters"
// @Param        email             formData string true "Email"
// @Param        password          formData string true "8-20 characters"
// @Param        confirm_password  formData string true "Must equal password"
// @Success      302
// @Success      200  {object}  response.Response "form re-rendered with errors"
// @Failure      500  {object}  ErrorResponse
// @Router       /register [post]
func (c *AuthController) Register() {
	var form forms.RegisterForm
	errs := forms.Bind(c.Ctx, &form)
	if errs == nil {
		errs = forms.Errors{}
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if errs.First("email") == "" {
		taken, err := userService.EmailExists(c.Ctx.Request.Context(), form.Email)
		if err != nil {
			logger.Error("check email: %v", err)
			response.Fail(c.Ctx, code.ErrDatabase, nil)
			return
		}
		if taken {
			errs.Add("email", code.GetMessage(code.ErrUserAlreadyExist))
		}
	}
	if errs.Any() {
		c.renderRegisterErrors(&form, errs)
		return
	}

	input, err := form.Input()
	if err != nil {
		errs.Add("birth_date", "Not a valid date value.")
		c.renderRegisterErrors(&form, errs)
		return
	}

	user, err := userService.Register(c.Ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			errs.Add("email", code.GetMessage(code.ErrUserAlreadyExist))
			c.renderRegisterErrors(&form, errs)
			return
		}
		logger.Error("register %s: %v", form.Email, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	logger.Info("user %d registered", user.ID)
	middleware.AddFlash(c.Ctx, middleware.FlashSuccess, "Your account has been created successfully!")
	response.Redirect(c.Ctx, paths.Login)
}

func (c *AuthController) renderRegisterErrors(form *forms.RegisterForm, errs forms.Errors) {
	renderFormErrors(c.Ctx, "register", gin.H{
		"form":   forms.RegisterDescriptor(paths.Register),
		"values": form,
		"errors": errs,
	})
}

// 3. LoginPage shows the login form
// @Summary      Login page
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /login [get]
func (c *AuthController) LoginPage() {
	renderPage(c.Ctx, "login", gin.H{
		"form": forms.LoginDescriptor(paths.Login),
	})
}

// 4. Login opens a session and redirects by role
// @Summary      Log in
// @Tags         Auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData string true "Email"
// @Param        password  formData string true "Password"
// @Success      302
// @Success      200  {object}  response.Response "form re-rendered with errors"
// @Failure      429  {object}  ErrorResponse
// @Router       /login [post]
func (c *AuthController) Login() {
	var form forms.LoginForm
	if errs := forms.Bind(c.Ctx, &form); errs != nil {
		c.renderLoginErrors(&form, errs)
		return
	}

	ctx := c.Ctx.Request.Context()
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Authenticate(ctx, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			errs := forms.Errors{}
			errs.Add(forms.FormErrorKey, code.GetMessage(code.ErrInvalidCredentials))
			c.renderLoginErrors(&form, errs)
			return
		}
		logger.Error("authenticate: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	cfg := c.Container.GetService("config").(*config.Config)
	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)

	// drop any session this browser already had
	if old, err := c.Ctx.Cookie(cfg.SessionCookieName); err == nil && old != "" {
		if err := sessionService.Logout(ctx, old); err != nil {
			logger.Warning("drop previous session: %v", err)
		}
	}

	token, err := sessionService.Login(ctx, user)
	if err != nil {
		logger.Error("open session for user %d: %v", user.ID, err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	c.setSessionCookie(cfg, token, int(sessionService.TTL().Seconds()))

	if user.IsAdmin {
		response.Redirect(c.Ctx, paths.Dashboard)
		return
	}
	response.Redirect(c.Ctx, paths.UserIndex)
}

func (c *AuthController) renderLoginErrors(form *forms.LoginForm, errs forms.Errors) {
	renderFormErrors(c.Ctx, "login", gin.H{
		"form":   forms.LoginDescriptor(paths.Login),
		"values": form,
		"errors": errs,
	})
}

// 5. Logout ends the session and returns to login
// @Summary      Log out
// @Tags         Auth
// @Success      302
// @Router       /logout [get]
func (c *AuthController) Logout() {
	cfg := c.Container.GetService("config").(*config.Config)
	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)

	if token, err := c.Ctx.Cookie(cfg.SessionCookieName); err == nil {
		if err := sessionService.Logout(c.Ctx.Request.Context(), token); err != nil {
			logger.Error("logout: %v", err)
		}
	}
	c.setSessionCookie(cfg, "", -1)
	response.Redirect(c.Ctx, paths.Login)
}

func (c *AuthController) setSessionCookie(cfg *config.Config, value string, maxAge int) {
	c.Ctx.SetSameSite(http.SameSiteLaxMode)
	c.Ctx.SetCookie(cfg.SessionCookieName, value, maxAge, "/", "", cfg.SessionCookieSecure, true)
}
