package middleware

import (
	"net/http"

	"pharmacy-admin-service/internal/app/paths"
	"pharmacy-admin-service/internal/domain/services"

	"github.com/gin-gonic/gin"
)

// Decision is the outcome of an access check: proceed, or redirect elsewhere.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Allow lets the request through
func Allow() Decision {
	return Decision{Allowed: true}
}

// RedirectTo sends the request to path instead
func RedirectTo(path string) Decision {
	return Decision{RedirectTo: path}
}

// Policy decides access for a principal
type Policy func(p services.Principal) Decision

// AdminOnly admits admins. Anonymous users go to login, other users to the admin boundary page.
func AdminOnly(p services.Principal) Decision {
	switch {
	case !p.IsAuthenticated():
		return RedirectTo(paths.Login)
	case !p.IsAdmin():
		return RedirectTo(paths.AdminNotFound)
	default:
		return Allow()
	}
}

// UserOnly admits non-admin users. Admins go to the user boundary page.
func UserOnly(p services.Principal) Decision {
	switch {
	case !p.IsAuthenticated():
		return RedirectTo(paths.Login)
	case p.IsAdmin():
		return RedirectTo(paths.UserNotFound)
	default:
		return Allow()
	}
}

// Authenticated admits any logged in user
func Authenticated(p services.Principal) Decision {
	if !p.IsAuthenticated() {
		return RedirectTo(paths.Login)
	}
	return Allow()
}

// Guard applies policy to the current principal and redirects when denied
func Guard(policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := policy(CurrentPrincipal(c))
		if !d.Allowed {
			c.Redirect(http.StatusFound, d.RedirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin guards admin pages
func RequireAdmin() gin.HandlerFunc {
	return Guard(AdminOnly)
}

// RequireUser guards non-admin user pages
func RequireUser() gin.HandlerFunc {
	return Guard(UserOnly)
}

// RequireLogin guards pages open to any logged in user
func RequireLogin() gin.HandlerFunc {
	return Guard(Authenticated)
}
