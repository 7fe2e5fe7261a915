package middleware

import (
	"pharmacy-admin-service/internal/domain/services"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// LoadPrincipal resolves the user behind the session cookie on every request
// and stores it in the request context. Missing or stale sessions are anonymous.
func LoadPrincipal(sessions services.InterfaceSessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil {
			token = ""
		}
		SetPrincipal(c, sessions.CurrentUser(c.Request.Context(), token))
		c.Next()
	}
}

// SetPrincipal stores p for the rest of the request
func SetPrincipal(c *gin.Context, p services.Principal) {
	c.Set(principalKey, p)
}

// CurrentPrincipal returns the principal of the request, or Anonymous
func CurrentPrincipal(c *gin.Context) services.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(services.Principal); ok {
			return p
		}
	}
	return services.Anonymous()
}
