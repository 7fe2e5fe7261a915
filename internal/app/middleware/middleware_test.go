package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pharmacy-admin-service/internal/app/paths"
	"pharmacy-admin-service/internal/domain/models"
	"pharmacy-admin-service/internal/domain/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	anonymous = services.Anonymous()
	member    = services.Principal{User: &models.User{BaseModel: models.BaseModel{ID: 1}}}
	admin     = services.Principal{User: &models.User{BaseModel: models.BaseModel{ID: 2}, IsAdmin: true}}
)

func TestPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		who    services.Principal
		want   Decision
	}{
		{"admin only, anonymous", AdminOnly, anonymous, RedirectTo(paths.Login)},
		{"admin only, member", AdminOnly, member, RedirectTo(paths.AdminNotFound)},
		{"admin only, admin", AdminOnly, admin, Allow()},
		{"user only, anonymous", UserOnly, anonymous, RedirectTo(paths.Login)},
		{"user only, member", UserOnly, member, Allow()},
		{"user only, admin", UserOnly, admin, RedirectTo(paths.UserNotFound)},
		{"authenticated, anonymous", Authenticated, anonymous, RedirectTo(paths.Login)},
		{"authenticated, member", Authenticated, member, Allow()},
		{"authenticated, admin", Authenticated, admin, Allow()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy(tt.who))
		})
	}
}

func guardedRouter(who services.Principal, guard gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) { SetPrincipal(c, who) })
	r.GET("/page", guard, func(c *gin.Context) { c.String(http.StatusOK, "content") })
	return r
}

func TestGuardRedirects(t *testing.T) {
	w := httptest.NewRecorder()
	guardedRouter(member, RequireAdmin()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, paths.AdminNotFound, w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "content")

	w = httptest.NewRecorder()
	guardedRouter(admin, RequireUser()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, paths.UserNotFound, w.Header().Get("Location"))

	w = httptest.NewRecorder()
	guardedRouter(anonymous, RequireLogin()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, paths.Login, w.Header().Get("Location"))

	w = httptest.NewRecorder()
	guardedRouter(admin, RequireAdmin()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "content", w.Body.String())
}

func TestCurrentPrincipalDefaultsToAnonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, CurrentPrincipal(c).IsAuthenticated())
}

func TestFlashRoundTrip(t *testing.T) {
	r := gin.New()
	r.POST("/set", func(c *gin.Context) {
		AddFlash(c, FlashSuccess, "Your account has been created successfully!")
		AddFlash(c, FlashError, "second")
		c.Status(http.StatusNoContent)
	})
	r.GET("/get", func(c *gin.Context) {
		c.JSON(http.StatusOK, PopFlashes(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/set", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	last := cookies[len(cookies)-1]
	assert.Equal(t, FlashCookieName, last.Name)

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(last)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), "Your account has been created successfully!")
	assert.Contains(t, w.Body.String(), "second")
	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestPopFlashesIgnoresGarbage(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: FlashCookieName, Value: "%%%"})
	c.Request = req

	assert.Nil(t, PopFlashes(c))
}

func TestKeyedLimiter(t *testing.T) {
	l := NewKeyedLimiter(RateLimiterConfig{Rate: 0.001, Burst: 2, ExpiryTime: time.Millisecond})

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("5.6.7.8"))
	assert.Equal(t, 2, l.Size())

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, l.Cleanup())
	assert.Zero(t, l.Size())
}

func TestRateLimiterMiddleware(t *testing.T) {
	limiter := NewKeyedLimiter(RateLimiterConfig{Rate: 0.001, Burst: 1})
	r := gin.New()
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestCombinedLimiterKeepsRoutesApart(t *testing.T) {
	limiter := NewKeyedLimiter(RateLimiterConfig{Rate: 0.001, Burst: 1, LimitType: LimitByCombined})
	r := gin.New()
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.POST("/login", limiter.Middleware(), ok)
	r.POST("/register", limiter.Middleware(), ok)

	post := func(path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post("/login"))
	assert.Equal(t, http.StatusOK, post("/register"))
	assert.Equal(t, http.StatusTooManyRequests, post("/login"))
	assert.Equal(t, http.StatusTooManyRequests, post("/register"))
	assert.Equal(t, 2, limiter.Size())
}

func TestCacheServesRepeatedGets(t *testing.T) {
	calls := 0
	r := gin.New()
	r.GET("/status", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/status", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, 1, calls)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")

	other := httptest.NewRecorder()
	r.ServeHTTP(other, httptest.NewRequest(http.MethodGet, "/status?verbose=1", nil))
	assert.Equal(t, 2, calls)
}

func TestCacheSkipsFailures(t *testing.T) {
	calls := 0
	r := gin.New()
	r.GET("/status", Cache(), func(c *gin.Context) {
		calls++
		c.Status(http.StatusServiceUnavailable)
	})

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))
	}
	assert.Equal(t, 2, calls)
}

func TestNoStore(t *testing.T) {
	r := gin.New()
	r.GET("/page", NoStore(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))

	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
}
