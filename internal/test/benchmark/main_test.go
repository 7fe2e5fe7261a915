package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"pharmacy-admin-service/internal/app/middleware"
	"pharmacy-admin-service/internal/app/routes"
	"pharmacy-admin-service/internal/domain/services"
	"pharmacy-admin-service/internal/domain/services/container"
	"pharmacy-admin-service/internal/infrastructure/config"
	"pharmacy-admin-service/internal/test/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestConfig points the load tests at a server. An empty BaseURL starts one in process.
type TestConfig struct {
	BaseURL     string `json:"base_url"`
	AdminEmail  string `json:"admin_email"`
	AdminPass   string `json:"admin_pass"`
	Concurrency int    `json:"concurrency"`
	Requests    int    `json:"requests"`
}

var benchConfig TestConfig

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	services.PasswordCost = bcrypt.MinCost

	if err := loadConfig(); err != nil {
		fmt.Printf("load benchmark config: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// loadConfig reads the optional test_config.json over the defaults
func loadConfig() error {
	benchConfig = TestConfig{
		AdminEmail:  "admin@example.com",
		AdminPass:   "admin-password",
		Concurrency: 10,
		Requests:    100,
	}

	data, err := os.ReadFile("test_config.json")
	if err != nil {
		return nil
	}
	return json.Unmarshal(data, &benchConfig)
}

// target returns the server base URL and an admin session cookie
func target(tb testing.TB) (string, *http.Cookie) {
	tb.Helper()

	baseURL := benchConfig.BaseURL
	if baseURL == "" {
		db := testdb.New(tb)
		cfg := &config.Config{
			SessionStore:      config.SessionStoreDatabase,
			SessionSecretKey:  "bench-secret",
			SessionTTL:        time.Hour,
			SessionCookieName: "pharmacies_session",
		}
		c := container.NewServiceContainer(db, cfg, nil)
		_, err := c.GetService("user").(services.InterfaceUserService).
			EnsureAdmin(context.Background(), benchConfig.AdminEmail, benchConfig.AdminPass)
		require.NoError(tb, err)

		limiter := middleware.NewKeyedLimiter(middleware.RateLimiterConfig{Rate: 1e6, Burst: 1e6})
		server := httptest.NewServer(routes.SetupRouter(c, limiter))
		tb.Cleanup(server.Close)
		baseURL = server.URL
	}

	client := NewAPIBenchmark(baseURL, 1, 1, nil).Client
	session, err := Login(client, baseURL, benchConfig.AdminEmail, benchConfig.AdminPass)
	require.NoError(tb, err)
	return baseURL, session
}

func TestCityListingUnderLoad(t *testing.T) {
	baseURL, session := target(t)

	result := NewAPIBenchmark(baseURL, benchConfig.Concurrency, benchConfig.Requests, session).RunGET("/admin/cities")
	result.PrintResult()

	assert.Zero(t, result.FailureCount, "errors: %v", result.Errors)
	assert.Equal(t, benchConfig.Requests, result.StatusCodes[http.StatusOK])
}

func TestConcurrentCityCreation(t *testing.T) {
	baseURL, session := target(t)

	b := NewAPIBenchmark(baseURL, benchConfig.Concurrency, benchConfig.Requests, session)
	result := b.RunPOSTForm("/admin/cities/add", func(i int) url.Values {
		return url.Values{"name": {fmt.Sprintf("Load City %d", i)}}
	})
	result.PrintResult()

	assert.Zero(t, result.FailureCount, "errors: %v", result.Errors)
	assert.Equal(t, benchConfig.Requests, result.StatusCodes[http.StatusFound])
}

func TestAnonymousLoadIsRedirected(t *testing.T) {
	baseURL, _ := target(t)

	result := NewAPIBenchmark(baseURL, benchConfig.Concurrency, benchConfig.Requests, nil).RunGET("/dashboard")

	assert.Equal(t, benchConfig.Requests, result.StatusCodes[http.StatusFound])
}

func BenchmarkDashboard(b *testing.B) {
	baseURL, session := target(b)
	client := NewAPIBenchmark(baseURL, 1, 1, session).Client

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req, _ := http.NewRequest(http.MethodGet, baseURL+"/dashboard", nil)
		req.AddCookie(session)
		resp, err := client.Do(req)
		if err != nil {
			b.Fatal(err)
		}
		resp.Body.Close()
	}
}
