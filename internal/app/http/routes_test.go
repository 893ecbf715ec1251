package routes

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"vinyl-api/database"
	"vinyl-api/internal/api/apitest"
	"vinyl-api/internal/app/http/middleware"
	"vinyl-api/internal/infra/password"
	"vinyl-api/internal/infra/token"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	hasher := password.Hasher{Cost: bcrypt.MinCost}
	s, load, err := database.InitStore(hasher, logger)
	require.NoError(t, err)

	metrics := middleware.NewMetrics("vinyl_test")
	r := gin.New()
	r.Use(middleware.RequestID(), metrics.Middleware())
	RegisterRoutes(r, Deps{
		Store:   s,
		Loader:  load,
		Hasher:  hasher,
		Tokens:  token.NewHMAC(apitest.Secret, time.Hour),
		Metrics: metrics,
		Logger:  logger,
	})
	return r
}

func login(t *testing.T, r http.Handler, email, pw string) string {
	t.Helper()
	w := apitest.Do(t, r, http.MethodPost, "/auth/login", map[string]string{"email": email, "password": pw}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return apitest.Decode[struct {
		Token string `json:"token"`
	}](t, w).Token
}

func TestPublicReads(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/health", "/v1/artists", "/v1/vinyls", "/v1/listings", "/v2/vinyls", "/v2/listings"} {
		w := apitest.Do(t, r, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	listings := apitest.Decode[[]map[string]any](t, apitest.Do(t, r, http.MethodGet, "/v2/listings", nil, ""))
	assert.Len(t, listings, 18)
	assert.Contains(t, listings[0], "vinyl")
	assert.Contains(t, listings[0], "inventory")
}

func TestWritesNeedStaff(t *testing.T) {
	r := newRouter(t)
	body := map[string]string{"name": "Autechre"}

	w := apitest.Do(t, r, http.MethodPost, "/v1/artists", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = apitest.Do(t, r, http.MethodPost, "/auth/register", map[string]string{"email": "fan@example.com", "password": "spin33"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	customer := login(t, r, "fan@example.com", "spin33")

	w = apitest.Do(t, r, http.MethodPost, "/v1/artists", body, customer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	staff := login(t, r, "staff@vinyl.local", "staff123")
	w = apitest.Do(t, r, http.MethodPost, "/v1/artists", body, staff)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = apitest.Do(t, r, http.MethodPost, "/admin/reset", nil, staff)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminResetRestoresSeed(t *testing.T) {
	r := newRouter(t)
	admin := login(t, r, "admin@vinyl.local", "admin123")

	w := apitest.Do(t, r, http.MethodDelete, "/v1/listings/1", nil, admin)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Len(t, apitest.Decode[[]map[string]any](t, apitest.Do(t, r, http.MethodGet, "/v1/listings", nil, "")), 17)

	w = apitest.Do(t, r, http.MethodPost, "/admin/reset", nil, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, apitest.Decode[[]map[string]any](t, apitest.Do(t, r, http.MethodGet, "/v1/listings", nil, "")), 18)

	// The seed admin keeps its id and email across a reset, so the token stays valid.
	w = apitest.Do(t, r, http.MethodGet, "/admin/stats", nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(t)
	apitest.Do(t, r, http.MethodGet, "/v1/genres", nil, "")

	w := apitest.Do(t, r, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `vinyl_test_http_requests_total{method="GET",route="/v1/genres",status="200"} 1`), w.Body.String())
	assert.Contains(t, w.Body.String(), `vinyl_test_store_entities{entity="vinyls"} 20`)
	assert.Contains(t, w.Body.String(), `vinyl_test_store_entities{entity="users"} 2`)
}
