package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvamotors/dealership-api/internal/config"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/types"
)

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
		Auth: config.AuthConfig{
			APIKeyHeader: "x-api-key",
			AdminAPIKeys: []string{"secret-key"},
		},
	}
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/admin", AdminAuthMiddleware(cfg, log), func(c *gin.Context) {
		role := types.GetCallerRole(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"role": string(role)})
	})
	return r
}

func TestAdminAuthMiddleware(t *testing.T) {
	router := newAuthTestRouter(t)

	testCases := []struct {
		name       string
		apiKey     string
		wantStatus int
	}{
		{name: "missing_key", apiKey: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong_key", apiKey: "nope", wantStatus: http.StatusForbidden},
		{name: "valid_key", apiKey: "secret-key", wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.apiKey != "" {
				req.Header.Set("x-api-key", tc.apiKey)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), string(types.RoleAdmin))
			}
		})
	}
}

func TestAdminAuthMiddlewareNoKeysConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
		Auth:    config.AuthConfig{APIKeyHeader: "x-api-key"},
	}
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/admin", AdminAuthMiddleware(cfg, log), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// with no configured keys every presented key is rejected
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("x-api-key", "anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
