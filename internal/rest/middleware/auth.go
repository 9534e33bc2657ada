package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nvamotors/dealership-api/internal/config"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/types"
)

// AdminAuthMiddleware guards admin routes with an API key check. A
// request carrying one of the configured keys in the configured header
// proceeds with the admin role in context; a missing key is rejected as
// unauthenticated, a wrong key as forbidden.
func AdminAuthMiddleware(cfg *config.Configuration, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(cfg.Auth.APIKeyHeader)
		if apiKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing API key"})
			c.Abort()
			return
		}

		if !validateAPIKey(cfg, apiKey) {
			logger.Debugw("invalid admin api key")
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid API key"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), types.CtxCallerRole, types.RoleAdmin)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func validateAPIKey(cfg *config.Configuration, apiKey string) bool {
	for _, key := range cfg.Auth.AdminAPIKeys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			return true
		}
	}
	return false
}
