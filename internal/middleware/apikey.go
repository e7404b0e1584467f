package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptline/relay/pkg/sdk"
	"github.com/promptline/relay/pkg/utils"
)

// APIKeyHeaderHandler validates the X-API-KEY header with the provided validator
func APIKeyHeaderHandler(validator func(key string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-KEY")
		if !validator(key) {
			c.AbortWithStatusJSON(sdk.NewErrorResponse(http.StatusUnauthorized, "Invalid API key", nil).AsGinResponse())
			return
		}
		c.Next()
	}
}

// MakeAPIKeyValidator builds a validator from the configured API key.
// Returns nil when no API key is configured, leaving routes open
func MakeAPIKeyValidator(cfg *utils.Config) func(key string) bool {
	apiKey := cfg.Get("API_KEY")
	if apiKey == "" {
		return nil
	}

	return func(key string) bool {
		return apiKey == key
	}
}
