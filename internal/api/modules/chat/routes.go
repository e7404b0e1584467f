package chat

import (
	"github.com/gin-gonic/gin"

	"github.com/promptline/relay/internal/middleware"
	"github.com/promptline/relay/pkg/utils"
)

// Register routes for the chat module
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config) {
	// Create base group for chat routes
	group := g.Group("/chat")

	// Protect routes when an API key is configured
	if validator := middleware.MakeAPIKeyValidator(cfg); validator != nil {
		group.Use(middleware.APIKeyHeaderHandler(validator))
	}

	// Completion route
	group.POST("/completions", PostCompletion) // Run a stateful completion

	// Session management routes
	group.POST("/sessions", CreateSession)       // Mint a new session
	group.GET("/sessions", ListSessions)         // Enumerate stored sessions
	group.GET("/sessions/:id", GetSession)       // Get a session transcript
	group.DELETE("/sessions/:id", DeleteSession) // Evict a session
}
