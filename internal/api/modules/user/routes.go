package user_module

import (
	"github.com/gin-gonic/gin"

	"github.com/promptline/relay/internal/middleware"
	"github.com/promptline/relay/pkg/utils"
)

// Register routes for the user module
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config) {
	// Create base group for user routes
	group := g.Group("/users")

	// Protect routes when an API key is configured
	if validator := middleware.MakeAPIKeyValidator(cfg); validator != nil {
		group.Use(middleware.APIKeyHeaderHandler(validator))
	}

	group.POST("", CreateUser)               // Create a new user
	group.GET("", ListUsers)                 // List all users
	group.GET("/:user_id", GetUser)          // Get a user by external id
	group.PUT("/:user_id", UpdateUser)       // Update an existing user
	group.DELETE("/:user_id", DeleteUser)    // Delete a user by external id
	group.POST("/upsert", UpsertUser)        // Create or update a user
}
