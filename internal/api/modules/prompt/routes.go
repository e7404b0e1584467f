package prompt

import (
	"github.com/gin-gonic/gin"

	"github.com/promptline/relay/internal/middleware"
	"github.com/promptline/relay/pkg/utils"
)

// Register routes for the prompt module
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config) {
	// Create base group for prompt routes
	group := g.Group("/prompts")

	// Protect routes when an API key is configured
	if validator := middleware.MakeAPIKeyValidator(cfg); validator != nil {
		group.Use(middleware.APIKeyHeaderHandler(validator))
	}

	group.GET("/template", InvokeTemplate)       // Plain prompt template
	group.GET("/chat", InvokeChatTemplate)       // Chat prompt template
	group.GET("/fewshot", InvokeFewShotTemplate) // Few-shot prompt template
}
