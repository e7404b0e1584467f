package api

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	chat_module "github.com/promptline/relay/internal/api/modules/chat"
	health_module "github.com/promptline/relay/internal/api/modules/health"
	prompt_module "github.com/promptline/relay/internal/api/modules/prompt"
	user_module "github.com/promptline/relay/internal/api/modules/user"
	"github.com/promptline/relay/pkg/utils"
)

func Start(cfg *utils.Config) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")

	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(noRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)

	if err := prompt_module.Init(cfg); err != nil {
		log.Fatal("[API-MAIN]: Failed to initialize prompt module: ", err)
	}
	prompt_module.RegisterRoutes(baseGroup, cfg)

	if err := chat_module.Init(cfg); err != nil {
		log.Fatal("[API-MAIN]: Failed to initialize chat module: ", err)
	}
	chat_module.RegisterRoutes(baseGroup, cfg)

	if err := user_module.Init(cfg); err != nil {
		log.Fatal("[API-MAIN]: Failed to initialize user module: ", err)
	}
	user_module.RegisterRoutes(baseGroup, cfg)

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}
