package router

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BoluOladipo/AI-Diet-Recommender/config"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/api"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	dietHandler *api.DietHandler,
	chatHandler *api.ChatHandler,
	chatLimiter *middleware.RateLimiter,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	{
		dietHandler.RegisterRoutes(apiGroup)

		chat := apiGroup.Group("")
		chat.Use(chatLimiter.Middleware())
		chatHandler.RegisterRoutes(chat)
	}

	// Serve the browser frontend when the directory exists; API-only
	// deployments just skip it.
	if dir := cfg.Server.FrontendDir; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			router.NoRoute(gin.WrapH(http.FileServer(http.Dir(dir))))
		}
	}

	return router
}
