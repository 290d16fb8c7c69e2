package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dishdecider/backend/config"
	"github.com/dishdecider/backend/internal/infrastructure/logger"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, log *logger.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = logger.NewNop()
	}

	router := gin.New()

	// Only listed proxies may supply X-Forwarded-For; nil trusts none
	if err := router.SetTrustedProxies(trustedProxies(cfg.Server.TrustedProxies)); err != nil {
		log.Error("invalid trusted proxies, trusting none", "error", err)
		_ = router.SetTrustedProxies(nil)
	}

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/menu/tree", handler.BuildMenuTree)
		v1.POST("/quiz/turn", handler.QuizTurn)

		dishes := v1.Group("/dishes")
		{
			dishes.POST("/score", handler.ScoreDishes)
			dishes.POST("/recommend", handler.RecommendDishes)
		}
	}

	return router
}

func trustedProxies(proxies []string) []string {
	if len(proxies) == 0 {
		return nil
	}
	return proxies
}
