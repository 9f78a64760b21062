package presentation

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Tupsu-jy/star-retriever/docs"
	"github.com/Tupsu-jy/star-retriever/internal/middleware"
	"github.com/Tupsu-jy/star-retriever/internal/presentation/handlers"
)

// RouterConfig carries everything the HTTP layer needs
type RouterConfig struct {
	Logger         zerolog.Logger
	Production     bool
	RateLimiter    *middleware.RateLimiter
	StarredHandler *handlers.StarredHandler
	HealthHandler  *handlers.HealthHandler
}

// NewRouter builds the gin engine with middleware and routes
func NewRouter(rc RouterConfig) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestLogger(rc.Logger))
	router.Use(middleware.Recovery(!rc.Production))
	router.Use(middleware.SecurityHeaders())

	// This API only serves browsers following the OAuth flow; any origin may call it.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/health", rc.HealthHandler.Health)

	api := router.Group("/api")
	api.Use(rc.RateLimiter.Middleware())
	{
		api.GET("/getStarredRepos", rc.StarredHandler.GetStarredRepos)
		api.GET("/callback", rc.StarredHandler.Callback)
	}

	// Swagger documentation
	if !rc.Production {
		router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}
