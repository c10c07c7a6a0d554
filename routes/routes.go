package routes

import (
	"time"

	"blog-backend/config"
	postsHandler "blog-backend/handlers/posts"
	"blog-backend/handlers/ping"
	"blog-backend/handlers/webhooks"
	"blog-backend/middleware"
	"blog-backend/services/posts"
	"blog-backend/store"
	"blog-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the long-lived collaborators shared by every handler.
type Deps struct {
	Store store.Store
	Posts *posts.Service
}

func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()), gin.Recovery(), middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ping", ping.New(deps.Store).HandlePing)

	PostsRoutes(r, cfg, postsHandler.New(deps.Posts, cfg.IngestTimeout))
	WebhooksRoutes(r, webhooks.New(deps.Store, cfg.ActiveWebhookSecret()))

	return r
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
