package routes

import (
	"blog-backend/config"
	"blog-backend/handlers/posts"
	"blog-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PostsRoutes(r *gin.Engine, cfg *config.Config, h *posts.Handler) {
	// Ingestion trigger used by the seed command
	r.GET("/api/posts/fetchAndStore", h.FetchAndStoreREST)

	// Procedures, caller identity optional
	trpc := r.Group("/api/trpc")
	trpc.Use(middleware.CallerIdentity(cfg.JWTSecret))
	{
		trpc.GET("/posts.getAll", h.GetAll)
		trpc.GET("/posts.getById", h.GetByID)
		trpc.GET("/posts.myLikedPosts", h.MyLikedPosts)
		trpc.GET("/posts.fetchAndStore", h.FetchAndStore)

		trpc.POST("/posts.likePost", h.LikePost)
		trpc.POST("/posts.unlikePost", h.UnlikePost)
		trpc.POST("/posts.unlikeAllPosts", h.UnlikeAllPosts)
	}
}
