package main

import (
	"blog-backend/config"
	"blog-backend/db"
	_ "blog-backend/docs"
	"blog-backend/ingest"
	"blog-backend/routes"
	"blog-backend/services/posts"
	"blog-backend/store"
	"blog-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Blog Backend API
// @version 1.0
// @description Posts, likes and ingestion procedures of the blog backend
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer <JWT> issued by the identity provider
func main() {
	cfg := config.Load()
	utils.ConfigureLogger(cfg.LogLevel, cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		utils.Logger.WithError(err).Fatal("Invalid configuration")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s, err := openStore(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Unable to open the store")
	}
	defer s.Close()

	task := ingest.NewTask(ingest.NewHTTPFetcher(cfg.SourceURL, cfg.HTTPTimeout), s)
	r := routes.SetupRouter(&cfg, routes.Deps{
		Store: s,
		Posts: posts.New(s, task),
	})

	utils.LogInfo("Server listening on :" + cfg.Port + " with " + cfg.StorageType + " storage")
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Logger.WithError(err).Fatal("Server stopped")
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.StorageType == config.StorageMemory {
		return store.NewMemoryStore(), nil
	}
	conn, err := db.InitDB(cfg.DBURL)
	if err != nil {
		return nil, err
	}
	return store.NewGormStore(conn), nil
}
