package main

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jetfriend/cmd/fx/chatfx"
	"jetfriend/cmd/fx/configfx"
	"jetfriend/cmd/fx/llmfx"
	"jetfriend/cmd/fx/placesfx"
	"jetfriend/internal/api/controllers"
	"jetfriend/pkg/config"
	"jetfriend/pkg/middleware"
)

func main() {
	// Missing .env is fine; configuration falls back to process env.
	_ = godotenv.Load()

	app := fx.New(
		configfx.Module,
		llmfx.Module,
		placesfx.Module,
		chatfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	cfg *config.Config,
	chatController *controllers.ChatController,
	placesController *controllers.PlacesController,
	systemController *controllers.SystemController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg, chatController, placesController, systemController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	chatController *controllers.ChatController,
	placesController *controllers.PlacesController,
	systemController *controllers.SystemController,
) {
	api := r.Group("/api")
	api.POST("/chat", chatController.ChatHandler)
	api.POST("/places", placesController.SearchHandler)
	api.GET("/health", systemController.HealthHandler)
	api.GET("/test", systemController.TestAIHandler)
	api.GET("/test/places", systemController.TestPlacesHandler)

	// Front-end assets.
	r.StaticFile("/", filepath.Join(cfg.App.StaticDir, "index.html"))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.File(filepath.Join(cfg.App.StaticDir, filepath.Clean(c.Request.URL.Path)))
			return
		}
		c.Status(http.StatusNotFound)
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.App.Port))
				if err := engine.Run(":" + cfg.App.Port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return logger.Sync()
		},
	})
}
