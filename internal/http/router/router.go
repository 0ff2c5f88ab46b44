package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
)

// SetupRouter собирает gin engine со всеми маршрутами сервиса.
func SetupRouter(
	cfg *config.Config,
	projectHandler *handlers.ProjectHandler,
	contactHandler *handlers.ContactHandler,
	healthHandler *handlers.HealthHandler,
	mediaHandler *handlers.MediaHandler,
	seedHandler *handlers.SeedHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/", healthHandler.Root)
	r.StaticFS("/media", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")

	api.GET("/health", healthHandler.Health)
	api.GET("/projects", projectHandler.ListProjects)
	api.POST("/contact", contactHandler.SubmitContact)

	admin := api.Group("/admin")
	{
		admin.POST("/projects", projectHandler.CreateProject)
		admin.GET("/next-project-id", projectHandler.NextProjectID)
		admin.POST("/projects/image", mediaHandler.UploadImage)
	}

	if seedHandler != nil && cfg.Env == "development" {
		api.POST("/seed", seedHandler.Seed)
	}

	return r
}
