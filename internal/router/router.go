package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gestac/gestac-backend/internal/config"
	"github.com/gestac/gestac-backend/internal/handler"
	"github.com/gestac/gestac-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Import     *handler.ImportHandler
	Component  *handler.ComponentHandler
	Instructor *handler.InstructorHandler
	Program    *handler.ProgramHandler
	Allocation *handler.AllocationHandler
	Export     *handler.ExportHandler
}

// SetupRouter configures all Gin route groups.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes
	// metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		// ─── Import pipeline ───────────────────────────────────────────
		api.POST("/import", handlers.Import.Import)
		api.DELETE("/data", handlers.Import.Clear)

		// ─── Catalog entities ──────────────────────────────────────────
		components := api.Group("/components")
		{
			components.GET("", handlers.Component.List)
			components.POST("", handlers.Component.Create)
			components.PATCH("/:id", handlers.Component.Update)
			components.DELETE("/:id", handlers.Component.Delete)
		}

		instructors := api.Group("/instructors")
		{
			instructors.GET("", handlers.Instructor.List)
			instructors.POST("", handlers.Instructor.Create)
			instructors.PATCH("/:id", handlers.Instructor.Update)
			instructors.DELETE("/:id", handlers.Instructor.Delete)
		}

		programs := api.Group("/programs")
		{
			programs.GET("", handlers.Program.List)
			programs.POST("", handlers.Program.Create)
			programs.PATCH("/:id", handlers.Program.Update)
			programs.DELETE("/:id", handlers.Program.Delete)
		}

		// ─── Allocations & conflicts ───────────────────────────────────
		allocations := api.Group("/allocations")
		{
			allocations.GET("", handlers.Allocation.List)
			allocations.POST("", handlers.Allocation.Create)
			allocations.PATCH("/:id", handlers.Allocation.Update)
			allocations.DELETE("/:id", handlers.Allocation.Delete)
		}
		api.GET("/conflicts", handlers.Allocation.Conflicts)
		api.POST("/conflicts/recheck", handlers.Allocation.Recheck)

		// ─── Export ────────────────────────────────────────────────────
		api.GET("/export/csv", handlers.Export.CSV)
		api.GET("/export/xlsx", handlers.Export.XLSX)
	}

	return router
}
