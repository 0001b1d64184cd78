package routes

import (
	"net/http"

	"jobapply_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api/v1. Auth and role checks
// live inside each handler's RegisterRoutes, so this stays a flat list.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		h.Wizard.RegisterRoutes(api)
		h.Application.RegisterRoutes(api)
		h.Admin.RegisterRoutes(api)
		h.Auth.RegisterRoutes(api)
		h.File.RegisterRoutes(api)
	}
}
