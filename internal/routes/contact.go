package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/handlers"
	"github.com/shrijankc81-blip/Portfolio/internal/middleware"
)

func RegisterContactRoutes(r *gin.RouterGroup, h *handlers.ContactHandler) {
	contact := r.Group("/contact")

	// Public submission
	contact.POST("", h.Submit)

	// Admin triage surface
	protected := contact.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("", h.List)
		protected.GET("/stats", h.Stats)
		protected.PUT("/:id", h.Update)
		protected.PUT("/:id/notes", h.UpdateNotes)
		protected.DELETE("/:id", h.Delete)
	}
}
