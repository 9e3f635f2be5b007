package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/handlers"
	"github.com/shrijankc81-blip/Portfolio/internal/middleware"
)

func RegisterProjectRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")

	projects.GET("", handlers.GetProjects)
	projects.GET("/:id", handlers.GetProject)

	protected := projects.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", handlers.CreateProject)
		protected.PUT("/bulk/reorder", handlers.ReorderProjects)
		protected.PUT("/:id", handlers.UpdateProject)
		protected.DELETE("/:id", handlers.DeleteProject)
	}
}
