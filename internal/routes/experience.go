package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/handlers"
	"github.com/shrijankc81-blip/Portfolio/internal/middleware"
)

func RegisterExperienceRoutes(r *gin.RouterGroup) {
	experience := r.Group("/experience")

	experience.GET("", handlers.GetExperiences)
	experience.GET("/:id", handlers.GetExperience)

	protected := experience.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", handlers.CreateExperience)
		protected.PUT("/:id", handlers.UpdateExperience)
		protected.DELETE("/:id", handlers.DeleteExperience)
	}
}
