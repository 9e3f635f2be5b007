package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/handlers"
	"github.com/shrijankc81-blip/Portfolio/internal/middleware"
)

func RegisterSkillRoutes(r *gin.RouterGroup) {
	skills := r.Group("/skills")

	skills.GET("", handlers.GetSkills)
	skills.GET("/:id", handlers.GetSkill)

	protected := skills.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", handlers.CreateSkill)
		protected.PUT("/bulk/reorder", handlers.ReorderSkills)
		protected.PUT("/:id", handlers.UpdateSkill)
		protected.DELETE("/:id", handlers.DeleteSkill)
	}
}
