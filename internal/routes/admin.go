package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/handlers"
	"github.com/shrijankc81-blip/Portfolio/internal/middleware"
)

func RegisterAdminRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")

	admin.POST("/login", middleware.AuthRateLimit(), handlers.Login)

	protected := admin.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", handlers.Me)
		protected.PUT("/change-password", handlers.ChangePassword)
	}
}
