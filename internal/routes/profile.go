package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/handlers"
	"github.com/shrijankc81-blip/Portfolio/internal/middleware"
)

func RegisterProfileRoutes(r *gin.RouterGroup) {
	profile := r.Group("/profile")

	profile.GET("", handlers.GetProfile)

	protected := profile.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("", handlers.UpdateProfile)
		protected.POST("/upload-image", handlers.UploadProfileImage)
		protected.POST("/reset", handlers.ResetProfile)
	}
}
