package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/config"
	"github.com/shrijankc81-blip/Portfolio/internal/database"
	"github.com/shrijankc81-blip/Portfolio/internal/handlers"
	"github.com/shrijankc81-blip/Portfolio/internal/middleware"
	"github.com/shrijankc81-blip/Portfolio/internal/models"
	"github.com/shrijankc81-blip/Portfolio/internal/repository"
	"github.com/shrijankc81-blip/Portfolio/internal/routes"
	"github.com/shrijankc81-blip/Portfolio/internal/seeds"
	"github.com/shrijankc81-blip/Portfolio/internal/services"
	"github.com/shrijankc81-blip/Portfolio/pkg/logger"
)

func main() {
	config.LoadConfig()

	// Environment-based logger initialization (production = JSON, development = pretty)
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Portfolio Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect database + Redis
	database.Connect()
	database.InitRedis()

	logger.Info().Msg("Running database migrations...")
	if err := database.DB.AutoMigrate(
		&models.Admin{},
		&models.Profile{},
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.Contact{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	if err := seeds.EnsureDefaultAdmin(database.DB); err != nil {
		logger.Fatal().Err(err).Msg("Failed to ensure default admin")
	}

	// Contact workflow wiring: repository -> service -> handler
	contactRepo := repository.NewContactRepository(database.DB)
	contactService := services.NewContactService(contactRepo)
	contactHandler := handlers.NewContactHandler(contactService)

	// Router
	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.GeneralRateLimit())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Portfolio API is running!"})
	})

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	api := r.Group("/api")
	{
		routes.RegisterAdminRoutes(api)
		routes.RegisterProfileRoutes(api)
		routes.RegisterProjectRoutes(api)
		routes.RegisterSkillRoutes(api)
		routes.RegisterExperienceRoutes(api)
		routes.RegisterUploadRoutes(api)
		routes.RegisterContactRoutes(api, contactHandler)
	}

	port := config.AppConfig.Port
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
