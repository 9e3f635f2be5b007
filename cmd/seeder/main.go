package main

import (
	"os"

	"github.com/shrijankc81-blip/Portfolio/internal/config"
	"github.com/shrijankc81-blip/Portfolio/internal/database"
	"github.com/shrijankc81-blip/Portfolio/internal/models"
	"github.com/shrijankc81-blip/Portfolio/internal/seeds"
	"github.com/shrijankc81-blip/Portfolio/pkg/logger"
)

// Seeds the database with the default admin account and sample portfolio
// content. Safe to run repeatedly; existing rows are never overwritten.
func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	database.Connect()

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
		logger.Fatal().Err(err).Msg("Failed to seed admin")
	}
	if err := seeds.SeedPortfolio(database.DB); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed portfolio content")
	}

	logger.Info().Msg("Seeding complete")
}
