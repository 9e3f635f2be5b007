package seeds

import (
	"time"

	"github.com/lib/pq"
	"github.com/shrijankc81-blip/Portfolio/internal/models"
	"github.com/shrijankc81-blip/Portfolio/pkg/logger"
	"gorm.io/gorm"
)

// SeedPortfolio fills empty content tables with sample data for local
// development. Tables that already hold rows are left alone.
func SeedPortfolio(db *gorm.DB) error {
	if err := seedProfile(db); err != nil {
		return err
	}
	if err := seedSkills(db); err != nil {
		return err
	}
	if err := seedProjects(db); err != nil {
		return err
	}
	return seedExperience(db)
}

func seedProfile(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	profile := models.DefaultProfile()
	if err := db.Create(&profile).Error; err != nil {
		return err
	}
	logger.Info().Msg("Seeded default profile")
	return nil
}

func seedSkills(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Skill{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	skills := []models.Skill{
		{Name: "JavaScript", Category: "Frontend", Level: 5, SortOrder: 1},
		{Name: "React", Category: "Frontend", Level: 5, SortOrder: 2},
		{Name: "Tailwind CSS", Category: "Frontend", Level: 4, SortOrder: 3},
		{Name: "Node.js", Category: "Backend", Level: 4, SortOrder: 1},
		{Name: "Go", Category: "Backend", Level: 4, SortOrder: 2},
		{Name: "PostgreSQL", Category: "Database", Level: 4, SortOrder: 1},
		{Name: "Redis", Category: "Database", Level: 3, SortOrder: 2},
		{Name: "Docker", Category: "DevOps", Level: 3, SortOrder: 1},
	}
	if err := db.Create(&skills).Error; err != nil {
		return err
	}
	logger.Info().Int("count", len(skills)).Msg("Seeded skills")
	return nil
}

func seedProjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	projects := []models.Project{
		{
			Title:        "Portfolio Website",
			Description:  "Personal portfolio with an admin panel for managing content and contact messages.",
			Technologies: pq.StringArray{"React", "Go", "PostgreSQL"},
			GithubURL:    "https://github.com/Kimi0123/portfolio",
			Featured:     true,
			SortOrder:    1,
		},
		{
			Title:        "Task Tracker",
			Description:  "A kanban-style task tracking app with drag and drop boards.",
			Technologies: pq.StringArray{"React", "Node.js", "MongoDB"},
			SortOrder:    2,
		},
	}
	if err := db.Create(&projects).Error; err != nil {
		return err
	}
	logger.Info().Int("count", len(projects)).Msg("Seeded projects")
	return nil
}

func seedExperience(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Experience{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	experiences := []models.Experience{
		{
			Title:       "Full Stack Developer",
			Company:     "Freelance",
			Location:    "Kathmandu, Nepal",
			StartDate:   time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
			Current:     true,
			Description: "Building websites and web applications for clients.",
			Type:        models.ExperienceWork,
			SortOrder:   1,
		},
		{
			Title:     "BSc (Hons) Computing",
			Company:   "Islington College",
			Location:  "Kathmandu, Nepal",
			StartDate: time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC),
			Type:      models.ExperienceEducation,
			SortOrder: 1,
		},
	}
	if err := db.Create(&experiences).Error; err != nil {
		return err
	}
	logger.Info().Int("count", len(experiences)).Msg("Seeded experience entries")
	return nil
}
