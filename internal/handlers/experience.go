package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/database"
	"github.com/shrijankc81-blip/Portfolio/internal/models"
)

// GetExperiences handles GET /api/experience (public). Accepts an
// optional ?type=work|education filter.
func GetExperiences(c *gin.Context) {
	expType := c.Query("type")

	cacheKey := "experience:" + expType
	var cached []models.Experience
	if err := database.CacheGet(cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "experiences": cached})
		return
	}

	query := database.DB.Model(&models.Experience{})
	if expType != "" {
		query = query.Where("type = ?", expType)
	}

	var experiences []models.Experience
	if err := query.Order("sort_order ASC, start_date DESC").Find(&experiences).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheSet(cacheKey, experiences, 30*time.Second)
	c.JSON(http.StatusOK, gin.H{"success": true, "experiences": experiences})
}

// GetExperience handles GET /api/experience/:id (public)
func GetExperience(c *gin.Context) {
	var experience models.Experience
	if err := database.DB.First(&experience, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "experience": experience})
}

type experienceInput struct {
	Title       *string    `json:"title"`
	Company     *string    `json:"company"`
	Location    *string    `json:"location"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Current     *bool      `json:"current"`
	Description *string    `json:"description"`
	Type        *string    `json:"type"`
	SortOrder   *int       `json:"order"`
}

// CreateExperience handles POST /api/experience (admin)
func CreateExperience(c *gin.Context) {
	var input experienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Title == nil || *input.Title == "" || input.Company == nil || *input.Company == "" || input.StartDate == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, company, and start date are required"})
		return
	}
	if input.Type == nil || !models.ValidExperienceType(*input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Type must be either "work" or "education"`})
		return
	}

	experience := models.Experience{
		Title:     *input.Title,
		Company:   *input.Company,
		StartDate: *input.StartDate,
		EndDate:   input.EndDate,
		Type:      models.ExperienceType(*input.Type),
	}
	if input.Location != nil {
		experience.Location = *input.Location
	}
	if input.Current != nil {
		experience.Current = *input.Current
		if *input.Current {
			experience.EndDate = nil
		}
	}
	if input.Description != nil {
		experience.Description = *input.Description
	}
	if input.SortOrder != nil {
		experience.SortOrder = *input.SortOrder
	}

	if err := database.DB.Create(&experience).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheInvalidate("experience:*")
	c.JSON(http.StatusCreated, gin.H{"success": true, "experience": experience})
}

// UpdateExperience handles PUT /api/experience/:id (admin)
func UpdateExperience(c *gin.Context) {
	var experience models.Experience
	if err := database.DB.First(&experience, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
		return
	}

	var input experienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Type != nil && !models.ValidExperienceType(*input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Type must be either "work" or "education"`})
		return
	}

	if input.Title != nil && *input.Title != "" {
		experience.Title = *input.Title
	}
	if input.Company != nil && *input.Company != "" {
		experience.Company = *input.Company
	}
	if input.Location != nil {
		experience.Location = *input.Location
	}
	if input.StartDate != nil {
		experience.StartDate = *input.StartDate
	}
	// A JSON null endDate is indistinguishable from an omitted one here,
	// so it is treated as omitted; marking the entry current clears it.
	if input.EndDate != nil {
		experience.EndDate = input.EndDate
	}
	if input.Current != nil {
		experience.Current = *input.Current
		if *input.Current {
			experience.EndDate = nil
		}
	}
	if input.Description != nil {
		experience.Description = *input.Description
	}
	if input.Type != nil {
		experience.Type = models.ExperienceType(*input.Type)
	}
	if input.SortOrder != nil {
		experience.SortOrder = *input.SortOrder
	}

	if err := database.DB.Save(&experience).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheInvalidate("experience:*")
	c.JSON(http.StatusOK, gin.H{"success": true, "experience": experience})
}

// DeleteExperience handles DELETE /api/experience/:id (admin)
func DeleteExperience(c *gin.Context) {
	var experience models.Experience
	if err := database.DB.First(&experience, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
		return
	}

	if err := database.DB.Delete(&experience).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheInvalidate("experience:*")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Experience deleted successfully"})
}
