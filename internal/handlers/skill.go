package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/database"
	"github.com/shrijankc81-blip/Portfolio/internal/models"
)

// GetSkills handles GET /api/skills (public). Skills are returned
// grouped by category for the frontend skills section.
func GetSkills(c *gin.Context) {
	var grouped map[string][]models.Skill
	if err := database.CacheGet("skills:grouped", &grouped); err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "skills": grouped})
		return
	}

	var skills []models.Skill
	if err := database.DB.Order("category ASC, sort_order ASC, name ASC").Find(&skills).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	grouped = make(map[string][]models.Skill)
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}

	go database.CacheSet("skills:grouped", grouped, 30*time.Second)
	c.JSON(http.StatusOK, gin.H{"success": true, "skills": grouped})
}

// GetSkill handles GET /api/skills/:id (public)
func GetSkill(c *gin.Context) {
	var skill models.Skill
	if err := database.DB.First(&skill, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skill": skill})
}

type skillInput struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	Level     *int    `json:"level"`
	Icon      *string `json:"icon"`
	SortOrder *int    `json:"order"`
}

// CreateSkill handles POST /api/skills (admin)
func CreateSkill(c *gin.Context) {
	var input skillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Name == nil || *input.Name == "" || input.Category == nil || *input.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and category are required"})
		return
	}
	if input.Level != nil && (*input.Level < 1 || *input.Level > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Level must be between 1 and 5"})
		return
	}

	skill := models.Skill{
		Name:     *input.Name,
		Category: *input.Category,
		Level:    1,
	}
	if input.Level != nil {
		skill.Level = *input.Level
	}
	if input.Icon != nil {
		skill.Icon = *input.Icon
	}
	if input.SortOrder != nil {
		skill.SortOrder = *input.SortOrder
	}

	if err := database.DB.Create(&skill).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheInvalidate("skills:*")
	c.JSON(http.StatusCreated, gin.H{"success": true, "skill": skill})
}

// UpdateSkill handles PUT /api/skills/:id (admin)
func UpdateSkill(c *gin.Context) {
	var skill models.Skill
	if err := database.DB.First(&skill, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	var input skillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Level != nil && (*input.Level < 1 || *input.Level > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Level must be between 1 and 5"})
		return
	}

	if input.Name != nil && *input.Name != "" {
		skill.Name = *input.Name
	}
	if input.Category != nil && *input.Category != "" {
		skill.Category = *input.Category
	}
	if input.Level != nil {
		skill.Level = *input.Level
	}
	if input.Icon != nil {
		skill.Icon = *input.Icon
	}
	if input.SortOrder != nil {
		skill.SortOrder = *input.SortOrder
	}

	if err := database.DB.Save(&skill).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheInvalidate("skills:*")
	c.JSON(http.StatusOK, gin.H{"success": true, "skill": skill})
}

// DeleteSkill handles DELETE /api/skills/:id (admin)
func DeleteSkill(c *gin.Context) {
	var skill models.Skill
	if err := database.DB.First(&skill, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	if err := database.DB.Delete(&skill).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheInvalidate("skills:*")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Skill deleted successfully"})
}

// ReorderSkills handles PUT /api/skills/bulk/reorder (admin)
func ReorderSkills(c *gin.Context) {
	var input struct {
		Skills []reorderItem `json:"skills"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Skills == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Skills array is required"})
		return
	}

	for _, item := range input.Skills {
		if err := database.DB.Model(&models.Skill{}).
			Where("id = ?", item.ID).
			Update("sort_order", item.Order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	go database.CacheInvalidate("skills:*")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Skill order updated successfully"})
}
