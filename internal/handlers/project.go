package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/shrijankc81-blip/Portfolio/internal/database"
	"github.com/shrijankc81-blip/Portfolio/internal/models"
)

// GetProjects handles GET /api/projects (public)
func GetProjects(c *gin.Context) {
	var cached []models.Project
	if err := database.CacheGet("projects:all", &cached); err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "projects": cached})
		return
	}

	var projects []models.Project
	if err := database.DB.Order("sort_order ASC, created_at DESC").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheSet("projects:all", projects, 30*time.Second)
	c.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
}

// GetProject handles GET /api/projects/:id (public)
func GetProject(c *gin.Context) {
	var project models.Project
	if err := database.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

type projectInput struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Image        *string  `json:"image"`
	Technologies []string `json:"technologies"`
	LiveURL      *string  `json:"liveUrl"`
	GithubURL    *string  `json:"githubUrl"`
	Featured     *bool    `json:"featured"`
	SortOrder    *int     `json:"order"`
}

// CreateProject handles POST /api/projects (admin)
func CreateProject(c *gin.Context) {
	var input projectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Title == nil || *input.Title == "" || input.Description == nil || *input.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required"})
		return
	}

	project := models.Project{
		Title:        *input.Title,
		Description:  *input.Description,
		Technologies: pq.StringArray(input.Technologies),
	}
	if input.Image != nil {
		project.Image = *input.Image
	}
	if input.LiveURL != nil {
		project.LiveURL = *input.LiveURL
	}
	if input.GithubURL != nil {
		project.GithubURL = *input.GithubURL
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}

	if err := database.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheInvalidate("projects:*")
	c.JSON(http.StatusCreated, gin.H{"success": true, "project": project})
}

// UpdateProject handles PUT /api/projects/:id (admin). Omitted fields
// keep their existing values.
func UpdateProject(c *gin.Context) {
	var project models.Project
	if err := database.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var input projectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Title != nil && *input.Title != "" {
		project.Title = *input.Title
	}
	if input.Description != nil && *input.Description != "" {
		project.Description = *input.Description
	}
	if input.Image != nil {
		project.Image = *input.Image
	}
	if input.Technologies != nil {
		project.Technologies = pq.StringArray(input.Technologies)
	}
	if input.LiveURL != nil {
		project.LiveURL = *input.LiveURL
	}
	if input.GithubURL != nil {
		project.GithubURL = *input.GithubURL
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}

	if err := database.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheInvalidate("projects:*")
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

// DeleteProject handles DELETE /api/projects/:id (admin)
func DeleteProject(c *gin.Context) {
	var project models.Project
	if err := database.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if err := database.DB.Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go database.CacheInvalidate("projects:*")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}

type reorderItem struct {
	ID    uint `json:"id"`
	Order int  `json:"order"`
}

// ReorderProjects handles PUT /api/projects/bulk/reorder (admin)
func ReorderProjects(c *gin.Context) {
	var input struct {
		Projects []reorderItem `json:"projects"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Projects == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Projects array is required"})
		return
	}

	for _, item := range input.Projects {
		if err := database.DB.Model(&models.Project{}).
			Where("id = ?", item.ID).
			Update("sort_order", item.Order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	go database.CacheInvalidate("projects:*")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project order updated successfully"})
}
