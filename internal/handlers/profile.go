package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/database"
	"github.com/shrijankc81-blip/Portfolio/internal/models"
	"github.com/shrijankc81-blip/Portfolio/pkg/logger"
	"gorm.io/gorm"
)

// activeProfile loads the single active profile row, creating it with
// defaults when missing.
func activeProfile() (*models.Profile, error) {
	var profile models.Profile
	err := database.DB.Where("is_active = ?", true).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	profile = models.DefaultProfile()
	if err := database.DB.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfile handles GET /api/profile (public)
func GetProfile(c *gin.Context) {
	var cached models.Profile
	if err := database.CacheGet("profile:active", &cached); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	profile, err := activeProfile()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching profile"})
		return
	}

	go database.CacheSet("profile:active", profile, 30*time.Second)
	c.JSON(http.StatusOK, profile)
}

type profileInput struct {
	FullName           string `json:"fullName"`
	Title              string `json:"title"`
	Bio                string `json:"bio"`
	ProfileImage       string `json:"profileImage"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Location           string `json:"location"`
	Github             string `json:"github"`
	Linkedin           string `json:"linkedin"`
	Twitter            string `json:"twitter"`
	Website            string `json:"website"`
	YearsOfExperience  int    `json:"yearsOfExperience"`
	CurrentPosition    string `json:"currentPosition"`
	Company            string `json:"company"`
	AboutTitle         string `json:"aboutTitle"`
	AboutDescription   string `json:"aboutDescription"`
	HeroSubtitle       string `json:"heroSubtitle"`
	HeroDescription    string `json:"heroDescription"`
	ResumeURL          string `json:"resumeUrl"`
	IsAvailableForWork bool   `json:"isAvailableForWork"`
}

// UpdateProfile handles PUT /api/profile (admin). The admin UI always
// sends the full profile form, so this is a whole-row overwrite.
func UpdateProfile(c *gin.Context) {
	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profile, err := activeProfile()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile"})
		return
	}

	profile.FullName = input.FullName
	profile.Title = input.Title
	profile.Bio = input.Bio
	profile.ProfileImage = input.ProfileImage
	profile.Email = input.Email
	profile.Phone = input.Phone
	profile.Location = input.Location
	profile.Github = input.Github
	profile.Linkedin = input.Linkedin
	profile.Twitter = input.Twitter
	profile.Website = input.Website
	profile.YearsOfExperience = input.YearsOfExperience
	profile.CurrentPosition = input.CurrentPosition
	profile.Company = input.Company
	profile.AboutTitle = input.AboutTitle
	profile.AboutDescription = input.AboutDescription
	profile.HeroSubtitle = input.HeroSubtitle
	profile.HeroDescription = input.HeroDescription
	profile.ResumeURL = input.ResumeURL
	profile.IsAvailableForWork = input.IsAvailableForWork

	if err := database.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile"})
		return
	}

	go database.CacheInvalidate("profile:*")
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

// UploadProfileImage handles POST /api/profile/upload-image (admin)
func UploadProfileImage(c *gin.Context) {
	url, err := uploadFormFile(c, "portfolio/profile")
	if err != nil {
		respondError(c, err)
		return
	}

	profile, perr := activeProfile()
	if perr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading profile image"})
		return
	}

	if err := database.DB.Model(profile).Update("profile_image", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading profile image"})
		return
	}
	profile.ProfileImage = url

	go database.CacheInvalidate("profile:*")
	c.JSON(http.StatusOK, gin.H{
		"message":  "Profile image uploaded successfully",
		"imageUrl": url,
		"profile":  profile,
	})
}

// ResetProfile handles POST /api/profile/reset (admin)
func ResetProfile(c *gin.Context) {
	profile, err := activeProfile()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resetting profile"})
		return
	}

	defaults := models.DefaultProfile()
	defaults.ID = profile.ID
	defaults.CreatedAt = profile.CreatedAt
	if err := database.DB.Save(&defaults).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resetting profile"})
		return
	}

	logger.Info().Uint("id", defaults.ID).Msg("Profile reset to defaults")
	go database.CacheInvalidate("profile:*")
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile reset to defaults successfully",
		"profile": defaults,
	})
}
