package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/database"
	"github.com/shrijankc81-blip/Portfolio/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newExperienceRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Experience{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	database.DB = db

	r := gin.New()
	r.POST("/api/experience", CreateExperience)
	r.PUT("/api/experience/:id", UpdateExperience)
	return r
}

func putExperience(r *gin.Engine, id uint, body gin.H) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/experience/%d", id), &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateExperienceCurrentClearsEndDate(t *testing.T) {
	r := newExperienceRouter(t)

	end := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)
	experience := models.Experience{
		Title:     "Backend Developer",
		Company:   "Acme",
		StartDate: time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Type:      models.ExperienceWork,
	}
	assert.NoError(t, database.DB.Create(&experience).Error)

	// An unrelated partial update leaves the end date alone
	w := putExperience(r, experience.ID, gin.H{"location": "Remote"})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Experience
	assert.NoError(t, database.DB.First(&stored, experience.ID).Error)
	assert.NotNil(t, stored.EndDate)
	assert.Equal(t, "Remote", stored.Location)

	// Marking the entry current clears the end date
	w = putExperience(r, experience.ID, gin.H{"current": true})
	assert.Equal(t, http.StatusOK, w.Code)

	// Read into a fresh struct: gorm leaves a stale non-nil pointer field
	// untouched when the scanned column is NULL.
	var updated models.Experience
	assert.NoError(t, database.DB.First(&updated, experience.ID).Error)
	assert.True(t, updated.Current)
	assert.Nil(t, updated.EndDate)
}

func TestCreateExperienceCurrentIgnoresEndDate(t *testing.T) {
	r := newExperienceRouter(t)

	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(gin.H{
		"title":     "Engineer",
		"company":   "Acme",
		"startDate": "2022-01-01T00:00:00Z",
		"endDate":   "2023-01-01T00:00:00Z",
		"current":   true,
		"type":      "work",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/experience", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var stored models.Experience
	assert.NoError(t, database.DB.First(&stored, "company = ?", "Acme").Error)
	assert.True(t, stored.Current)
	assert.Nil(t, stored.EndDate)
}
