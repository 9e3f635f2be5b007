package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/models"
	"github.com/shrijankc81-blip/Portfolio/internal/repository"
	"github.com/shrijankc81-blip/Portfolio/internal/services"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newContactRouter(t *testing.T) (*gin.Engine, *services.ContactService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Contact{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := services.NewContactService(repository.NewContactRepository(db))
	h := NewContactHandler(svc)

	r := gin.New()
	r.POST("/api/contact", h.Submit)
	r.GET("/api/contact", h.List)
	r.GET("/api/contact/stats", h.Stats)
	r.PUT("/api/contact/:id", h.Update)
	r.PUT("/api/contact/:id/notes", h.UpdateNotes)
	r.DELETE("/api/contact/:id", h.Delete)
	return r, svc
}

func doJSON(r *gin.Engine, method, path string, body any, remoteAddr string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func submission() gin.H {
	return gin.H{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Hello",
		"message": "I would like to get in touch.",
	}
}

func TestSubmitEndpoint(t *testing.T) {
	r, _ := newContactRouter(t)

	w := doJSON(r, http.MethodPost, "/api/contact", submission(), "10.1.1.1:4000")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotZero(t, resp.ID)
	assert.Contains(t, resp.Message, "Thank you")
}

func TestSubmitEndpointValidation(t *testing.T) {
	r, _ := newContactRouter(t)

	body := submission()
	body["email"] = "not-an-email"
	w := doJSON(r, http.MethodPost, "/api/contact", body, "10.1.1.1:4000")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "valid email")

	body = submission()
	delete(body, "message")
	w = doJSON(r, http.MethodPost, "/api/contact", body, "10.1.1.1:4000")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All fields are required")
}

func TestSubmitEndpointRateLimit(t *testing.T) {
	r, _ := newContactRouter(t)

	for i := 0; i < 5; i++ {
		w := doJSON(r, http.MethodPost, "/api/contact", submission(), "10.2.2.2:4000")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(r, http.MethodPost, "/api/contact", submission(), "10.2.2.2:4000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many messages")

	// Another source IP still goes through
	w = doJSON(r, http.MethodPost, "/api/contact", submission(), "10.3.3.3:4000")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	r, svc := newContactRouter(t)

	contact, err := svc.Submit(services.SubmitContactInput{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello",
		IPAddress: "1.1.1.1",
	})
	assert.NoError(t, err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/contact/%d", contact.ID), gin.H{"status": "replied"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
		Contact struct {
			Status    string  `json:"status"`
			RepliedAt *string `json:"repliedAt"`
		} `json:"contact"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Contact status updated successfully", resp.Message)
	assert.Equal(t, "replied", resp.Contact.Status)
	assert.NotNil(t, resp.Contact.RepliedAt)
}

func TestUpdateStatusEndpointRejectsUnknown(t *testing.T) {
	r, svc := newContactRouter(t)

	contact, err := svc.Submit(services.SubmitContactInput{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello",
		IPAddress: "1.1.1.1",
	})
	assert.NoError(t, err)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/contact/%d", contact.ID), gin.H{"status": "spam"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status value")

	// Empty body is treated as a bad status request too
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/contact/%d", contact.ID), gin.H{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateNotesOnly(t *testing.T) {
	r, svc := newContactRouter(t)

	contact, err := svc.Submit(services.SubmitContactInput{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello",
		IPAddress: "1.1.1.1",
	})
	assert.NoError(t, err)

	// PUT /:id with only adminNotes updates the annotation, not the status
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/contact/%d", contact.ID), gin.H{"adminNotes": "call back"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Contact notes updated successfully")

	updated, _, err := svc.List("", "", 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, "call back", updated[0].AdminNotes)
	assert.Equal(t, models.ContactStatusNew, updated[0].Status)

	// The dedicated notes endpoint requires the field
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/contact/%d/notes", contact.ID), gin.H{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEndpointNotFound(t *testing.T) {
	r, _ := newContactRouter(t)

	w := doJSON(r, http.MethodPut, "/api/contact/9999", gin.H{"status": "read"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/api/contact/abc", gin.H{"status": "read"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEndpoint(t *testing.T) {
	r, svc := newContactRouter(t)

	contact, err := svc.Submit(services.SubmitContactInput{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello",
		IPAddress: "1.1.1.1",
	})
	assert.NoError(t, err)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/contact/%d", contact.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/contact/%d", contact.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEndpoint(t *testing.T) {
	r, svc := newContactRouter(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(services.SubmitContactInput{
			Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello",
			IPAddress: fmt.Sprintf("5.5.5.%d", i),
		})
		assert.NoError(t, err)
	}

	w := doJSON(r, http.MethodGet, "/api/contact?page=1&limit=2", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Contacts   []models.Contact `json:"contacts"`
		Pagination struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Contacts, 2)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

func TestStatsEndpoint(t *testing.T) {
	r, svc := newContactRouter(t)

	_, err := svc.Submit(services.SubmitContactInput{
		Name: "Jane", Email: "jane@example.com", Subject: "Hi", Message: "Hello",
		IPAddress: "1.1.1.1",
	})
	assert.NoError(t, err)

	w := doJSON(r, http.MethodGet, "/api/contact/stats", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Total    int64            `json:"total"`
		Today    int64            `json:"today"`
		ByStatus map[string]int64 `json:"byStatus"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Today)
	assert.Equal(t, int64(1), stats.ByStatus["new"])
}
