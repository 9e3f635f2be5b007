package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shrijankc81-blip/Portfolio/internal/services"
	"github.com/shrijankc81-blip/Portfolio/pkg/logger"
)

// ContactHandler exposes the contact-message workflow over HTTP. The
// public submit endpoint is unauthenticated; everything else sits behind
// the admin auth middleware.
type ContactHandler struct {
	svc *services.ContactService
}

func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	contact, err := h.svc.Submit(services.SubmitContactInput{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info().
		Uint("id", contact.ID).
		Str("email", contact.Email).
		Str("subject", contact.Subject).
		Msg("New contact message received")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your message! I'll get back to you soon.",
		"id":      contact.ID,
	})
}

// List handles GET /api/contact (admin)
func (h *ContactHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")
	search := c.Query("search")

	contacts, pagination, err := h.svc.List(status, search, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts":   contacts,
		"pagination": pagination,
	})
}

// Stats handles GET /api/contact/stats (admin)
func (h *ContactHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Update handles PUT /api/contact/:id (admin). A request carrying a
// status runs the workflow transition; a request with only adminNotes
// updates the annotation alone. AdminNotes is a pointer so an omitted
// field leaves notes untouched while an empty string clears them.
func (h *ContactHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
		return
	}

	var input struct {
		Status     *string `json:"status"`
		AdminNotes *string `json:"adminNotes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if input.Status == nil {
		if input.AdminNotes == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
			return
		}
		contact, err := h.svc.SetNotes(uint(id), *input.AdminNotes)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Contact notes updated successfully",
			"contact": contact,
		})
		return
	}

	contact, svcErr := h.svc.SetStatus(uint(id), *input.Status, input.AdminNotes)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact status updated successfully",
		"contact": contact,
	})
}

// UpdateNotes handles PUT /api/contact/:id/notes (admin)
func (h *ContactHandler) UpdateNotes(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
		return
	}

	var input struct {
		AdminNotes *string `json:"adminNotes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.AdminNotes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "adminNotes is required"})
		return
	}

	contact, svcErr := h.svc.SetNotes(uint(id), *input.AdminNotes)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact notes updated successfully",
		"contact": contact,
	})
}

// Delete handles DELETE /api/contact/:id (admin)
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
		return
	}

	if err := h.svc.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact message deleted successfully"})
}
