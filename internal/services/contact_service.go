package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shrijankc81-blip/Portfolio/internal/models"
	"github.com/shrijankc81-blip/Portfolio/internal/repository"
	apperrors "github.com/shrijankc81-blip/Portfolio/pkg/errors"
	"github.com/shrijankc81-blip/Portfolio/pkg/utils"
)

const (
	maxNameLength    = 100
	maxSubjectLength = 200
	maxMessageLength = 5000

	// Sliding-window abuse deterrent: at most 5 submissions per source IP
	// per trailing hour. Soft limit; concurrent submissions may overshoot
	// by one because the count and the insert are not atomic.
	rateLimitWindow = time.Hour
	rateLimitMax    = 5
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService owns the contact-message workflow: submission
// validation and rate limiting, the triage status lifecycle, and the
// admin query surface.
type ContactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

type SubmitContactInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
	UserAgent string
}

// Submit validates and persists a public contact-form submission
func (s *ContactService) Submit(input SubmitContactInput) (*models.Contact, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	subject := strings.TrimSpace(input.Subject)
	message := strings.TrimSpace(input.Message)

	if name == "" || email == "" || subject == "" || message == "" {
		return nil, apperrors.BadRequest("All fields are required")
	}
	if !emailRegex.MatchString(email) {
		return nil, apperrors.BadRequest("Please provide a valid email address")
	}
	// Bounds are in characters, not bytes
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, apperrors.BadRequest(fmt.Sprintf("Name must be at most %d characters", maxNameLength))
	}
	if utf8.RuneCountInString(subject) > maxSubjectLength {
		return nil, apperrors.BadRequest(fmt.Sprintf("Subject must be at most %d characters", maxSubjectLength))
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, apperrors.BadRequest(fmt.Sprintf("Message must be at most %d characters", maxMessageLength))
	}

	recent, err := s.repo.CountByIPSince(input.IPAddress, time.Now().Add(-rateLimitWindow))
	if err != nil {
		return nil, apperrors.Internal("Failed to send message. Please try again later.")
	}
	if recent >= rateLimitMax {
		return nil, apperrors.TooManyRequests("Too many messages sent. Please wait before sending another message.")
	}

	contact := &models.Contact{
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		Status:    models.ContactStatusNew,
	}
	if err := s.repo.Create(contact); err != nil {
		return nil, apperrors.Internal("Failed to send message. Please try again later.")
	}
	return contact, nil
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// List returns one page of messages for the admin view, newest first.
// An out-of-enum status filter is silently ignored rather than rejected,
// matching the permissive behavior the admin UI relies on.
func (s *ContactService) List(status, search string, page, limit int) ([]models.Contact, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	statusFilter := ""
	if models.ValidContactStatus(status) {
		statusFilter = status
	}

	searchFilter := ""
	if strings.TrimSpace(search) != "" {
		searchFilter = utils.SanitizeSearchQuery(search)
	}

	offset := (page - 1) * limit
	contacts, total, err := s.repo.FindAndCount(statusFilter, searchFilter, offset, limit)
	if err != nil {
		return nil, nil, apperrors.Internal("Failed to fetch contact messages")
	}

	pagination := &Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	return contacts, pagination, nil
}

type ContactStats struct {
	Total    int64            `json:"total"`
	Today    int64            `json:"today"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// Stats aggregates message counts for the admin dashboard. Today counts
// messages created since local midnight on the server clock.
func (s *ContactService) Stats() (*ContactStats, error) {
	total, err := s.repo.Count()
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch contact statistics")
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.repo.CountSince(midnight)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch contact statistics")
	}

	byStatus, err := s.repo.CountByStatus()
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch contact statistics")
	}

	return &ContactStats{Total: total, Today: today, ByStatus: byStatus}, nil
}

// SetStatus moves a message to a new workflow status. Any status can be
// reached from any other. A transition into "replied" always stamps
// repliedAt with the current time, so the field reflects the latest
// reply, not the first. A nil notes pointer leaves adminNotes untouched;
// an empty string clears them.
func (s *ContactService) SetStatus(id uint, status string, notes *string) (*models.Contact, error) {
	if !models.ValidContactStatus(status) {
		return nil, apperrors.BadRequest("Invalid status value")
	}

	contact, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperrors.Internal("Failed to update contact status")
	}
	if contact == nil {
		return nil, apperrors.NotFound("Contact message not found")
	}

	contact.Status = models.ContactStatus(status)
	if contact.Status == models.ContactStatusReplied {
		now := time.Now()
		contact.RepliedAt = &now
	}
	if notes != nil {
		contact.AdminNotes = *notes
	}

	if err := s.repo.Update(contact); err != nil {
		return nil, apperrors.Internal("Failed to update contact status")
	}
	return contact, nil
}

// SetNotes updates the operator annotation independent of status
func (s *ContactService) SetNotes(id uint, notes string) (*models.Contact, error) {
	contact, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperrors.Internal("Failed to update contact notes")
	}
	if contact == nil {
		return nil, apperrors.NotFound("Contact message not found")
	}

	contact.AdminNotes = notes
	if err := s.repo.Update(contact); err != nil {
		return nil, apperrors.Internal("Failed to update contact notes")
	}
	return contact, nil
}

// Delete removes a message permanently. A second delete of the same id
// fails with not found.
func (s *ContactService) Delete(id uint) error {
	contact, err := s.repo.FindByID(id)
	if err != nil {
		return apperrors.Internal("Failed to delete contact message")
	}
	if contact == nil {
		return apperrors.NotFound("Contact message not found")
	}
	if err := s.repo.Delete(contact); err != nil {
		return apperrors.Internal("Failed to delete contact message")
	}
	return nil
}
