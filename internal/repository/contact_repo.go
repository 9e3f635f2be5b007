package repository

import (
	"errors"
	"time"

	"github.com/shrijankc81-blip/Portfolio/internal/models"
	"gorm.io/gorm"
)

// ContactRepository is the persistence surface for contact messages.
// Handlers never touch the store for contact operations directly; the
// contact service owns the workflow and goes through this interface.
type ContactRepository interface {
	Create(contact *models.Contact) error
	// FindByID returns (nil, nil) when no row matches.
	FindByID(id uint) (*models.Contact, error)
	// FindAndCount returns one page of messages, newest first, plus the
	// total count matching the same filters. An empty status means no
	// status filter; an empty search means no text filter.
	FindAndCount(status string, search string, offset, limit int) ([]models.Contact, int64, error)
	Update(contact *models.Contact) error
	Delete(contact *models.Contact) error

	CountByIPSince(ip string, since time.Time) (int64, error)
	Count() (int64, error)
	CountSince(since time.Time) (int64, error)
	// CountByStatus maps each status present in the table to its count.
	// Statuses with no rows are absent from the map.
	CountByStatus() (map[string]int64, error)
}

type gormContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &gormContactRepository{db: db}
}

func (r *gormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *gormContactRepository) FindByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *gormContactRepository) FindAndCount(status string, search string, offset, limit int) ([]models.Contact, int64, error) {
	query := r.db.Model(&models.Contact{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(subject) LIKE LOWER(?)",
			search, search, search,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *gormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

func (r *gormContactRepository) Delete(contact *models.Contact) error {
	return r.db.Delete(contact).Error
}

func (r *gormContactRepository) CountByIPSince(ip string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Where("ip_address = ? AND created_at >= ?", ip, since).
		Count(&count).Error
	return count, err
}

func (r *gormContactRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Count(&count).Error
	return count, err
}

func (r *gormContactRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

func (r *gormContactRepository) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&models.Contact{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}
	return byStatus, nil
}
