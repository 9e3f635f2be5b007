package models

import (
	"time"
)

// ContactStatus tracks where a message sits in the admin triage workflow
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// ValidContactStatus reports whether s is one of the four workflow statuses
func ValidContactStatus(s string) bool {
	switch ContactStatus(s) {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

// Contact is a message submitted through the public contact form.
// Identity fields (name, email, subject, message, ip, user agent) are
// immutable after creation; only triage fields change afterwards.
type Contact struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:255;not null;index" json:"email"`
	Subject string `gorm:"size:200;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	Status ContactStatus `gorm:"type:text;default:'new';index" json:"status"`

	// Captured at submission time for rate limiting and diagnostics
	IPAddress string `gorm:"index:idx_contacts_ip_created" json:"ipAddress"`
	UserAgent string `gorm:"type:text" json:"userAgent"`

	IsSpam     bool       `gorm:"default:false" json:"isSpam"` // reserved, no active filtering yet
	AdminNotes string     `gorm:"type:text" json:"adminNotes"`
	RepliedAt  *time.Time `json:"repliedAt"`

	CreatedAt time.Time `gorm:"index;index:idx_contacts_ip_created" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Contact) TableName() string {
	return "contacts"
}
