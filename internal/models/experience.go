package models

import "time"

type ExperienceType string

const (
	ExperienceWork      ExperienceType = "work"
	ExperienceEducation ExperienceType = "education"
)

// ValidExperienceType reports whether t is a known experience type
func ValidExperienceType(t string) bool {
	return ExperienceType(t) == ExperienceWork || ExperienceType(t) == ExperienceEducation
}

// Experience is a work or education history entry
type Experience struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Company     string         `gorm:"not null" json:"company"`
	Location    string         `json:"location"`
	StartDate   time.Time      `gorm:"type:date;not null" json:"startDate"`
	EndDate     *time.Time     `gorm:"type:date" json:"endDate"`
	Current     bool           `gorm:"default:false" json:"current"`
	Description string         `gorm:"type:text" json:"description"`
	Type        ExperienceType `gorm:"type:text;default:'work';index" json:"type"`
	SortOrder   int            `gorm:"default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Experience) TableName() string {
	return "experiences"
}
