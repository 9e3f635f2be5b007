package models

import "time"

// Skill is a single entry in the skills section, grouped by category on
// the public site. Level is a 1-5 proficiency scale.
type Skill struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Category  string `gorm:"not null;index" json:"category"`
	Level     int    `gorm:"default:1" json:"level"`
	Icon      string `json:"icon"`
	SortOrder int    `gorm:"default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Skill) TableName() string {
	return "skills"
}
