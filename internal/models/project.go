package models

import (
	"time"

	"github.com/lib/pq"
)

// Project is a portfolio entry shown in the projects section
type Project struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Image        string         `json:"image"`
	Technologies pq.StringArray `gorm:"type:text[]" json:"technologies"`
	LiveURL      string         `gorm:"column:live_url" json:"liveUrl"`
	GithubURL    string         `gorm:"column:github_url" json:"githubUrl"`
	Featured     bool           `gorm:"default:false" json:"featured"`
	SortOrder    int            `gorm:"default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}
