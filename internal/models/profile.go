package models

import "time"

// Profile is the site owner's information shown on the public site.
// There is exactly one active profile row; GetProfile creates it on
// demand with the defaults below.
type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Personal information
	FullName     string `gorm:"not null" json:"fullName"`
	Title        string `gorm:"not null" json:"title"`
	Bio          string `gorm:"type:text" json:"bio"`
	ProfileImage string `json:"profileImage"`

	// Contact information
	Email    string `gorm:"not null" json:"email"`
	Phone    string `json:"phone"`
	Location string `gorm:"not null" json:"location"`

	// Social links
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`

	// Professional information
	YearsOfExperience int    `gorm:"default:0" json:"yearsOfExperience"`
	CurrentPosition   string `json:"currentPosition"`
	Company           string `json:"company"`

	// About section content
	AboutTitle       string `gorm:"not null" json:"aboutTitle"`
	AboutDescription string `gorm:"type:text" json:"aboutDescription"`

	// Hero section content
	HeroSubtitle    string `json:"heroSubtitle"`
	HeroDescription string `gorm:"type:text" json:"heroDescription"`

	ResumeURL string `gorm:"column:resume_url" json:"resumeUrl"`

	IsAvailableForWork bool `gorm:"default:true" json:"isAvailableForWork"`
	IsActive           bool `gorm:"default:true;index" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}

// DefaultProfile returns the seed values used when no profile row exists
// and when the operator resets the profile.
func DefaultProfile() Profile {
	return Profile{
		FullName:           "Nirvan Maharjan",
		Title:              "Full Stack Developer",
		Bio:                "I'm a Full Stack Developer passionate about building exceptional digital experiences. I enjoy creating websites and web applications that not only look great but also provide seamless user experiences.",
		Email:              "maharjannirvan01@gmail.com",
		Phone:              "+977 98XXXXXXXX",
		Location:           "Kathmandu, Nepal",
		Github:             "https://github.com/Kimi0123",
		CurrentPosition:    "Full Stack Developer",
		AboutTitle:         "Get to know me!",
		AboutDescription:   "With a background in both design and development, I bring a unique perspective to every project. I love the challenge of turning complex problems into simple, beautiful, and intuitive solutions.",
		HeroSubtitle:       "Building amazing digital experiences",
		HeroDescription:    "I create modern, responsive websites and applications that deliver exceptional user experiences.",
		IsAvailableForWork: true,
		IsActive:           true,
	}
}
