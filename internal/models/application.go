package models

import (
	"github.com/lib/pq"
)

// Application is the submitted job application. Created exactly once at
// successful submission, never deleted; only Status changes afterwards.
type Application struct {
	BaseModel
	FullName          string            `gorm:"not null" json:"full_name"`
	Phone             string            `gorm:"not null" json:"phone"`
	Age               int               `gorm:"not null" json:"age"`
	JobType           JobType           `gorm:"not null;index" json:"job_type"`
	PortfolioURL      string            `json:"portfolio_url,omitempty"`
	Skills            pq.StringArray    `gorm:"type:text[]" json:"skills"`
	Notes             string            `json:"notes,omitempty"`
	ProfilePictureURL string            `json:"profile_picture_url,omitempty"`
	Status            ApplicationStatus `gorm:"not null;default:'pending';index" json:"status"`

	// Relations
	Projects []ApplicationProject `gorm:"foreignKey:ApplicationID" json:"projects,omitempty"`
}

// ApplicationProject is a portfolio work sample attached to an
// application. A project with an empty title is never persisted - the
// title is the sole inclusion gate.
type ApplicationProject struct {
	BaseModel
	ApplicationID      string         `gorm:"type:uuid;not null;index" json:"application_id"`
	ProjectTitle       string         `gorm:"not null" json:"project_title"`
	ProjectDescription string         `json:"project_description,omitempty"`
	MainImageURL       string         `json:"main_image_url,omitempty"`
	// Holds only the URLs that actually uploaded; never padded to the
	// original slot count.
	AdditionalImages pq.StringArray `gorm:"type:text[]" json:"additional_images"`
}
