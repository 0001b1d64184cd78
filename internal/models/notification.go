package models

import "gorm.io/datatypes"

// Notification is an admin-facing event record, currently written when
// a new application lands.
type Notification struct {
	BaseModel
	Type    string         `gorm:"not null" json:"type"` // "application_submitted"
	Title   string         `gorm:"not null" json:"title"`
	Message string         `json:"message"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data"` // {"application_id": "...", "job_type": "..."}
	IsRead  bool           `gorm:"default:false" json:"is_read"`
}
