package models

// User is a dashboard account (admin or reviewer). Applicants do not
// have accounts; the intake form is anonymous.
type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"not null;default:'reviewer'" json:"role"`
	Status       UserStatus `gorm:"not null;default:'active'" json:"status"`
}

// Profile mirrors the user for display purposes; read-only from the
// review flow's perspective.
type Profile struct {
	BaseModel
	UserID   string   `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Email    string   `gorm:"not null" json:"email"`
	FullName string   `json:"full_name,omitempty"`
	Role     UserRole `gorm:"not null" json:"role"`
}
