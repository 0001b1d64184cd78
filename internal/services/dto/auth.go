package dto

import "jobapply_backend/internal/models"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	UserID      string          `json:"user_id"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
}

// SessionResponse mirrors the dashboard's "who am I" check.
type SessionResponse struct {
	UserID   string          `json:"user_id"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name,omitempty"`
	Role     models.UserRole `json:"role"`
}
