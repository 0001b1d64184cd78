package handlers

import (
	"jobapply_backend/internal/services"
	"jobapply_backend/internal/storage"
	"jobapply_backend/internal/validator"
	"jobapply_backend/internal/wizard"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Wizard      *WizardHandler
	Application *ApplicationHandler
	Admin       *AdminHandler
	Auth        *AuthHandler
	File        *FileHandler
}

func NewAppHandlers(sc *services.ServiceContainer, store *wizard.Store, st storage.Storage, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Wizard:      NewWizardHandler(base, store, sc.ApplicationService),
		Application: NewApplicationHandler(base, sc.ApplicationService),
		Admin:       NewAdminHandler(base, sc.ReviewService),
		Auth:        NewAuthHandler(base, sc.AuthService),
		File:        NewFileHandler(base, st),
	}
}
