package services

// ServiceContainer bundles the service layer for handler wiring.
type ServiceContainer struct {
	AuthService         AuthService
	ApplicationService  ApplicationService
	ReviewService       ReviewService
	NotificationService NotificationService
	Uploader            ImageUploader
}
