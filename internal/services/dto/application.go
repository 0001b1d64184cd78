package dto

import "jobapply_backend/internal/models"

// SubmissionResult reports what a successful submit persisted.
type SubmissionResult struct {
	ApplicationID     string `json:"application_id"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	ProjectsPersisted int    `json:"projects_persisted"`
	ImagesUploaded    int    `json:"images_uploaded"`
	ImagesFailed      int    `json:"images_failed"`
}

// ApplicationList is the full review payload: every application newest
// first, with projects grouped by application id for detail rendering.
type ApplicationList struct {
	Applications []models.Application                    `json:"applications"`
	Projects     map[string][]models.ApplicationProject `json:"projects"`
}

// UpdateStatusRequest changes an application's review status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,application_status"`
}
