package services

import (
	"context"
	"encoding/json"
	"fmt"

	"jobapply_backend/internal/email"
	"jobapply_backend/internal/logger"
	"jobapply_backend/internal/models"
	"jobapply_backend/internal/repositories"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationService records admin-facing events and mails the review
// inbox. Everything here is best-effort: a failed notification never
// fails the submission that produced it.
type NotificationService interface {
	ApplicationSubmitted(ctx context.Context, db *gorm.DB, app *models.Application)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
	adminEmail       string
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
	adminEmail string,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
		adminEmail:       adminEmail,
	}
}

func (s *notificationService) ApplicationSubmitted(ctx context.Context, db *gorm.DB, app *models.Application) {
	payload, err := json.Marshal(map[string]string{
		"application_id": app.ID,
		"job_type":       string(app.JobType),
	})
	if err != nil {
		logger.CtxWithError(ctx, "notification payload marshal failed", err)
		return
	}

	notification := &models.Notification{
		Type:    "application_submitted",
		Title:   "New job application",
		Message: fmt.Sprintf("%s applied for %s", app.FullName, app.JobType),
		Data:    datatypes.JSON(payload),
	}

	if err := s.notificationRepo.Create(db, notification); err != nil {
		logger.CtxWithError(ctx, "notification insert failed", err, "application_id", app.ID)
	}

	if s.adminEmail == "" {
		return
	}

	msg := &email.Message{
		To:      []string{s.adminEmail},
		Subject: "New job application: " + app.FullName,
		Body: fmt.Sprintf("A new application was submitted.\n\nName: %s\nPhone: %s\nPosition: %s\n",
			app.FullName, app.Phone, app.JobType),
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.CtxWithError(ctx, "notification email failed", err, "application_id", app.ID)
	}
}
