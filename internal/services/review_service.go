package services

import (
	"context"

	"jobapply_backend/internal/logger"
	"jobapply_backend/internal/models"
	"jobapply_backend/internal/repositories"
	"jobapply_backend/internal/services/dto"
	"jobapply_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ReviewService is the admin side: list submitted applications and
// move them between pending/approved/rejected.
type ReviewService interface {
	ListApplications(ctx context.Context, db *gorm.DB) (*dto.ApplicationList, error)
	GetApplication(ctx context.Context, db *gorm.DB, id string) (*models.Application, error)
	SetStatus(ctx context.Context, db *gorm.DB, id string, status models.ApplicationStatus) error
}

type reviewService struct {
	appRepo repositories.ApplicationRepository
}

func NewReviewService(appRepo repositories.ApplicationRepository) ReviewService {
	return &reviewService{appRepo: appRepo}
}

// ListApplications fetches everything: applications newest first plus
// all projects grouped by application id. The dashboard renders from
// this single payload; no pagination or filtering exists.
func (s *reviewService) ListApplications(ctx context.Context, db *gorm.DB) (*dto.ApplicationList, error) {
	apps, err := s.appRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	projects, err := s.appRepo.FindAllProjects(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	grouped := make(map[string][]models.ApplicationProject)
	for _, p := range projects {
		grouped[p.ApplicationID] = append(grouped[p.ApplicationID], p)
	}

	return &dto.ApplicationList{
		Applications: apps,
		Projects:     grouped,
	}, nil
}

func (s *reviewService) GetApplication(ctx context.Context, db *gorm.DB, id string) (*models.Application, error) {
	app, err := s.appRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return app, nil
}

// SetStatus applies a status transition. No transition is blocked:
// pending can go to approved or rejected, and either can go back to
// pending. On failure the stored status is untouched.
func (s *reviewService) SetStatus(ctx context.Context, db *gorm.DB, id string, status models.ApplicationStatus) error {
	if !models.ValidApplicationStatus(status) {
		return apperrors.ErrInvalidApplicationStatus
	}

	if err := s.appRepo.UpdateStatus(db, id, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		logger.CtxWithError(ctx, "status update failed", err, "application_id", id)
		return apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "application status updated", "application_id", id, "status", string(status))
	return nil
}
