package services

import (
	"context"
	"net/http"

	"jobapply_backend/internal/logger"
	"jobapply_backend/internal/models"
	"jobapply_backend/internal/repositories"
	"jobapply_backend/internal/services/dto"
	"jobapply_backend/internal/wizard"
	"jobapply_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ApplicationService runs the submission sequence: upload images,
// insert the application, then insert its projects one by one.
type ApplicationService interface {
	Submit(ctx context.Context, db *gorm.DB, data *wizard.FormData) (*dto.SubmissionResult, error)
}

type applicationService struct {
	appRepo      repositories.ApplicationRepository
	uploader     ImageUploader
	notification NotificationService
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	uploader ImageUploader,
	notification NotificationService,
) ApplicationService {
	return &applicationService{
		appRepo:      appRepo,
		uploader:     uploader,
		notification: notification,
	}
}

// Submit persists one application and its titled projects.
//
// The sequence is deliberately sequential: project inserts need the
// application's generated id, and image URLs are needed before each
// insert. Writes are NOT wrapped in a transaction - a failure partway
// through leaves the application and any earlier projects persisted.
// The caller sees the whole attempt as failed and may retry, which can
// produce a duplicate application; that trade-off is inherited from
// the product, not an oversight.
func (s *applicationService) Submit(ctx context.Context, db *gorm.DB, data *wizard.FormData) (*dto.SubmissionResult, error) {
	if err := s.validateForm(data); err != nil {
		return nil, err
	}

	result := &dto.SubmissionResult{}

	// Profile picture first. A failed upload costs the picture, not
	// the submission.
	profileURL := s.uploadCounted(ctx, data.ProfilePicture, result)

	app := &models.Application{
		FullName:          data.FullName,
		Phone:             data.Phone,
		Age:               data.Age,
		JobType:           models.JobType(data.JobType),
		PortfolioURL:      data.PortfolioURL,
		Skills:            data.Skills,
		Notes:             data.Notes,
		ProfilePictureURL: profileURL,
		Status:            models.ApplicationStatusPending,
	}

	if err := s.appRepo.Create(db, app); err != nil {
		// Fatal: nothing has been persisted, no projects are attempted.
		logger.CtxWithError(ctx, "application insert failed", err)
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "submission",
			"Failed to save application", http.StatusInternalServerError)
	}

	result.ApplicationID = app.ID
	result.ProfilePictureURL = profileURL

	for i := range data.Projects {
		project := &data.Projects[i]

		// Title is the sole inclusion gate. Images or a description
		// without a title are discarded.
		if project.Title == "" {
			continue
		}

		mainURL := s.uploadCounted(ctx, project.MainImage, result)

		additionalURLs := []string{}
		for _, img := range project.AdditionalImages {
			if img == nil {
				continue
			}
			if url := s.uploadCounted(ctx, img, result); url != "" {
				additionalURLs = append(additionalURLs, url)
			}
		}

		record := &models.ApplicationProject{
			ApplicationID:      app.ID,
			ProjectTitle:       project.Title,
			ProjectDescription: project.Description,
			MainImageURL:       mainURL,
			AdditionalImages:   additionalURLs,
		}

		if err := s.appRepo.CreateProject(db, record); err != nil {
			// Fatal for the rest of the batch. The application and any
			// earlier projects stay in place.
			logger.CtxWithError(ctx, "project insert failed", err,
				"application_id", app.ID, "slot", i)
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "submission",
				"Failed to save project", http.StatusInternalServerError).
				WithDetails(map[string]interface{}{
					"application_id":     app.ID,
					"projects_persisted": result.ProjectsPersisted,
				})
		}
		result.ProjectsPersisted++
	}

	// Notification and email are best-effort; the submission already
	// succeeded from the applicant's point of view.
	s.notification.ApplicationSubmitted(ctx, db, app)

	logger.CtxInfo(ctx, "application submitted",
		"application_id", app.ID,
		"projects", result.ProjectsPersisted,
		"images_uploaded", result.ImagesUploaded,
		"images_failed", result.ImagesFailed,
	)

	return result, nil
}

// uploadCounted uploads a single image and tracks the outcome.
func (s *applicationService) uploadCounted(ctx context.Context, img *wizard.ImageFile, result *dto.SubmissionResult) string {
	if img == nil {
		return ""
	}
	url := s.uploader.UploadImage(ctx, img)
	if url == "" {
		result.ImagesFailed++
	} else {
		result.ImagesUploaded++
	}
	return url
}

// validateForm repeats the personal-info gate and checks the job type
// enum. A direct submit (without walking the wizard) goes through the
// same rules.
func (s *applicationService) validateForm(data *wizard.FormData) error {
	if err := wizard.ValidateStep(wizard.StepPersonalInfo, data); err != nil {
		stepErr := err.(*wizard.StepValidationError)
		return apperrors.ValidationError(stepErr.Fields())
	}
	if !models.ValidJobType(models.JobType(data.JobType)) {
		return apperrors.ValidationError(map[string]string{
			"job_type": "must be one of: web_developer, app_developer, hosting_expert, accounting_developer",
		})
	}
	if len(data.Projects) > wizard.MaxProjects {
		return apperrors.ValidationError(map[string]string{
			"projects": "at most 3 projects are accepted",
		})
	}
	return nil
}
