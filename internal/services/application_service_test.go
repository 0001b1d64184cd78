package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"jobapply_backend/internal/models"
	"jobapply_backend/internal/repositories"
	"jobapply_backend/internal/wizard"
	"jobapply_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeApplicationRepo records writes in memory. The repositories are
// stateless and take the db handle per call, so a nil *gorm.DB is fine.
type fakeApplicationRepo struct {
	apps     []*models.Application
	projects []*models.ApplicationProject

	failCreate         bool
	failProjectOnCount int // fail the Nth CreateProject call, 1-based; 0 never fails
	projectCalls       int
}

func (r *fakeApplicationRepo) Create(db *gorm.DB, app *models.Application) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	app.ID = fmt.Sprintf("app-%d", len(r.apps)+1)
	r.apps = append(r.apps, app)
	return nil
}

func (r *fakeApplicationRepo) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	for _, app := range r.apps {
		if app.ID == id {
			return app, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindAll(db *gorm.DB) ([]models.Application, error) {
	out := make([]models.Application, 0, len(r.apps))
	for i := len(r.apps) - 1; i >= 0; i-- {
		out = append(out, *r.apps[i])
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	for _, app := range r.apps {
		if app.ID == id {
			app.Status = status
			return nil
		}
	}
	return repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) CreateProject(db *gorm.DB, project *models.ApplicationProject) error {
	r.projectCalls++
	if r.failProjectOnCount > 0 && r.projectCalls == r.failProjectOnCount {
		return errors.New("project insert failed")
	}
	r.projects = append(r.projects, project)
	return nil
}

func (r *fakeApplicationRepo) FindProjectsByApplication(db *gorm.DB, applicationID string) ([]models.ApplicationProject, error) {
	var out []models.ApplicationProject
	for _, p := range r.projects {
		if p.ApplicationID == applicationID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindAllProjects(db *gorm.DB) ([]models.ApplicationProject, error) {
	out := make([]models.ApplicationProject, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

// fakeUploader resolves every image to a URL derived from its name,
// except names listed in failNames which come back as "".
type fakeUploader struct {
	failNames map[string]bool
	uploaded  []string
}

func (u *fakeUploader) UploadImage(ctx context.Context, img *wizard.ImageFile) string {
	if img == nil {
		return ""
	}
	if u.failNames[img.Name] {
		return ""
	}
	u.uploaded = append(u.uploaded, img.Name)
	return "https://cdn.test/" + img.Name
}

type fakeNotifier struct {
	calls []string
}

func (n *fakeNotifier) ApplicationSubmitted(ctx context.Context, db *gorm.DB, app *models.Application) {
	n.calls = append(n.calls, app.ID)
}

func validFormData() *wizard.FormData {
	data := wizard.NewFormData()
	data.FullName = "Aigerim S"
	data.Phone = "+77001234567"
	data.Age = 27
	data.JobType = string(models.JobTypeWebDeveloper)
	data.Skills = []string{"go", "react"}
	return &data
}

func newSubmitFixture() (*fakeApplicationRepo, *fakeUploader, *fakeNotifier, ApplicationService) {
	repo := &fakeApplicationRepo{}
	uploader := &fakeUploader{failNames: map[string]bool{}}
	notifier := &fakeNotifier{}
	svc := NewApplicationService(repo, uploader, notifier)
	return repo, uploader, notifier, svc
}

func TestSubmitPersistsOnlyTitledProjects(t *testing.T) {
	repo, _, notifier, svc := newSubmitFixture()

	data := validFormData()
	// Slot 1 has a description and an image but no title; only slot 2
	// counts.
	data.Projects[0].Description = "untitled work"
	data.Projects[0].MainImage = &wizard.ImageFile{Name: "orphan.png", ContentType: "image/png"}
	data.Projects[1].Title = "Shop frontend"
	data.Projects[1].Description = "React storefront"

	result, err := svc.Submit(context.Background(), nil, data)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ProjectsPersisted)
	require.Len(t, repo.projects, 1)
	assert.Equal(t, "Shop frontend", repo.projects[0].ProjectTitle)
	assert.Equal(t, repo.apps[0].ID, repo.projects[0].ApplicationID)

	require.Len(t, repo.apps, 1)
	assert.Equal(t, models.ApplicationStatusPending, repo.apps[0].Status)
	assert.Equal(t, []string{repo.apps[0].ID}, notifier.calls)
}

func TestSubmitRejectsIncompleteForm(t *testing.T) {
	repo, _, notifier, svc := newSubmitFixture()

	data := validFormData()
	data.Phone = ""
	data.Age = 0

	_, err := svc.Submit(context.Background(), nil, data)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	assert.Empty(t, repo.apps, "nothing persists on a validation failure")
	assert.Empty(t, notifier.calls)
}

func TestSubmitRejectsUnknownJobType(t *testing.T) {
	repo, _, _, svc := newSubmitFixture()

	data := validFormData()
	data.JobType = "astronaut"

	_, err := svc.Submit(context.Background(), nil, data)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Empty(t, repo.apps)
}

func TestSubmitFiltersFailedAdditionalImages(t *testing.T) {
	repo, _, _, svc := newSubmitFixture()

	data := validFormData()
	data.Projects[0].Title = "Portfolio"
	data.Projects[0].AdditionalImages[0] = &wizard.ImageFile{Name: "a.png", ContentType: "image/png"}
	data.Projects[0].AdditionalImages[1] = &wizard.ImageFile{Name: "b.png", ContentType: "image/png"}
	// Slot 2 left empty.

	result, err := svc.Submit(context.Background(), nil, data)
	require.NoError(t, err)

	// Two URLs, never padded out to three.
	require.Len(t, repo.projects, 1)
	assert.Len(t, []string(repo.projects[0].AdditionalImages), 2)
	assert.Equal(t, 2, result.ImagesUploaded)
	assert.Equal(t, 0, result.ImagesFailed)
}

func TestSubmitDropsFailedUploadFromAdditionalImages(t *testing.T) {
	repo, uploader, _, svc := newSubmitFixture()
	uploader.failNames["b.png"] = true

	data := validFormData()
	data.Projects[0].Title = "Portfolio"
	data.Projects[0].AdditionalImages[0] = &wizard.ImageFile{Name: "a.png", ContentType: "image/png"}
	data.Projects[0].AdditionalImages[1] = &wizard.ImageFile{Name: "b.png", ContentType: "image/png"}
	data.Projects[0].AdditionalImages[2] = &wizard.ImageFile{Name: "c.png", ContentType: "image/png"}

	result, err := svc.Submit(context.Background(), nil, data)
	require.NoError(t, err)

	require.Len(t, repo.projects, 1)
	assert.Equal(t, []string{"https://cdn.test/a.png", "https://cdn.test/c.png"},
		[]string(repo.projects[0].AdditionalImages))
	assert.Equal(t, 2, result.ImagesUploaded)
	assert.Equal(t, 1, result.ImagesFailed)
}

func TestSubmitProfilePictureFailureIsNonFatal(t *testing.T) {
	repo, uploader, _, svc := newSubmitFixture()
	uploader.failNames["me.jpg"] = true

	data := validFormData()
	data.ProfilePicture = &wizard.ImageFile{Name: "me.jpg", ContentType: "image/jpeg"}

	result, err := svc.Submit(context.Background(), nil, data)
	require.NoError(t, err)

	assert.Empty(t, result.ProfilePictureURL)
	assert.Equal(t, 1, result.ImagesFailed)
	require.Len(t, repo.apps, 1)
	assert.Empty(t, repo.apps[0].ProfilePictureURL)
}

func TestSubmitApplicationInsertFailureIsFatal(t *testing.T) {
	repo, _, notifier, svc := newSubmitFixture()
	repo.failCreate = true

	data := validFormData()
	data.Projects[0].Title = "Portfolio"

	_, err := svc.Submit(context.Background(), nil, data)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeDatabaseError, appErr.Code)

	// Nothing persisted, no projects attempted, no notification.
	assert.Empty(t, repo.apps)
	assert.Empty(t, repo.projects)
	assert.Equal(t, 0, repo.projectCalls)
	assert.Empty(t, notifier.calls)
}

func TestSubmitProjectInsertFailureLeavesEarlierWrites(t *testing.T) {
	repo, _, notifier, svc := newSubmitFixture()
	repo.failProjectOnCount = 2

	data := validFormData()
	data.Projects[0].Title = "First"
	data.Projects[1].Title = "Second"
	data.Projects[2].Title = "Third"

	_, err := svc.Submit(context.Background(), nil, data)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeDatabaseError, appErr.Code)

	// There is no rollback: the application and the first project stay,
	// the third project is never attempted.
	require.Len(t, repo.apps, 1)
	require.Len(t, repo.projects, 1)
	assert.Equal(t, "First", repo.projects[0].ProjectTitle)
	assert.Equal(t, 2, repo.projectCalls)
	assert.Empty(t, notifier.calls)
}

func TestSubmitRejectsTooManyProjects(t *testing.T) {
	repo, _, _, svc := newSubmitFixture()

	data := validFormData()
	data.Projects = append(data.Projects, wizard.ProjectForm{Title: "Fourth"})

	_, err := svc.Submit(context.Background(), nil, data)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Empty(t, repo.apps)
}
