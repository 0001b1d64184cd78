package repositories

import (
	"errors"

	"jobapply_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
)

type ApplicationRepository interface {
	// Application operations
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindAll(db *gorm.DB) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error

	// Project operations
	CreateProject(db *gorm.DB, project *models.ApplicationProject) error
	FindProjectsByApplication(db *gorm.DB, applicationID string) ([]models.ApplicationProject, error)
	FindAllProjects(db *gorm.DB) ([]models.ApplicationProject, error)
}

type ApplicationRepositoryImpl struct {
	// Stateless; *gorm.DB comes in per call.
}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	return db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Projects").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// FindAll returns every application, newest first. The review dashboard
// holds the full set in memory; there is no pagination.
func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB) ([]models.Application, error) {
	var apps []models.Application
	err := db.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CreateProject(db *gorm.DB, project *models.ApplicationProject) error {
	return db.Create(project).Error
}

func (r *ApplicationRepositoryImpl) FindProjectsByApplication(db *gorm.DB, applicationID string) ([]models.ApplicationProject, error) {
	var projects []models.ApplicationProject
	err := db.Where("application_id = ?", applicationID).Order("created_at ASC").Find(&projects).Error
	return projects, err
}

func (r *ApplicationRepositoryImpl) FindAllProjects(db *gorm.DB) ([]models.ApplicationProject, error) {
	var projects []models.ApplicationProject
	err := db.Order("created_at ASC").Find(&projects).Error
	return projects, err
}
