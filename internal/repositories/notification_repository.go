package repositories

import (
	"jobapply_backend/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	FindRecent(db *gorm.DB, limit int) ([]models.Notification, error)
	MarkRead(db *gorm.DB, id string) error
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindRecent(db *gorm.DB, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) MarkRead(db *gorm.DB, id string) error {
	return db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}
