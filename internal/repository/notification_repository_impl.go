package repository

import (
	"errors"

	"caregiver-marketplace/internal/domain/entity"
	domainRepo "caregiver-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct{}

func NewNotificationRepository() domainRepo.NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(db *gorm.DB, notification *entity.Notification) error {
	return db.Omit("Booking", "MedicineRequest", "MedicineOrder").Create(notification).Error
}

func (r *notificationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Notification, error) {
	var notification entity.Notification
	err := withReferences(db).Where("id = ?", id).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := withReferences(db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead is idempotent: marking an already read notification is not an error
func (r *notificationRepository) MarkRead(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&entity.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func withReferences(db *gorm.DB) *gorm.DB {
	return db.Preload("Booking").Preload("MedicineRequest").Preload("MedicineOrder")
}
