package repository

import (
	"caregiver-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Notification, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Notification, error)
	MarkRead(db *gorm.DB, id uuid.UUID) error
}
