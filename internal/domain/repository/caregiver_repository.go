package repository

import (
	"caregiver-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaregiverRepository interface {
	Create(db *gorm.DB, caregiver *entity.Caregiver) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Caregiver, error)
	FindAll(db *gorm.DB) ([]entity.Caregiver, error)
}
