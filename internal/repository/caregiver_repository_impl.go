package repository

import (
	"errors"

	"caregiver-marketplace/internal/domain/entity"
	domainRepo "caregiver-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type caregiverRepository struct{}

func NewCaregiverRepository() domainRepo.CaregiverRepository {
	return &caregiverRepository{}
}

// Create inserts the caregiver together with its availability slots and packages
func (r *caregiverRepository) Create(db *gorm.DB, caregiver *entity.Caregiver) error {
	return db.Create(caregiver).Error
}

func (r *caregiverRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Caregiver, error) {
	var caregiver entity.Caregiver
	err := withRoster(db).Where("id = ?", id).First(&caregiver).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &caregiver, nil
}

// FindAll returns the whole roster with slots and packages, in a stable order
func (r *caregiverRepository) FindAll(db *gorm.DB) ([]entity.Caregiver, error) {
	var caregivers []entity.Caregiver
	err := withRoster(db).Order("created_at ASC, id ASC").Find(&caregivers).Error
	if err != nil {
		return nil, err
	}
	return caregivers, nil
}

func withRoster(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Availability", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("start_date ASC, id ASC")
		}).
		Preload("Packages", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id ASC")
		})
}
