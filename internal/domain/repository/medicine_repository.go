package repository

import (
	"caregiver-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicineRequestRepository interface {
	Create(db *gorm.DB, request *entity.MedicineRequest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicineRequest, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.MedicineRequestStatus) error
}

type MedicineOrderRepository interface {
	Create(db *gorm.DB, order *entity.MedicineOrder) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicineOrder, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.MedicineOrderStatus) error
	UpdatePayment(db *gorm.DB, order *entity.MedicineOrder, from entity.MedicineOrderStatus) error
}
