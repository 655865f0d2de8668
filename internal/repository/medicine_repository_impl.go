package repository

import (
	"errors"

	"caregiver-marketplace/internal/domain/entity"
	domainRepo "caregiver-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicineRequestRepository struct{}

func NewMedicineRequestRepository() domainRepo.MedicineRequestRepository {
	return &medicineRequestRepository{}
}

func (r *medicineRequestRepository) Create(db *gorm.DB, request *entity.MedicineRequest) error {
	return db.Create(request).Error
}

func (r *medicineRequestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicineRequest, error) {
	var request entity.MedicineRequest
	err := db.Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *medicineRequestRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.MedicineRequestStatus) error {
	result := db.Model(&entity.MedicineRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type medicineOrderRepository struct{}

func NewMedicineOrderRepository() domainRepo.MedicineOrderRepository {
	return &medicineOrderRepository{}
}

func (r *medicineOrderRepository) Create(db *gorm.DB, order *entity.MedicineOrder) error {
	return db.Omit("Request").Create(order).Error
}

func (r *medicineOrderRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicineOrder, error) {
	var order entity.MedicineOrder
	err := db.Preload("Request").Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *medicineOrderRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.MedicineOrderStatus) error {
	result := db.Model(&entity.MedicineOrder{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePayment records the payment only while the order is still in status from
func (r *medicineOrderRepository) UpdatePayment(db *gorm.DB, order *entity.MedicineOrder, from entity.MedicineOrderStatus) error {
	result := db.Model(&entity.MedicineOrder{}).
		Where("id = ? AND status = ?", order.ID, from).
		Updates(map[string]interface{}{
			"status":              order.Status,
			"payment_method":      order.PaymentMethod,
			"payment_receipt_url": order.ReceiptURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
