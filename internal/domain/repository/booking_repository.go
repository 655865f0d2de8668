package repository

import (
	"caregiver-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Booking, error)
	Update(db *gorm.DB, booking *entity.Booking) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.BookingStatus, payment entity.PaymentStatus) error
	UpdatePayment(db *gorm.DB, booking *entity.Booking, from entity.PaymentStatus) error
}
