package repository

import (
	"errors"

	"caregiver-marketplace/internal/domain/entity"
	domainRepo "caregiver-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Omit("Caregiver").Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Caregiver.Packages").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Caregiver").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Update saves the editable booking fields. Status columns are left untouched.
func (r *bookingRepository) Update(db *gorm.DB, booking *entity.Booking) error {
	return db.Model(booking).
		Select(
			"patient_name", "guardian_name", "guardian_contact", "care_type", "day_type",
			"package_name", "single_date", "start_date", "end_date",
			"address", "hospital_name", "ward_number", "total_price",
		).
		Updates(booking).Error
}

func (r *bookingRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.BookingStatus, payment entity.PaymentStatus) error {
	result := db.Model(&entity.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         status,
			"payment_status": payment,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePayment stores a payment submission. The row is only touched while its
// payment status still equals from, so concurrent submissions cannot both win.
func (r *bookingRepository) UpdatePayment(db *gorm.DB, booking *entity.Booking, from entity.PaymentStatus) error {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND payment_status = ?", booking.ID, from).
		Updates(map[string]interface{}{
			"payment_status":       booking.PaymentStatus,
			"advance_paid":         booking.AdvancePaid,
			"payment_receipt_url":  booking.ReceiptURL,
			"final_payment_method": booking.FinalMethod,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
