package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message for a user. At most one of BookingID,
// MedicineRequestID and MedicineOrderID is set.
type Notification struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Message           string     `gorm:"type:text;not null" json:"message"`
	IsRead            bool       `gorm:"not null;default:false;index" json:"is_read"`
	BookingID         *uuid.UUID `gorm:"type:uuid" json:"booking_id,omitempty"`
	MedicineRequestID *uuid.UUID `gorm:"type:uuid" json:"medicine_request_id,omitempty"`
	MedicineOrderID   *uuid.UUID `gorm:"type:uuid" json:"medicine_order_id,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Booking         *Booking         `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	MedicineRequest *MedicineRequest `gorm:"foreignKey:MedicineRequestID" json:"medicine_request,omitempty"`
	MedicineOrder   *MedicineOrder   `gorm:"foreignKey:MedicineOrderID" json:"medicine_order,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NewBookingNotification builds an unread notification that references a booking
func NewBookingNotification(userID, bookingID uuid.UUID, message string) *Notification {
	return &Notification{UserID: userID, Message: message, BookingID: &bookingID}
}

func NewMedicineRequestNotification(userID, requestID uuid.UUID, message string) *Notification {
	return &Notification{UserID: userID, Message: message, MedicineRequestID: &requestID}
}

func NewMedicineOrderNotification(userID, orderID uuid.UUID, message string) *Notification {
	return &Notification{UserID: userID, Message: message, MedicineOrderID: &orderID}
}
