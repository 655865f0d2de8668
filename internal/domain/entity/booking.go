package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a caregiver booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusCompleted  BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// PaymentStatus tracks the advance/final payment of a booking
type PaymentStatus string

const (
	PaymentStatusPendingAdvance      PaymentStatus = "pending_advance"
	PaymentStatusPendingVerification PaymentStatus = "pending_verification"
	PaymentStatusAdvancePaid         PaymentStatus = "advance_paid"
	PaymentStatusFullyPaid           PaymentStatus = "fully_paid"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPendingAdvance, PaymentStatusPendingVerification,
		PaymentStatusAdvancePaid, PaymentStatusFullyPaid:
		return true
	}
	return false
}

// DayType selects between a single-date and a date-range booking
type DayType string

const (
	DayTypeOneDay       DayType = "One Day"
	DayTypeMultipleDays DayType = "Multiple Days"
)

// PaymentMethod is how the final balance is settled
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodBank PaymentMethod = "bank"
)

// Booking represents a caregiver booking made by a marketplace user
type Booking struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CaregiverID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"caregiver_id"`
	PatientName     string          `gorm:"type:varchar(255);not null" json:"patient_name"`
	GuardianName    string          `gorm:"type:varchar(255);not null" json:"guardian_name"`
	GuardianContact string          `gorm:"type:varchar(20);not null" json:"guardian_contact"`
	CareType        CareType        `gorm:"type:varchar(20);not null" json:"care_type"`
	DayType         DayType         `gorm:"type:varchar(20);not null" json:"day_type"`
	PackageName     string          `gorm:"type:varchar(100);not null" json:"package_name"`
	SingleDate      *time.Time      `gorm:"type:date" json:"single_date,omitempty"`
	StartDate       *time.Time      `gorm:"type:date" json:"start_date,omitempty"`
	EndDate         *time.Time      `gorm:"type:date" json:"end_date,omitempty"`
	Address         string          `gorm:"type:text" json:"address,omitempty"`
	HospitalName    string          `gorm:"type:varchar(255)" json:"hospital_name,omitempty"`
	WardNumber      string          `gorm:"type:varchar(50)" json:"ward_number,omitempty"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	Status          BookingStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(40);not null;default:'pending_advance'" json:"payment_status"`
	AdvancePaid     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"advance_paid"`
	ReceiptURL      string          `gorm:"column:payment_receipt_url;type:text" json:"payment_receipt_url,omitempty"`
	FinalMethod     PaymentMethod   `gorm:"column:final_payment_method;type:varchar(10)" json:"final_payment_method,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Caregiver Caregiver `gorm:"foreignKey:CaregiverID" json:"caregiver,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsPending checks if booking is still waiting for the caregiver
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// IsEditable reports whether the owner may still change the booking details.
// Only requests the caregiver has not yet accepted can be edited.
func (b *Booking) IsEditable() bool {
	return b.Status == BookingStatusPending && b.PaymentStatus == PaymentStatusPendingAdvance
}

// AwaitingAdvance reports whether the caregiver accepted and the advance is still due
func (b *Booking) AwaitingAdvance() bool {
	return b.Status == BookingStatusConfirmed && b.PaymentStatus == PaymentStatusPendingAdvance
}

// AwaitingFinalPayment reports whether the job is running with only the balance left to pay
func (b *Booking) AwaitingFinalPayment() bool {
	return b.Status == BookingStatusInProgress && b.PaymentStatus == PaymentStatusAdvancePaid
}

// Balance is the amount still owed after the advance
func (b *Booking) Balance() decimal.Decimal {
	return b.TotalPrice.Sub(b.AdvancePaid)
}
