package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MedicineRequestStatus string

const (
	MedicineRequestStatusPending   MedicineRequestStatus = "pending"
	MedicineRequestStatusQuoted    MedicineRequestStatus = "quoted"
	MedicineRequestStatusFulfilled MedicineRequestStatus = "fulfilled"
	MedicineRequestStatusCancelled MedicineRequestStatus = "cancelled"
)

func (s MedicineRequestStatus) Valid() bool {
	switch s {
	case MedicineRequestStatusPending, MedicineRequestStatusQuoted,
		MedicineRequestStatusFulfilled, MedicineRequestStatusCancelled:
		return true
	}
	return false
}

// MedicineRequest is a user's request for pharmacies to quote a prescription
type MedicineRequest struct {
	ID              uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID             `gorm:"type:uuid;not null;index" json:"user_id"`
	MedicineName    string                `gorm:"type:varchar(255)" json:"medicine_name,omitempty"`
	PrescriptionURL string                `gorm:"type:text" json:"prescription_url,omitempty"`
	Notes           string                `gorm:"type:text" json:"notes,omitempty"`
	Status          MedicineRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicineRequest) TableName() string {
	return "medicine_requests"
}

type MedicineOrderStatus string

const (
	MedicineOrderStatusPendingConfirmation        MedicineOrderStatus = "pending_confirmation"
	MedicineOrderStatusReadyForPickup             MedicineOrderStatus = "ready_for_pickup"
	MedicineOrderStatusPaymentPendingVerification MedicineOrderStatus = "payment_pending_verification"
	MedicineOrderStatusCompleted                  MedicineOrderStatus = "completed"
	MedicineOrderStatusCancelled                  MedicineOrderStatus = "cancelled"
)

func (s MedicineOrderStatus) Valid() bool {
	switch s {
	case MedicineOrderStatusPendingConfirmation, MedicineOrderStatusReadyForPickup,
		MedicineOrderStatusPaymentPendingVerification, MedicineOrderStatusCompleted,
		MedicineOrderStatusCancelled:
		return true
	}
	return false
}

// MedicinePaymentMethod is how a medicine order is paid at pickup
type MedicinePaymentMethod string

const (
	MedicinePaymentCash         MedicinePaymentMethod = "cash"
	MedicinePaymentBankTransfer MedicinePaymentMethod = "bank_transfer"
)

// MedicineOrder is placed by a user against a quoted medicine request
type MedicineOrder struct {
	ID            uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID             `gorm:"type:uuid;not null;index" json:"user_id"`
	RequestID     uuid.UUID             `gorm:"type:uuid;not null;index" json:"request_id"`
	PharmacyRef   string                `gorm:"type:varchar(255)" json:"pharmacy_ref,omitempty"`
	PharmacyName  string                `gorm:"type:varchar(255)" json:"pharmacy_name,omitempty"`
	UnitPrice     decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0" json:"unit_price"`
	Quantity      int                   `gorm:"not null;default:0" json:"quantity"`
	QuantityUnit  string                `gorm:"type:varchar(20)" json:"quantity_unit,omitempty"`
	TotalPrice    decimal.Decimal       `gorm:"type:decimal(12,2);not null;default:0" json:"total_price"`
	Status        MedicineOrderStatus   `gorm:"type:varchar(40);not null;default:'pending_confirmation';index" json:"status"`
	PaymentMethod MedicinePaymentMethod `gorm:"type:varchar(20)" json:"payment_method,omitempty"`
	ReceiptURL    string                `gorm:"column:payment_receipt_url;type:text" json:"payment_receipt_url,omitempty"`
	CreatedAt     time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time             `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Request MedicineRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
}

func (MedicineOrder) TableName() string {
	return "medicine_orders"
}
