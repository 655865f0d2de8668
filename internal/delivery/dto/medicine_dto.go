package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateMedicineRequestRequest needs a medicine name, a prescription, or both
type CreateMedicineRequestRequest struct {
	MedicineName    string `json:"medicine_name" validate:"required_without=PrescriptionURL,max=255"`
	PrescriptionURL string `json:"prescription_url" validate:"omitempty,url"`
	Notes           string `json:"additional_notes" validate:"omitempty,max=1000"`
}

// CreateMedicineOrderRequest accepts one pharmacy quote for a medicine request
type CreateMedicineOrderRequest struct {
	MedicineRequestID uuid.UUID       `json:"medicine_request_id" validate:"required"`
	PharmacyID        string          `json:"pharmacy_id" validate:"required,max=255"`
	PharmacyName      string          `json:"pharmacy_name" validate:"required,max=255"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int             `json:"quantity" validate:"required,min=1"`
	QuantityUnit      string          `json:"quantity_unit" validate:"required,oneof=tablets days units bottles"`
}

type SubmitMedicinePaymentRequest struct {
	PaymentMethod     string `json:"payment_method" validate:"required,oneof=cash bank_transfer"`
	PaymentReceiptURL string `json:"payment_receipt_url" validate:"required_if=PaymentMethod bank_transfer,omitempty,url"`
}

type UpdateMedicineStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Message string `json:"message" validate:"omitempty,max=500"`
}

// Response DTOs

type MedicineRequestResponse struct {
	ID              uuid.UUID `json:"id"`
	MedicineName    string    `json:"medicine_name,omitempty"`
	PrescriptionURL string    `json:"prescription_url,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type MedicineOrderResponse struct {
	ID                uuid.UUID       `json:"id"`
	RequestID         uuid.UUID       `json:"request_id"`
	PharmacyRef       string          `json:"pharmacy_ref,omitempty"`
	PharmacyName      string          `json:"pharmacy_name,omitempty"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Quantity          int             `json:"quantity"`
	QuantityUnit      string          `json:"quantity_unit,omitempty"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	Status            string          `json:"status"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	PaymentReceiptURL string          `json:"payment_receipt_url,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
