package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// BookingDetails are the fields of the booking form shared by create and edit.
// Cross-field rules (dates per day type, location per care type, total > 0)
// are enforced by pricing.Draft.
type BookingDetails struct {
	PatientName     string `json:"patient_name" validate:"required"`
	GuardianName    string `json:"guardian_name" validate:"required"`
	GuardianContact string `json:"guardian_contact" validate:"required,min=7,max=20"`
	CareType        string `json:"care_type" validate:"required,oneof='Home care' 'Hospital care'"`
	PackageName     string `json:"package_name" validate:"required"`
	DayType         string `json:"day_type" validate:"required,oneof='One Day' 'Multiple Days'"`
	SingleDate      string `json:"single_date" validate:"omitempty,date"` // Format: YYYY-MM-DD
	StartDate       string `json:"start_date" validate:"omitempty,date"`  // Format: YYYY-MM-DD
	EndDate         string `json:"end_date" validate:"omitempty,date"`    // Format: YYYY-MM-DD
	Address         string `json:"address" validate:"omitempty"`
	HospitalName    string `json:"hospital_name" validate:"omitempty"`
	WardNumber      string `json:"ward_number" validate:"omitempty"`

	// Shown to the user by the client. Never trusted; the server prices the booking itself.
	TotalPrice *decimal.Decimal `json:"total_price,omitempty"`
}

type CreateBookingRequest struct {
	CaregiverID uuid.UUID `json:"caregiver_id" validate:"required"`
	BookingDetails
}

type UpdateBookingRequest struct {
	BookingDetails
}

// QuoteRequest prices a partially filled form. Incomplete input yields a zero total.
type QuoteRequest struct {
	CaregiverID uuid.UUID `json:"caregiver_id" validate:"required"`
	PackageName string    `json:"package_name"`
	DayType     string    `json:"day_type"`
	SingleDate  string    `json:"single_date"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
}

type SubmitAdvanceRequest struct {
	PaymentReceiptURL string          `json:"payment_receipt_url" validate:"required,url"`
	AmountPaid        decimal.Decimal `json:"amount_paid"`
}

type SubmitFinalPaymentRequest struct {
	PaymentMethod     string `json:"payment_method" validate:"required,oneof=cash bank"`
	PaymentReceiptURL string `json:"payment_receipt_url" validate:"required_if=PaymentMethod bank,omitempty,url"`
}

type UpdateBookingStatusRequest struct {
	Status        string `json:"status" validate:"required"`
	PaymentStatus string `json:"payment_status" validate:"required"`
	Message       string `json:"message" validate:"omitempty,max=500"`
}

// Response DTOs

type QuoteResponse struct {
	PackageName    string          `json:"package_name,omitempty"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Days           int             `json:"days"`
	Total          decimal.Decimal `json:"total"`
	MinimumAdvance decimal.Decimal `json:"minimum_advance"`
}

type BookingResponse struct {
	ID                 uuid.UUID       `json:"id"`
	CaregiverID        uuid.UUID       `json:"caregiver_id"`
	CaregiverName      string          `json:"caregiver_name,omitempty"`
	PatientName        string          `json:"patient_name"`
	GuardianName       string          `json:"guardian_name"`
	GuardianContact    string          `json:"guardian_contact"`
	CareType           string          `json:"care_type"`
	DayType            string          `json:"day_type"`
	PackageName        string          `json:"package_name"`
	SingleDate         string          `json:"single_date,omitempty"`
	StartDate          string          `json:"start_date,omitempty"`
	EndDate            string          `json:"end_date,omitempty"`
	Address            string          `json:"address,omitempty"`
	HospitalName       string          `json:"hospital_name,omitempty"`
	WardNumber         string          `json:"ward_number,omitempty"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	AdvancePaid        decimal.Decimal `json:"advance_paid"`
	Balance            decimal.Decimal `json:"balance"`
	MinimumAdvance     decimal.Decimal `json:"minimum_advance"`
	Status             string          `json:"status"`
	PaymentStatus      string          `json:"payment_status"`
	FinalPaymentMethod string          `json:"final_payment_method,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
