package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// SearchCaregiversRequest is bound from the query string of GET /caregivers.
// Dates are not validated here; malformed dates disable the date filter.
type SearchCaregiversRequest struct {
	CareType  string   `validate:"required,oneof='Home care' 'Hospital care'"`
	Location  string   `validate:"omitempty,max=255"`
	Gender    string   `validate:"omitempty,oneof=Any Male Female"`
	Languages []string `validate:"omitempty,dive,required"`
	StartDate string
	EndDate   string
}

type CreateCaregiverRequest struct {
	Name         string                `json:"name" validate:"required,min=2"`
	Rating       float64               `json:"rating" validate:"min=0,max=5"`
	Age          int                   `json:"age" validate:"required,min=18,max=100"`
	Contact      string                `json:"contact" validate:"omitempty,min=10,max=20"`
	Gender       string                `json:"gender" validate:"required,oneof=Male Female"`
	Location     string                `json:"location" validate:"required"`
	Area         string                `json:"area" validate:"omitempty"`
	Languages    []string              `json:"languages" validate:"required,min=1,dive,required"`
	CareTypes    []string              `json:"care_types" validate:"required,min=1,dive,oneof='Home care' 'Hospital care'"`
	Packages     []PackageRequest      `json:"packages" validate:"required,min=1,dive"`
	Availability []AvailabilityRequest `json:"availability" validate:"omitempty,dive"`
}

type PackageRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

type AvailabilityRequest struct {
	StartDate string `json:"start_date" validate:"required,date"` // Format: YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"required,date"`   // Format: YYYY-MM-DD
}

// Response DTOs

type PackageResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type AvailabilityResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CaregiverResponse struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Rating       float64                `json:"rating"`
	Age          int                    `json:"age"`
	Contact      string                 `json:"contact,omitempty"`
	Gender       string                 `json:"gender"`
	Location     string                 `json:"location"`
	Area         string                 `json:"area"`
	Languages    []string               `json:"languages"`
	CareTypes    []string               `json:"care_types"`
	Packages     []PackageResponse      `json:"packages"`
	Availability []AvailabilityResponse `json:"availability"`
	CreatedAt    time.Time              `json:"created_at"`
}

type CaregiverListResponse struct {
	Caregivers []CaregiverResponse `json:"caregivers"`
	Total      int                 `json:"total"`
}
