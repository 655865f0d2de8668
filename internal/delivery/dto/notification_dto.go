package dto

import (
	"time"

	"caregiver-marketplace/internal/domain/navigation"

	"github.com/google/uuid"
)

// Response DTOs

type NotificationBookingSummary struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
}

type NotificationEntitySummary struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type NotificationResponse struct {
	ID              uuid.UUID                   `json:"id"`
	Message         string                      `json:"message"`
	IsRead          bool                        `json:"is_read"`
	Booking         *NotificationBookingSummary `json:"booking,omitempty"`
	MedicineRequest *NotificationEntitySummary  `json:"medicine_request,omitempty"`
	MedicineOrder   *NotificationEntitySummary  `json:"medicine_order,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	Unread        int                    `json:"unread"`
}

// RouteResponse tells the client which screen to open for a notification
type RouteResponse struct {
	navigation.Route
	Path string `json:"path"`
}
